package tickformat

import "strings"

// DefaultCurrencySymbols maps dashboard currency types to display symbols.
var DefaultCurrencySymbols = map[string]string{
	"Dollar $": "$",
	"Euro €":   "€",
	"Pound £":  "£",
	"USD":      "$",
	"EUR":      "€",
	"GBP":      "£",
	"JPY":      "¥",
}

const defaultCurrencySymbol = "$"

func (f *Formatter) currencySymbol(currencyType string) string {
	if currencyType == "" {
		return defaultCurrencySymbol
	}
	if s, ok := f.symbols[currencyType]; ok {
		return s
	}
	// "Name symbol" form, e.g. "Franc CHF"
	if fields := strings.Fields(currencyType); len(fields) > 1 {
		return fields[len(fields)-1]
	}
	return currencyType
}
