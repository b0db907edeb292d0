// Package tickformat turns raw dataset values into display strings for axis
// ticks, tooltips, data labels and table cells.
//
// Abbreviation is anchored on the largest magnitude of the formatting scope,
// never on the value itself, so every value of one axis or table column is
// rendered in the same unit.
package tickformat

import (
	"time"

	"github.com/Slach/chartfmt/pkg/dataset"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Options configures a Formatter.
type Options struct {
	Locale               string
	EmptyMarker          string
	MaxFractionDigits    int
	AbbreviationDecimals int
	Units                []Unit
	CurrencySymbols      map[string]string
	DateLayout           string
	Location             *time.Location
}

func DefaultOptions() Options {
	return Options{
		Locale:               "en-US",
		EmptyMarker:          "-",
		MaxFractionDigits:    3,
		AbbreviationDecimals: 1,
		Units:                DefaultUnits,
		CurrencySymbols:      DefaultCurrencySymbols,
		DateLayout:           "2006-01-02",
		Location:             time.UTC,
	}
}

// Formatter is immutable after New and safe for concurrent use.
type Formatter struct {
	tag         language.Tag
	empty       string
	maxFraction int
	decimals    int
	units       []Unit
	symbols     map[string]string
	dateLayout  string
	loc         *time.Location
}

func New(opts Options) *Formatter {
	tag, err := language.Parse(opts.Locale)
	if err != nil {
		log.Debug().Err(err).Str("locale", opts.Locale).Msg("unknown locale, falling back to en-US")
		tag = language.AmericanEnglish
	}
	f := &Formatter{
		tag:         tag,
		empty:       opts.EmptyMarker,
		maxFraction: opts.MaxFractionDigits,
		decimals:    opts.AbbreviationDecimals,
		units:       normalizeUnits(opts.Units),
		symbols:     make(map[string]string, len(opts.CurrencySymbols)),
		dateLayout:  opts.DateLayout,
		loc:         opts.Location,
	}
	for k, v := range opts.CurrencySymbols {
		f.symbols[k] = v
	}
	if f.empty == "" {
		f.empty = "-"
	}
	if f.maxFraction < 0 {
		f.maxFraction = 0
	}
	if f.decimals < 0 {
		f.decimals = 0
	}
	if f.dateLayout == "" {
		f.dateLayout = "2006-01-02"
	}
	if f.loc == nil {
		f.loc = time.UTC
	}
	return f
}

var std = New(DefaultOptions())

// Default returns the formatter built from DefaultOptions.
func Default() *Formatter { return std }

// EmptyMarker is the string rendered for values that cannot be displayed.
func (f *Formatter) EmptyMarker() string { return f.empty }

// Format renders value within a scope anchored on largest. With
// significantDigits the unit is chosen from largest; otherwise the exact value
// is rendered with locale thousands separators. md may be nil, in which case
// numbers follow the plain numeric rules and text passes through unchanged.
func (f *Formatter) Format(value dataset.Value, largest float64, significantDigits bool, prefix, suffix string, md *dataset.ColumnMetadata) string {
	if value.IsNull() {
		return f.empty
	}

	dataType := dataset.Number
	if md != nil && md.DataType != "" {
		dataType = md.DataType
	}

	switch dataType {
	case dataset.Text:
		if s := value.String(); s != "" {
			return prefix + s + suffix
		}
		return f.empty
	case dataset.Date:
		return f.formatDate(value, prefix, suffix)
	}

	n, ok := value.Float()
	if !ok {
		if md == nil {
			switch value.Kind() {
			case dataset.KindDate:
				return f.formatDate(value, prefix, suffix)
			case dataset.KindText:
				if s := value.Text(); s != "" {
					return prefix + s + suffix
				}
			}
		}
		return f.empty
	}

	symbol := ""
	if dataType == dataset.Currency {
		symbol = f.currencySymbol(md.CurrencyType)
	}
	return f.formatNumber(n, largest, significantDigits, prefix, suffix, symbol, dataType == dataset.Percentage)
}

// StackedFormat sums row over series and formats the total like Format.
// Callers pass only the visible series. The series' shared metadata is used
// when all of them are uniformly Currency (same currency) or Percentage.
func (f *Formatter) StackedFormat(row dataset.Row, largest float64, significantDigits bool, series []string, metadata dataset.MetadataIndex) string {
	var (
		sum         float64
		contributed bool
	)
	for _, column := range series {
		if n, ok := row.Get(column).Float(); ok {
			sum += n
			contributed = true
		}
	}
	if !contributed {
		return f.empty
	}
	return f.Format(dataset.NumberValue(sum), largest, significantDigits, "", "", uniformMetadata(series, metadata))
}

// FormatMetric renders a single headline value, using the value itself as
// the scope magnitude.
func (f *Formatter) FormatMetric(value dataset.Value, significantDigits, percentage bool, currencyType string) string {
	n, ok := value.Float()
	if !ok {
		return f.empty
	}
	symbol := ""
	if currencyType != "" {
		symbol = f.currencySymbol(currencyType)
	}
	return f.formatNumber(n, n, significantDigits, "", "", symbol, percentage)
}

func (f *Formatter) formatNumber(n, largest float64, significantDigits bool, prefix, suffix, symbol string, percentage bool) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	var body string
	if unit, ok := unitFor(f.units, largest); significantDigits && ok {
		scaled := roundHalfAway(n/unit.Threshold, f.decimals)
		if scaled == 0 {
			sign = ""
		}
		body = f.decimal(scaled, f.decimals) + unit.Suffix
	} else {
		rounded := roundHalfAway(n, f.maxFraction)
		if rounded == 0 {
			sign = ""
		}
		body = f.decimal(rounded, f.maxFraction)
	}
	if percentage {
		body += "%"
	}
	return sign + prefix + symbol + body + suffix
}

func (f *Formatter) decimal(x float64, maxFraction int) string {
	p := message.NewPrinter(f.tag)
	return p.Sprint(number.Decimal(x, number.MaxFractionDigits(maxFraction)))
}

func (f *Formatter) formatDate(value dataset.Value, prefix, suffix string) string {
	if t, ok := value.Time(); ok {
		return prefix + t.In(f.loc).Format(f.dateLayout) + suffix
	}
	if s := value.String(); s != "" {
		return prefix + s + suffix
	}
	return f.empty
}

func uniformMetadata(series []string, metadata dataset.MetadataIndex) *dataset.ColumnMetadata {
	if len(series) == 0 {
		return nil
	}
	first, ok := metadata.Lookup(series[0])
	if !ok || (first.DataType != dataset.Currency && first.DataType != dataset.Percentage) {
		return nil
	}
	for _, column := range series[1:] {
		cm, ok := metadata.Lookup(column)
		if !ok || cm.DataType != first.DataType || cm.CurrencyType != first.CurrencyType {
			return nil
		}
	}
	return &first
}

// Format renders value with the default formatter.
func Format(value dataset.Value, largest float64, significantDigits bool, prefix, suffix string, md *dataset.ColumnMetadata) string {
	return std.Format(value, largest, significantDigits, prefix, suffix, md)
}

// StackedFormat renders a stacked total with the default formatter.
func StackedFormat(row dataset.Row, largest float64, significantDigits bool, series []string, metadata dataset.MetadataIndex) string {
	return std.StackedFormat(row, largest, significantDigits, series, metadata)
}
