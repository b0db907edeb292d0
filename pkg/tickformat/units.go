package tickformat

import (
	"math"
	"sort"
)

// Unit is one step of the abbreviation ladder: values are divided by
// Threshold and suffixed with Suffix.
type Unit struct {
	Threshold float64 `yaml:"threshold"`
	Suffix    string  `yaml:"suffix"`
}

// DefaultUnits is the thousand/million/billion/trillion ladder.
var DefaultUnits = []Unit{
	{Threshold: 1e3, Suffix: "K"},
	{Threshold: 1e6, Suffix: "M"},
	{Threshold: 1e9, Suffix: "B"},
	{Threshold: 1e12, Suffix: "T"},
}

// normalizeUnits drops non-positive thresholds and sorts ascending.
func normalizeUnits(units []Unit) []Unit {
	out := make([]Unit, 0, len(units))
	for _, u := range units {
		if u.Threshold > 0 && !math.IsInf(u.Threshold, 0) {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Threshold < out[j].Threshold })
	return out
}

// unitFor picks the largest unit whose threshold does not exceed |magnitude|.
func unitFor(units []Unit, magnitude float64) (Unit, bool) {
	m := math.Abs(magnitude)
	if math.IsNaN(m) {
		return Unit{}, false
	}
	var (
		chosen Unit
		found  bool
	)
	for _, u := range units {
		if u.Threshold > m {
			break
		}
		chosen, found = u, true
	}
	return chosen, found
}

// roundHalfAway rounds to the given number of decimals, halves away from zero.
func roundHalfAway(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}
