// Package axis scans datasets for the magnitudes and domains that anchor
// value formatting on a chart axis or a table column.
package axis

import (
	"math"

	"github.com/Slach/chartfmt/pkg/dataset"
)

// Hidden reports whether a series is excluded from aggregation.
// *legend.Visibility satisfies it.
type Hidden interface {
	IsHidden(column string) bool
}

// HiddenColumns is a static hidden set for callers without a legend.
type HiddenColumns map[string]struct{}

func Hide(columns ...string) HiddenColumns {
	h := make(HiddenColumns, len(columns))
	for _, c := range columns {
		h[c] = struct{}{}
	}
	return h
}

func (h HiddenColumns) IsHidden(column string) bool {
	_, ok := h[column]
	return ok
}

// Domain is the value range of an axis.
type Domain struct {
	Min float64
	Max float64
}

// Scope is the formatting context shared by every value on one axis or
// table column.
type Scope struct {
	LargestMagnitude  float64
	SignificantDigits bool
	Stacked           bool
	Domain            Domain
}

// ComputeScope scans every visible numeric column of ds.
func ComputeScope(ds dataset.Dataset, hidden Hidden, significantDigits bool) Scope {
	scope := scan(ds, columnsOf(ds), hidden, false)
	scope.SignificantDigits = significantDigits
	return scope
}

// ComputeChartScope scans the chart series (every column but the category).
// Stacked charts anchor on the largest stacked total, so the sum label and
// the axis share one unit.
func ComputeChartScope(ds dataset.Dataset, hidden Hidden, significantDigits, stacked bool) Scope {
	scope := scan(ds, ds.Series(), hidden, stacked)
	scope.SignificantDigits = significantDigits
	return scope
}

// LargestByColumn returns the largest magnitude of each visible numeric
// column; tables format every column in its own scope.
func LargestByColumn(ds dataset.Dataset, hidden Hidden) map[string]float64 {
	columns := eligible(ds, columnsOf(ds), hidden)
	out := make(map[string]float64, len(columns))
	for _, column := range columns {
		largest := 0.0
		for _, row := range ds.Rows {
			if n, ok := row.Get(column).Float(); ok && math.Abs(n) > largest {
				largest = math.Abs(n)
			}
		}
		out[column] = largest
	}
	return out
}

func scan(ds dataset.Dataset, columns []string, hidden Hidden, stacked bool) Scope {
	columns = eligible(ds, columns, hidden)
	scope := Scope{Stacked: stacked}
	seen := false
	widen := func(lo, hi float64) {
		if !seen {
			scope.Domain = Domain{Min: lo, Max: hi}
			seen = true
			return
		}
		scope.Domain.Min = math.Min(scope.Domain.Min, lo)
		scope.Domain.Max = math.Max(scope.Domain.Max, hi)
	}

	for _, row := range ds.Rows {
		if stacked {
			var pos, neg float64
			found := false
			for _, column := range columns {
				if n, ok := row.Get(column).Float(); ok {
					found = true
					if n < 0 {
						neg += n
					} else {
						pos += n
					}
				}
			}
			if !found {
				continue
			}
			widen(neg, pos)
			scope.LargestMagnitude = math.Max(scope.LargestMagnitude, math.Max(pos, -neg))
			continue
		}
		for _, column := range columns {
			if n, ok := row.Get(column).Float(); ok {
				widen(n, n)
				scope.LargestMagnitude = math.Max(scope.LargestMagnitude, math.Abs(n))
			}
		}
	}
	return scope
}

func columnsOf(ds dataset.Dataset) []string {
	if len(ds.Columns) > 0 {
		return ds.Columns
	}
	return ds.Headers()
}

// eligible keeps columns that are visible and not declared non-numeric.
func eligible(ds dataset.Dataset, columns []string, hidden Hidden) []string {
	out := make([]string, 0, len(columns))
	for _, column := range columns {
		if hidden != nil && hidden.IsHidden(column) {
			continue
		}
		if !ds.Metadata.Type(column).Numeric() {
			continue
		}
		out = append(out, column)
	}
	return out
}
