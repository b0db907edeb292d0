package tableview

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Slach/chartfmt/pkg/dataset"
)

// SortSpec is the initial sort of a table. An empty Column keeps source order.
type SortSpec struct {
	Column     string
	Descending bool
}

// SortRows returns a stably sorted copy of rows. Numbers compare
// numerically, dates chronologically, everything else as text; nulls sort
// last in both directions.
func SortRows(rows []dataset.Row, by SortSpec) []dataset.Row {
	out := slices.Clone(rows)
	if by.Column == "" {
		return out
	}
	slices.SortStableFunc(out, func(a, b dataset.Row) int {
		va, vb := a.Get(by.Column), b.Get(by.Column)
		switch {
		case va.IsNull() && vb.IsNull():
			return 0
		case va.IsNull():
			return 1
		case vb.IsNull():
			return -1
		}
		c := compareValues(va, vb)
		if by.Descending {
			return -c
		}
		return c
	})
	return out
}

func compareValues(a, b dataset.Value) int {
	if fa, ok := a.Float(); ok {
		if fb, ok := b.Float(); ok {
			return cmp.Compare(fa, fb)
		}
	}
	if ta, ok := a.Time(); ok {
		if tb, ok := b.Time(); ok {
			return ta.Compare(tb)
		}
	}
	return strings.Compare(a.String(), b.String())
}
