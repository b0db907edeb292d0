package axis

import "github.com/Slach/chartfmt/pkg/dataset"

// Type is the scale of the categorical axis.
type Type string

const (
	Category Type = "category"
	Numeric  Type = "number"
)

// XAxisType is Category when the first column is declared Text; otherwise
// Numeric when every row holds a number there.
func XAxisType(ds dataset.Dataset) Type {
	category := ds.Category()
	if category == "" {
		return Category
	}
	if cm, ok := ds.Metadata.Lookup(category); ok && cm.DataType == dataset.Text {
		return Category
	}
	if len(ds.Rows) == 0 {
		return Category
	}
	for _, row := range ds.Rows {
		if row.Get(category).Kind() != dataset.KindNumber {
			return Category
		}
	}
	return Numeric
}
