// Package tableview derives what a table actually shows: the visible
// columns and rows, their order, and whether pagination is needed.
package tableview

import "github.com/Slach/chartfmt/pkg/dataset"

// Project keeps the first row's columns that md does not mark hidden and
// projects every row onto them, preserving row order. A dataset without rows
// projects to no columns and no rows. The result carries ds's version and
// metadata, so projecting it again returns it unchanged.
func Project(ds dataset.Dataset, md dataset.MetadataIndex) dataset.Dataset {
	out := dataset.Dataset{
		Version:  ds.Version,
		Columns:  []string{},
		Rows:     []dataset.Row{},
		Metadata: md,
	}
	if len(ds.Rows) == 0 {
		return out
	}
	for _, header := range ds.Rows[0].Keys() {
		if !md.IsHidden(header) {
			out.Columns = append(out.Columns, header)
		}
	}
	out.Rows = make([]dataset.Row, len(ds.Rows))
	for i, row := range ds.Rows {
		out.Rows[i] = row.Pick(out.Columns)
	}
	return out
}
