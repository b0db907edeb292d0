package widget

import (
	"github.com/Slach/chartfmt/pkg/axis"
	"github.com/Slach/chartfmt/pkg/dataset"
	"github.com/Slach/chartfmt/pkg/tableview"
	"github.com/Slach/chartfmt/pkg/tickformat"
)

// TableOptions are the per-widget switches of a table.
type TableOptions struct {
	SignificantDigits bool
	Sort              tableview.SortSpec
	Paging            tableview.Paging
	MobileColumns     int
}

// TableView is everything a renderer needs to draw a table.
type TableView struct {
	Columns          []string
	Numeric          []bool
	Rows             [][]string
	Paginate         bool
	MobileNavigation bool
}

// Empty means there is nothing to render.
func (v TableView) Empty() bool { return len(v.Rows) == 0 }

type TableWidget struct {
	ds        dataset.Dataset
	formatter *tickformat.Formatter
	opts      TableOptions
	largest   axis.Memo[map[string]float64]
}

func NewTable(ds dataset.Dataset, f *tickformat.Formatter, opts TableOptions) *TableWidget {
	if f == nil {
		f = tickformat.Default()
	}
	if opts.Paging.Threshold == 0 {
		opts.Paging.Threshold = tableview.DefaultPageThreshold
	}
	if opts.MobileColumns == 0 {
		opts.MobileColumns = tableview.DefaultMobileNavigationColumns
	}
	return &TableWidget{ds: ds, formatter: f, opts: opts}
}

func (t *TableWidget) SetDataset(ds dataset.Dataset) {
	t.ds = ds
	t.largest.Reset()
}

func (t *TableWidget) SetSignificantDigits(on bool) { t.opts.SignificantDigits = on }

// LargestByColumn is the per-column scope magnitude of the projected table.
func (t *TableWidget) LargestByColumn() map[string]float64 {
	key := axis.Key{Dataset: t.ds.Version}
	return t.largest.Get(key, func() map[string]float64 {
		return axis.LargestByColumn(tableview.Project(t.ds, t.ds.Metadata), nil)
	})
}

// View projects, sorts and formats the table.
func (t *TableWidget) View() TableView {
	projected := tableview.Project(t.ds, t.ds.Metadata)
	view := TableView{Columns: projected.Columns}
	if projected.Empty() {
		return view
	}

	largest := t.LargestByColumn()
	view.Numeric = make([]bool, len(projected.Columns))
	for j, column := range projected.Columns {
		_, view.Numeric[j] = largest[column]
		if view.Numeric[j] && projected.Metadata.Get(column) == nil {
			view.Numeric[j] = projected.Rows[0].Get(column).Kind() == dataset.KindNumber
		}
	}
	rows := tableview.SortRows(projected.Rows, t.opts.Sort)
	view.Rows = make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(projected.Columns))
		for j, column := range projected.Columns {
			cells[j] = t.formatter.Format(row.Get(column), largest[column], t.opts.SignificantDigits, "", "", projected.Metadata.Get(column))
		}
		view.Rows[i] = cells
	}
	view.Paginate = t.opts.Paging.Enabled(len(rows))
	view.MobileNavigation = tableview.MobileNavigation(len(projected.Columns), t.opts.MobileColumns)
	return view
}
