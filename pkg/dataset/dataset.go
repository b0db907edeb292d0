package dataset

import "sync/atomic"

// Cell is one named value inside a Row.
type Cell struct {
	Column string
	Value  Value
}

// Row is an ordered mapping from column name to value. Key order matters:
// the first row's key order defines table headers.
type Row []Cell

// Get returns the value stored under column, Null when absent.
func (r Row) Get(column string) Value {
	for _, c := range r {
		if c.Column == column {
			return c.Value
		}
	}
	return Null()
}

func (r Row) Has(column string) bool {
	for _, c := range r {
		if c.Column == column {
			return true
		}
	}
	return false
}

// Keys returns the column names in row order.
func (r Row) Keys() []string {
	keys := make([]string, len(r))
	for i, c := range r {
		keys[i] = c.Column
	}
	return keys
}

// Pick projects the row onto columns, in the given order. Columns missing
// from the row are kept as Null cells.
func (r Row) Pick(columns []string) Row {
	out := make(Row, len(columns))
	for i, col := range columns {
		out[i] = Cell{Column: col, Value: r.Get(col)}
	}
	return out
}

// Dataset is an in-memory tabular result handed over by a data source.
// Version identifies the dataset for memoization; two datasets built by New
// never share a version.
type Dataset struct {
	Version  uint64
	Columns  []string
	Rows     []Row
	Metadata MetadataIndex
}

var versions atomic.Uint64

// NextVersion returns a fresh dataset identity.
func NextVersion() uint64 {
	return versions.Add(1)
}

// New builds a dataset with a fresh version. When columns is empty the first
// row's keys are used.
func New(columns []string, rows []Row, metadata []ColumnMetadata) Dataset {
	if len(columns) == 0 && len(rows) > 0 {
		columns = rows[0].Keys()
	}
	return Dataset{
		Version:  NextVersion(),
		Columns:  columns,
		Rows:     rows,
		Metadata: NewMetadataIndex(metadata),
	}
}

func (d Dataset) Empty() bool { return len(d.Rows) == 0 }

// Category is the first column, used as the categorical axis of charts.
func (d Dataset) Category() string {
	if len(d.Columns) == 0 {
		return ""
	}
	return d.Columns[0]
}

// Series returns every column after the category column.
func (d Dataset) Series() []string {
	if len(d.Columns) < 2 {
		return nil
	}
	return d.Columns[1:]
}

// Headers returns the first row's keys, or nil for an empty dataset.
func (d Dataset) Headers() []string {
	if len(d.Rows) == 0 {
		return nil
	}
	return d.Rows[0].Keys()
}
