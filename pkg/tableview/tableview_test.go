package tableview

import (
	"testing"
	"time"

	"github.com/Slach/chartfmt/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(column string, raw any) dataset.Cell {
	return dataset.Cell{Column: column, Value: dataset.Of(raw)}
}

func sample() (dataset.Dataset, dataset.MetadataIndex) {
	md := []dataset.ColumnMetadata{
		{ColumnName: "internalId", DataType: dataset.Number, Hidden: true},
		{ColumnName: "sales", DataType: dataset.Currency},
	}
	ds := dataset.New(nil, []dataset.Row{
		{cell("internalId", 7), cell("month", "Jan"), cell("sales", 1200)},
		{cell("internalId", 8), cell("month", "Feb"), cell("sales", 900), cell("extra", "x")},
		{cell("month", "Mar")},
	}, md)
	return ds, ds.Metadata
}

func TestProjectDropsHiddenColumns(t *testing.T) {
	t.Parallel()
	ds, md := sample()
	p := Project(ds, md)

	assert.Equal(t, []string{"month", "sales"}, p.Columns)
	require.Len(t, p.Rows, 3)
	for _, row := range p.Rows {
		assert.Equal(t, []string{"month", "sales"}, row.Keys())
		assert.False(t, row.Has("internalId"))
	}
	assert.Equal(t, "Feb", p.Rows[1].Get("month").Text())
	assert.True(t, p.Rows[2].Get("sales").IsNull())
	assert.Equal(t, ds.Version, p.Version)
}

func TestProjectIsIdempotent(t *testing.T) {
	t.Parallel()
	ds, md := sample()
	once := Project(ds, md)
	assert.Equal(t, once, Project(once, md))
}

func TestProjectEmpty(t *testing.T) {
	t.Parallel()
	p := Project(dataset.New([]string{"a", "b"}, nil, nil), dataset.MetadataIndex{})
	assert.Empty(t, p.Columns)
	assert.Empty(t, p.Rows)
	assert.NotNil(t, p.Columns)
}

func TestProjectWithoutMetadata(t *testing.T) {
	t.Parallel()
	ds, _ := sample()
	p := Project(ds, dataset.MetadataIndex{})
	assert.Equal(t, []string{"internalId", "month", "sales"}, p.Columns)
}

func TestPaging(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		rows   int
		always bool
		want   bool
	}{
		{"small_table", 24, false, false},
		{"at_threshold", 25, false, true},
		{"large_table", 300, false, true},
		{"small_forced", 3, true, true},
		{"empty", 0, false, false},
	}
	p := DefaultPaging()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p.AlwaysPaginate = tc.always
			assert.Equal(t, tc.want, p.Enabled(tc.rows))
		})
	}

	custom := Paging{Threshold: 10}
	assert.True(t, custom.Enabled(10))
	assert.False(t, custom.Enabled(9))
}

func TestMobileNavigation(t *testing.T) {
	t.Parallel()
	assert.True(t, MobileNavigation(2, DefaultMobileNavigationColumns))
	assert.False(t, MobileNavigation(3, DefaultMobileNavigationColumns))
}

func TestSortRows(t *testing.T) {
	t.Parallel()
	rows := []dataset.Row{
		{cell("name", "b"), cell("n", 10)},
		{cell("name", "a"), cell("n", nil)},
		{cell("name", "c"), cell("n", 2)},
		{cell("name", "d"), cell("n", 10)},
	}
	names := func(rs []dataset.Row) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.Get("name").Text()
		}
		return out
	}

	assert.Equal(t, []string{"c", "b", "d", "a"}, names(SortRows(rows, SortSpec{Column: "n"})))
	assert.Equal(t, []string{"b", "d", "c", "a"}, names(SortRows(rows, SortSpec{Column: "n", Descending: true})))
	assert.Equal(t, []string{"a", "b", "c", "d"}, names(SortRows(rows, SortSpec{Column: "name"})))
	assert.Equal(t, []string{"b", "a", "c", "d"}, names(SortRows(rows, SortSpec{})))
	assert.Equal(t, "b", rows[0].Get("name").Text(), "input must not be reordered")
}

func TestSortRowsByDate(t *testing.T) {
	t.Parallel()
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	rows := []dataset.Row{{cell("d", day(3))}, {cell("d", day(1))}, {cell("d", day(2))}}
	sorted := SortRows(rows, SortSpec{Column: "d"})
	first, _ := sorted[0].Get("d").Time()
	assert.Equal(t, day(1), first)
}
