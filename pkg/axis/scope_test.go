package axis_test

import (
	"fmt"
	"testing"

	"github.com/Slach/chartfmt/pkg/axis"
	"github.com/Slach/chartfmt/pkg/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(pairs ...any) dataset.Row {
	r := make(dataset.Row, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		r = append(r, dataset.Cell{Column: pairs[i].(string), Value: dataset.Of(pairs[i+1])})
	}
	return r
}

func twoSeries() dataset.Dataset {
	return dataset.New(nil, []dataset.Row{
		row("x", "p", "A", 10, "B", 30),
		row("x", "q", "A", 20, "B", 40),
	}, nil)
}

func TestComputeScopeHiddenSeries(t *testing.T) {
	t.Parallel()
	ds := twoSeries()

	all := axis.ComputeScope(ds, nil, true)
	assert.Equal(t, 40.0, all.LargestMagnitude)
	assert.True(t, all.SignificantDigits)

	onlyA := axis.ComputeScope(ds, axis.Hide("B"), true)
	assert.Equal(t, 20.0, onlyA.LargestMagnitude)
	assert.Equal(t, axis.Domain{Min: 10, Max: 20}, onlyA.Domain)

	none := axis.ComputeScope(ds, axis.Hide("A", "B"), false)
	assert.Equal(t, 0.0, none.LargestMagnitude)
	assert.Equal(t, axis.Domain{}, none.Domain)
}

func TestComputeScopeEmpty(t *testing.T) {
	t.Parallel()
	scope := axis.ComputeScope(dataset.New(nil, nil, nil), nil, true)
	assert.Equal(t, 0.0, scope.LargestMagnitude)

	textOnly := dataset.New(nil, []dataset.Row{row("month", "Jan")}, nil)
	assert.Equal(t, 0.0, axis.ComputeScope(textOnly, nil, true).LargestMagnitude)
}

func TestComputeScopeSkipsDeclaredNonNumeric(t *testing.T) {
	t.Parallel()
	ds := dataset.New(nil, []dataset.Row{row("year", 2024, "sales", 1200000)}, []dataset.ColumnMetadata{
		{ColumnName: "year", DataType: dataset.Text},
	})
	assert.Equal(t, 1200000.0, axis.ComputeScope(ds, nil, true).LargestMagnitude)
}

func TestComputeScopeUsesAbsoluteMagnitude(t *testing.T) {
	t.Parallel()
	ds := dataset.New(nil, []dataset.Row{row("x", "a", "v", -5000), row("x", "b", "v", 300)}, nil)
	scope := axis.ComputeScope(ds, nil, true)
	assert.Equal(t, 5000.0, scope.LargestMagnitude)
	assert.Equal(t, axis.Domain{Min: -5000, Max: 300}, scope.Domain)
}

func TestComputeChartScopeExcludesCategory(t *testing.T) {
	t.Parallel()
	ds := dataset.New(nil, []dataset.Row{row("year", 2024, "sales", 12), row("year", 2025, "sales", 15)}, nil)
	assert.Equal(t, 15.0, axis.ComputeChartScope(ds, nil, true, false).LargestMagnitude)
	assert.Equal(t, 2025.0, axis.ComputeScope(ds, nil, true).LargestMagnitude)
}

func TestComputeChartScopeStacked(t *testing.T) {
	t.Parallel()
	ds := dataset.New(nil, []dataset.Row{
		row("x", "p", "A", 5, "B", 15, "C", -4),
		row("x", "q", "A", 1, "B", 2, "C", -30),
	}, nil)

	stacked := axis.ComputeChartScope(ds, nil, true, true)
	assert.True(t, stacked.Stacked)
	assert.Equal(t, 30.0, stacked.LargestMagnitude)
	assert.Equal(t, axis.Domain{Min: -30, Max: 20}, stacked.Domain)

	withoutC := axis.ComputeChartScope(ds, axis.Hide("C"), true, true)
	assert.Equal(t, 20.0, withoutC.LargestMagnitude)
	assert.Equal(t, axis.Domain{Min: 0, Max: 20}, withoutC.Domain)
}

func TestLargestByColumn(t *testing.T) {
	t.Parallel()
	ds := dataset.New(nil, []dataset.Row{
		row("month", "Jan", "sales", 1200000, "units", 12),
		row("month", "Feb", "sales", -3000000, "units", 40),
	}, []dataset.ColumnMetadata{{ColumnName: "month", DataType: dataset.Text}})

	got := axis.LargestByColumn(ds, nil)
	assert.Equal(t, map[string]float64{"sales": 3000000, "units": 40}, got)

	got = axis.LargestByColumn(ds, axis.Hide("units"))
	assert.Equal(t, map[string]float64{"sales": 3000000}, got)
}

func TestMemoRecomputesOnlyOnKeyChange(t *testing.T) {
	t.Parallel()
	var memo axis.Memo[axis.Scope]
	ds := twoSeries()
	calls := 0
	compute := func(hidden axis.Hidden) func() axis.Scope {
		return func() axis.Scope {
			calls++
			return axis.ComputeScope(ds, hidden, true)
		}
	}

	key := axis.Key{Dataset: ds.Version, Visibility: 1, SignificantDigits: true}
	first := memo.Get(key, compute(nil))
	again := memo.Get(key, compute(nil))
	assert.Equal(t, first, again)
	assert.Equal(t, 1, calls)

	hiddenKey := key
	hiddenKey.Visibility = 2
	scope := memo.Get(hiddenKey, compute(axis.Hide("B")))
	assert.Equal(t, 20.0, scope.LargestMagnitude)
	assert.Equal(t, 2, calls)

	flagKey := hiddenKey
	flagKey.SignificantDigits = false
	memo.Get(flagKey, compute(axis.Hide("B")))
	assert.Equal(t, 3, memo.Misses())

	memo.Reset()
	memo.Get(flagKey, compute(axis.Hide("B")))
	assert.Equal(t, 4, calls)
}

func TestXAxisType(t *testing.T) {
	t.Parallel()
	numeric := dataset.New(nil, []dataset.Row{row("year", 2024, "v", 1), row("year", 2025, "v", 2)}, nil)
	assert.Equal(t, axis.Numeric, axis.XAxisType(numeric))

	declared := dataset.New(nil, numeric.Rows, []dataset.ColumnMetadata{{ColumnName: "year", DataType: dataset.Text}})
	assert.Equal(t, axis.Category, axis.XAxisType(declared))

	mixed := dataset.New(nil, []dataset.Row{row("year", 2024, "v", 1), row("year", "total", "v", 2)}, nil)
	assert.Equal(t, axis.Category, axis.XAxisType(mixed))

	assert.Equal(t, axis.Category, axis.XAxisType(dataset.New(nil, nil, nil)))
}

func BenchmarkComputeScope(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("rows_%d", size), func(b *testing.B) {
			rows := make([]dataset.Row, size)
			for i := range rows {
				rows[i] = row("x", fmt.Sprintf("c%d", i), "A", i, "B", i*2, "C", -i)
			}
			ds := dataset.New(nil, rows, nil)
			hidden := axis.Hide("C")
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				scope := axis.ComputeChartScope(ds, hidden, true, true)
				require.NotZero(b, scope.LargestMagnitude)
			}
		})
	}
}
