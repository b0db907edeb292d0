// Package widget wires the formatting and sizing core together the way a
// dashboard widget consumes it: one call per tick, tooltip, label or cell.
package widget

import (
	"github.com/Slach/chartfmt/pkg/axis"
	"github.com/Slach/chartfmt/pkg/dataset"
	"github.com/Slach/chartfmt/pkg/layout"
	"github.com/Slach/chartfmt/pkg/legend"
	"github.com/Slach/chartfmt/pkg/tickformat"
)

// ChartOptions are the per-widget switches of a column chart.
type ChartOptions struct {
	SignificantDigits bool
	Stacked           bool
	Preview           bool
	HorizontalScroll  bool
	HideDataLabels    bool
}

// Series is the legend entry of one chart series.
type Series struct {
	Name    string
	Hidden  bool
	Opacity float64
}

// ChartWidget formats the values of a column chart. The legend state is
// shared by handle with whatever renders the legend.
type ChartWidget struct {
	ds        dataset.Dataset
	legend    *legend.Visibility
	formatter *tickformat.Formatter
	estimator layout.Estimator
	opts      ChartOptions
	scope     axis.Memo[axis.Scope]
}

func NewChart(ds dataset.Dataset, vis *legend.Visibility, f *tickformat.Formatter, e layout.Estimator, opts ChartOptions) *ChartWidget {
	if vis == nil {
		vis = legend.New(legend.KeepHidden)
	}
	if f == nil {
		f = tickformat.Default()
	}
	vis.Observe(ds.Version)
	return &ChartWidget{ds: ds, legend: vis, formatter: f, estimator: e, opts: opts}
}

// SetDataset swaps the data and applies the legend's reset policy.
// The cached scope is dropped even when the version is unchanged: copies and
// projections keep their source version.
func (c *ChartWidget) SetDataset(ds dataset.Dataset) {
	c.ds = ds
	c.scope.Reset()
	c.legend.Observe(ds.Version)
}

func (c *ChartWidget) SetSignificantDigits(on bool) {
	c.opts.SignificantDigits = on
}

func (c *ChartWidget) Legend() *legend.Visibility { return c.legend }

// Scope is recomputed only when the dataset, the hidden set or the
// significant-digit flag changed since the last call.
func (c *ChartWidget) Scope() axis.Scope {
	key := axis.Key{
		Dataset:           c.ds.Version,
		Visibility:        c.legend.Version(),
		SignificantDigits: c.opts.SignificantDigits,
		Stacked:           c.opts.Stacked,
	}
	return c.scope.Get(key, func() axis.Scope {
		return axis.ComputeChartScope(c.ds, c.legend, c.opts.SignificantDigits, c.opts.Stacked)
	})
}

// Tick formats a value axis tick.
func (c *ChartWidget) Tick(value float64) string {
	scope := c.Scope()
	return c.formatter.Format(dataset.NumberValue(value), scope.LargestMagnitude, scope.SignificantDigits, "", "", nil)
}

// Tooltip formats one series value with that series' metadata.
func (c *ChartWidget) Tooltip(series string, value dataset.Value) string {
	scope := c.Scope()
	return c.formatter.Format(value, scope.LargestMagnitude, scope.SignificantDigits, "", "", c.ds.Metadata.Get(series))
}

// DataLabel is the label drawn on top of one bar of a non-stacked chart.
// It is empty when labels are off, the chart is stacked or the series hidden.
func (c *ChartWidget) DataLabel(row dataset.Row, series string) string {
	if c.opts.HideDataLabels || c.opts.Stacked || c.legend.IsHidden(series) {
		return ""
	}
	return c.Tooltip(series, row.Get(series))
}

// StackedLabel is the total drawn on top of a stacked bar, summing the
// visible series only.
func (c *ChartWidget) StackedLabel(row dataset.Row) string {
	if c.opts.HideDataLabels || !c.opts.Stacked {
		return ""
	}
	scope := c.Scope()
	return c.formatter.StackedFormat(row, scope.LargestMagnitude, scope.SignificantDigits, c.legend.Visible(c.ds.Series()), c.ds.Metadata)
}

// Series lists the legend entries in column order.
func (c *ChartWidget) Series() []Series {
	names := c.ds.Series()
	out := make([]Series, len(names))
	for i, name := range names {
		out[i] = Series{Name: name, Hidden: c.legend.IsHidden(name), Opacity: c.legend.Opacity(name)}
	}
	return out
}

// Categories are the x axis labels. Undeclared numeric categories such as
// years are printed without grouping.
func (c *ChartWidget) Categories() []string {
	category := c.ds.Category()
	out := make([]string, len(c.ds.Rows))
	md := c.ds.Metadata.Get(category)
	for i, row := range c.ds.Rows {
		v := row.Get(category)
		if md == nil && v.Kind() == dataset.KindNumber {
			out[i] = v.String()
			continue
		}
		out[i] = c.formatter.Format(v, 0, false, "", "", md)
	}
	return out
}

func (c *ChartWidget) XAxisType() axis.Type { return axis.XAxisType(c.ds) }

// WidthPercent is the estimated width relative to the reference width.
func (c *ChartWidget) WidthPercent() float64 {
	return c.estimator.WidthPercent(c.ds.Columns, len(c.ds.Rows), c.opts.Preview)
}

func (c *ChartWidget) NeedsScroll() bool {
	return layout.NeedsScroll(c.WidthPercent(), c.opts.HorizontalScroll)
}

func (c *ChartWidget) ContainerPercent() float64 {
	return layout.ContainerPercent(c.WidthPercent(), c.opts.HorizontalScroll)
}

func (c *ChartWidget) Dataset() dataset.Dataset { return c.ds }

func (c *ChartWidget) Options() ChartOptions { return c.opts }
