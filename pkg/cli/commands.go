package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Slach/chartfmt/pkg/dataset"
	"github.com/Slach/chartfmt/pkg/render"
	"github.com/Slach/chartfmt/pkg/tableview"
	"github.com/Slach/chartfmt/pkg/widget"
)

func (a *app) tableCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Render a dataset as a table, each column in its own scope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			paging := a.cfg.Paging()
			paging.AlwaysPaginate = paging.AlwaysPaginate || a.cli.Table.AlwaysPaginate
			tw := widget.NewTable(ds, a.cfg.Formatter(), widget.TableOptions{
				SignificantDigits: a.cli.SignificantDigits,
				Sort:              tableview.SortSpec{Column: a.cli.Table.SortBy, Descending: a.cli.Table.SortDesc},
				Paging:            paging,
				MobileColumns:     a.cfg.Table.MobileNavigationColumns,
			})
			border := a.cfg.Table.Border
			if a.cli.Table.Border != "" {
				border = a.cli.Table.Border
			}
			return render.Table(cmd.OutOrStdout(), tw.View(), render.TableOptions{
				Border:   render.ParseBorder(border),
				PageSize: a.cfg.Table.PageSize,
				Page:     a.cli.Table.Page,
				Theme:    a.theme(),
			})
		},
	}
	cmd.Flags().StringVar(&a.cli.Table.SortBy, "sort-by", "", "Column to sort by")
	cmd.Flags().BoolVar(&a.cli.Table.SortDesc, "sort-desc", false, "Sort descending")
	cmd.Flags().IntVar(&a.cli.Table.Page, "page", 1, "Page to show when the table paginates")
	cmd.Flags().BoolVar(&a.cli.Table.AlwaysPaginate, "paginate", false, "Paginate regardless of row count")
	cmd.Flags().StringVar(&a.cli.Table.Border, "border", "", "Border style: rounded, ascii, none")
	return cmd
}

func (a *app) newChart(ds dataset.Dataset) *widget.ChartWidget {
	vis := a.cfg.NewLegend()
	c := widget.NewChart(ds, vis, a.cfg.Formatter(), a.cfg.Estimator(), widget.ChartOptions{
		SignificantDigits: a.cli.SignificantDigits,
		Stacked:           a.cli.Stacked,
		Preview:           a.cli.Preview,
		HorizontalScroll:  a.cli.HorizontalScroll,
		HideDataLabels:    a.cli.HideDataLabels,
	})
	for _, column := range a.cli.Hide {
		if !vis.IsHidden(column) {
			vis.Toggle(column)
		}
	}
	return c
}

func (a *app) chartFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.cli.Stacked, "stacked", false, "Stack series")
	cmd.Flags().BoolVar(&a.cli.Preview, "preview", false, "Size for the preview width")
	cmd.Flags().BoolVar(&a.cli.MobilePreview, "mobile", false, "Size for a mobile preview")
	cmd.Flags().BoolVar(&a.cli.HorizontalScroll, "scroll", false, "Allow horizontal scrolling")
	cmd.Flags().StringSliceVar(&a.cli.Hide, "hide", nil, "Series to hide")
}

func (a *app) chartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render a dataset as a bar chart with scope-consistent labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			c := a.newChart(ds)
			scope := c.Scope()
			log.Debug().
				Float64("largest", scope.LargestMagnitude).
				Float64("min", scope.Domain.Min).
				Float64("max", scope.Domain.Max).
				Int("axis_padding", a.cfg.Padding().AxisPadding(a.viewport())).
				Msg("chart scope")
			return render.Chart(cmd.OutOrStdout(), c, render.ChartOptions{Width: a.columns(), Theme: a.theme()})
		},
	}
	a.chartFlags(cmd)
	cmd.Flags().BoolVar(&a.cli.HideDataLabels, "no-labels", false, "Hide data labels")
	return cmd
}

func (a *app) widthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "width",
		Short: "Print the estimated chart width and scroll decision for a dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			c := a.newChart(ds)
			out := cmd.OutOrStdout()
			_, err = fmt.Fprintf(out,
				"width: %s%%\nscroll: %t\ncontainer: %s%%\naxis padding: %dpx\nx axis: %s\n",
				strconv.FormatFloat(c.WidthPercent(), 'f', 2, 64),
				c.NeedsScroll(),
				strconv.FormatFloat(c.ContainerPercent(), 'f', 2, 64),
				a.cfg.Padding().AxisPadding(a.viewport()),
				c.XAxisType(),
			)
			return err
		},
	}
	a.chartFlags(cmd)
	return cmd
}

func (a *app) metricCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metric [value...]",
		Short: "Format headline numbers, from arguments or the first row of a dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			var metrics []widget.Metric
			if len(args) > 0 {
				for i, arg := range args {
					title := ""
					if i < len(a.cli.Metric.Titles) {
						title = a.cli.Metric.Titles[i]
					}
					metrics = append(metrics, widget.Metric{
						Title:      title,
						Value:      dataset.Of(arg),
						Percentage: a.cli.Metric.Percentage,
						Currency:   a.cli.Metric.Currency,
					})
				}
			} else {
				ds, err := a.loadDataset(cmd.Context())
				if err != nil {
					return err
				}
				metrics = metricsFromDataset(ds)
			}
			rows := widget.MetricsGroup(metrics, a.cli.Metric.PerRow, a.cli.SignificantDigits, a.cfg.Formatter())
			return render.Metrics(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().StringSliceVar(&a.cli.Metric.Titles, "title", nil, "Titles, one per value")
	cmd.Flags().BoolVar(&a.cli.Metric.Percentage, "percentage", false, "Values are percentages")
	cmd.Flags().StringVar(&a.cli.Metric.Currency, "currency", "", "Currency of the values")
	cmd.Flags().IntVar(&a.cli.Metric.PerRow, "per-row", 4, "Metrics per row")
	return cmd
}

// metricsFromDataset turns every visible numeric column of the first row
// into a metric.
func metricsFromDataset(ds dataset.Dataset) []widget.Metric {
	if ds.Empty() {
		return nil
	}
	first := ds.Rows[0]
	var metrics []widget.Metric
	for _, column := range first.Keys() {
		if ds.Metadata.IsHidden(column) {
			continue
		}
		m := widget.Metric{Title: column, Value: first.Get(column)}
		md := ds.Metadata.Get(column)
		if (md != nil && !md.DataType.Numeric()) || (md == nil && m.Value.Kind() != dataset.KindNumber && !m.Value.IsNull()) {
			continue
		}
		if md != nil {
			m.Percentage = md.DataType == dataset.Percentage
			if md.DataType == dataset.Currency {
				m.Currency = md.CurrencyType
				if m.Currency == "" {
					m.Currency = "USD"
				}
			}
		}
		metrics = append(metrics, m)
	}
	return metrics
}

func (a *app) formatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format VALUE",
		Short: "Format one value within a scope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := a.cli.Value
			dataType, ok := dataset.ParseDataType(p.DataType)
			if !ok {
				return errors.Errorf("unknown type %q", p.DataType)
			}
			md := &dataset.ColumnMetadata{DataType: dataType, CurrencyType: p.Currency}
			value := dataset.Resolve(args[0], md, a.cfg.Location())
			scope := p.Scope
			if scope == 0 {
				if n, ok := value.Float(); ok {
					scope = math.Abs(n)
				}
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.cfg.Formatter().Format(value, scope, a.cli.SignificantDigits, p.Prefix, p.Suffix, md))
			return err
		},
	}
	cmd.Flags().Float64Var(&a.cli.Value.Scope, "scope", 0, "Largest magnitude of the scope (default: the value itself)")
	cmd.Flags().StringVar(&a.cli.Value.DataType, "type", "number", "Column type: number, currency, percentage, date, text")
	cmd.Flags().StringVar(&a.cli.Value.Currency, "currency", "", "Currency type for currency values")
	cmd.Flags().StringVar(&a.cli.Value.Prefix, "prefix", "", "Prefix after the sign")
	cmd.Flags().StringVar(&a.cli.Value.Suffix, "suffix", "", "Suffix")
	return cmd
}
