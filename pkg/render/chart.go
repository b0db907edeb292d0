package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Slach/chartfmt/pkg/widget"
)

var barGlyphs = []string{"█", "▓", "▒", "░"}

// ChartOptions control how a chart is drawn. Width is the number of terminal
// columns the chart may use.
type ChartOptions struct {
	Width int
	Theme Theme
}

// Chart draws c as horizontal bars, one line per visible series and
// category, or one stacked bar per category.
func Chart(w io.Writer, c *widget.ChartWidget, opts ChartOptions) error {
	ds := c.Dataset()
	if ds.Empty() {
		_, err := fmt.Fprintln(w, "No results")
		return err
	}

	if err := legendLine(w, c, opts.Theme); err != nil {
		return err
	}

	categories := c.Categories()
	labelWidth := 0
	for _, label := range categories {
		labelWidth = max(labelWidth, runewidth.StringWidth(label))
	}
	barWidth := max(opts.Width-labelWidth-12, 10)
	scope := c.Scope()

	for i, row := range ds.Rows {
		label := alignCell(categories[i], labelWidth, false)
		if c.Options().Stacked {
			var b strings.Builder
			for j, series := range ds.Series() {
				if c.Legend().IsHidden(series) {
					continue
				}
				n, ok := row.Get(series).Float()
				if !ok {
					continue
				}
				b.WriteString(strings.Repeat(barGlyphs[j%len(barGlyphs)], barLength(n, scope.LargestMagnitude, barWidth)))
			}
			if _, err := fmt.Fprintf(w, "%s │%s %s\n", label, b.String(), c.StackedLabel(row)); err != nil {
				return err
			}
			continue
		}
		first := true
		for j, series := range ds.Series() {
			if c.Legend().IsHidden(series) {
				continue
			}
			n, _ := row.Get(series).Float()
			bar := strings.Repeat(barGlyphs[j%len(barGlyphs)], barLength(n, scope.LargestMagnitude, barWidth))
			if !first {
				label = strings.Repeat(" ", labelWidth)
			}
			first = false
			if _, err := fmt.Fprintf(w, "%s │%s %s\n", label, bar, c.DataLabel(row, series)); err != nil {
				return err
			}
		}
	}
	return axisLine(w, c, labelWidth, barWidth)
}

func barLength(n, largest float64, width int) int {
	if largest <= 0 || n <= 0 {
		return 0
	}
	return int(math.Round(n / largest * float64(width)))
}

func legendLine(w io.Writer, c *widget.ChartWidget, theme Theme) error {
	parts := make([]string, 0, len(c.Series()))
	for i, s := range c.Series() {
		mark := barGlyphs[i%len(barGlyphs)]
		if s.Hidden {
			mark = "·"
		}
		parts = append(parts, theme.series(mark+" "+s.Name, s.Hidden, s.Opacity))
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "   "))
	return err
}

func axisLine(w io.Writer, c *widget.ChartWidget, labelWidth, barWidth int) error {
	largest := c.Scope().LargestMagnitude
	lo, hi := c.Tick(0), c.Tick(largest)
	gap := max(barWidth-runewidth.StringWidth(lo)-runewidth.StringWidth(hi), 1)
	_, err := fmt.Fprintf(w, "%s  %s%s%s\n", strings.Repeat(" ", labelWidth), lo, strings.Repeat(" ", gap), hi)
	return err
}
