package render

import (
	"fmt"
	"io"

	"github.com/Slach/chartfmt/pkg/widget"
)

// Metrics draws each row of cards side by side, title above value.
func Metrics(w io.Writer, rows [][]widget.MetricCard) error {
	for _, row := range rows {
		titles := make([]string, len(row))
		values := make([]string, len(row))
		for i, card := range row {
			titles[i], values[i] = card.Title, card.Display
		}
		widths := computeWidths(titles, [][]string{values})
		right := make([]bool, len(widths))
		if err := writePlainRow(w, titles, widths, right); err != nil {
			return err
		}
		if err := writePlainRow(w, values, widths, right); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
