// Package render draws widget views as plain terminal text.
package render

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Slach/chartfmt/pkg/widget"
)

type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderASCII                      // +-+|
	BorderNone
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// ParseBorder maps a config or flag value to a BorderStyle.
func ParseBorder(s string) BorderStyle {
	switch strings.ToLower(s) {
	case "ascii":
		return BorderASCII
	case "none", "plain":
		return BorderNone
	default:
		return BorderRounded
	}
}

// TableOptions control how a TableView is drawn.
type TableOptions struct {
	Border   BorderStyle
	PageSize int
	Page     int
	Empty    string
	Theme    Theme
}

// Table writes view to w. When the view paginates and PageSize is set, only
// the requested page (1-based) is written, followed by a page indicator.
func Table(w io.Writer, view widget.TableView, opts TableOptions) error {
	if view.Empty() {
		if opts.Empty == "" {
			opts.Empty = "No results"
		}
		_, err := fmt.Fprintln(w, opts.Empty)
		return err
	}

	rows := view.Rows
	pages, page := 1, 1
	if view.Paginate && opts.PageSize > 0 {
		pages = (len(rows) + opts.PageSize - 1) / opts.PageSize
		page = min(max(opts.Page, 1), pages)
		start := (page - 1) * opts.PageSize
		rows = rows[start:min(start+opts.PageSize, len(rows))]
	}

	widths := computeWidths(view.Columns, view.Rows)
	right := make([]bool, len(widths))
	copy(right, view.Numeric)

	header := make([]string, len(view.Columns))
	for i, column := range view.Columns {
		header[i] = opts.Theme.render(opts.Theme.Header, alignCell(column, widths[i], false))
	}

	var err error
	if opts.Border == BorderNone {
		err = renderPlain(w, header, rows, widths, right)
	} else {
		err = renderBordered(w, header, rows, widths, right, borderSets[opts.Border])
	}
	if err != nil {
		return err
	}
	if pages > 1 {
		_, err = fmt.Fprintf(w, "page %d/%d, %d rows\n", page, pages, len(view.Rows))
	}
	return err
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func alignCell(s string, width int, right bool) string {
	pad := width - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", pad) + s
	}
	return s + strings.Repeat(" ", pad)
}

func renderPlain(w io.Writer, header []string, rows [][]string, widths []int, right []bool) error {
	if err := writePlainRow(w, header, widths, make([]bool, len(widths))); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, right); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int, right []bool) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = alignCell(cell, width, right[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

func renderBordered(w io.Writer, header []string, rows [][]string, widths []int, right []bool, bc borderChars) error {
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if err := drawRow(w, header, widths, make([]bool, len(widths)), bc.vertical); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawRow(w, row, widths, right, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	segs := make([]string, len(widths))
	for i, width := range widths {
		segs[i] = strings.Repeat(fill, width+2)
	}
	_, err := fmt.Fprintln(w, left+strings.Join(segs, mid)+right)
	return err
}

func drawRow(w io.Writer, cells []string, widths []int, right []bool, vertical string) error {
	var b strings.Builder
	b.WriteString(vertical)
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(" ")
		b.WriteString(alignCell(cell, width, right[i]))
		b.WriteString(" ")
		b.WriteString(vertical)
	}
	_, err := fmt.Fprintln(w, b.String())
	return err
}
