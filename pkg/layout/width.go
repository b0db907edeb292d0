// Package layout computes the content-driven sizes a renderer reads to decide
// between compressing, scrolling and paginating.
package layout

import "github.com/mattn/go-runewidth"

const (
	PreviewWidth       = 480
	FullWidth          = 960
	PixelsPerCharacter = 8
	HorizontalMargin   = 100
)

// Estimator holds the reference widths and per-character metrics.
type Estimator struct {
	PreviewWidth       float64
	FullWidth          float64
	PixelsPerCharacter float64
	HorizontalMargin   float64
}

func DefaultEstimator() Estimator {
	return Estimator{
		PreviewWidth:       PreviewWidth,
		FullWidth:          FullWidth,
		PixelsPerCharacter: PixelsPerCharacter,
		HorizontalMargin:   HorizontalMargin,
	}
}

func (e Estimator) ReferenceWidth(preview bool) float64 {
	if preview {
		return e.PreviewWidth
	}
	return e.FullWidth
}

// WidthPercent estimates the chart width for rowCount categories as a
// percentage of the preview or full reference width.
func (e Estimator) WidthPercent(columns []string, rowCount int, preview bool) float64 {
	return EstimateWidthPercent(columns, rowCount, e.ReferenceWidth(preview), e.PixelsPerCharacter, e.HorizontalMargin)
}

// EstimateWidthPercent returns
//
//	((longestHeader + 1) * rowCount * pixelsPerCharacter + horizontalMargin) * 100 / referenceWidth
//
// unclamped: values above 100 mean the content does not fit without
// horizontal scrolling. A non-positive reference width yields 0.
func EstimateWidthPercent(columns []string, rowCount int, referenceWidth, pixelsPerCharacter, horizontalMargin float64) float64 {
	if referenceWidth <= 0 {
		return 0
	}
	if rowCount < 0 {
		rowCount = 0
	}
	content := float64(LongestHeader(columns)+1) * float64(rowCount) * pixelsPerCharacter
	return (content + horizontalMargin) * 100 / referenceWidth
}

// LongestHeader is the widest column name in terminal cells, not characters:
// East Asian wide runes count as two.
func LongestHeader(columns []string) int {
	longest := 0
	for _, c := range columns {
		if w := runewidth.StringWidth(c); w > longest {
			longest = w
		}
	}
	return longest
}

// NeedsScroll reports whether content of widthPercent should scroll
// horizontally instead of being compressed.
func NeedsScroll(widthPercent float64, horizontalScroll bool) bool {
	return horizontalScroll && widthPercent > 100
}

// ContainerPercent is the container width a renderer should use: the
// estimate when scrolling, never below 100; otherwise exactly 100.
func ContainerPercent(widthPercent float64, horizontalScroll bool) float64 {
	if !horizontalScroll || widthPercent < 100 {
		return 100
	}
	return widthPercent
}
