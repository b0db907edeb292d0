package layout

// Padding is the categorical axis padding policy, in pixels.
type Padding struct {
	SmallScreen int
	Mobile      int
	Preview     int
	Full        int
}

func DefaultPadding() Padding {
	return Padding{SmallScreen: 800, Mobile: 20, Preview: 60, Full: 120}
}

// Viewport describes where a chart is being shown.
type Viewport struct {
	Width         int
	Preview       bool
	MobilePreview bool
}

// AxisPadding picks the padding applied on both sides of the category axis.
func (p Padding) AxisPadding(vp Viewport) int {
	switch {
	case vp.MobilePreview || vp.Width < p.SmallScreen:
		return p.Mobile
	case vp.Preview:
		return p.Preview
	default:
		return p.Full
	}
}

// ChunkMetrics splits items into rows of at most perRow items. A
// non-positive perRow puts everything on one row.
func ChunkMetrics[T any](items []T, perRow int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if perRow <= 0 {
		perRow = len(items)
	}
	rows := make([][]T, 0, (len(items)+perRow-1)/perRow)
	for i := 0; i < len(items); i += perRow {
		end := min(i+perRow, len(items))
		rows = append(rows, items[i:end])
	}
	return rows
}
