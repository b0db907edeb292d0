package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEstimateWidthPercent verifies the width formula against hand-computed values
func TestEstimateWidthPercent(t *testing.T) {
	testCases := []struct {
		name     string
		columns  []string
		rows     int
		preview  bool
		expected float64
	}{
		{
			name:     "empty_dataset_full",
			columns:  nil,
			rows:     0,
			expected: 100 * 100 / 960.0, // margin only
		},
		{
			name:     "empty_dataset_preview",
			columns:  []string{"month", "sales"},
			rows:     0,
			preview:  true,
			expected: 100 * 100 / 480.0,
		},
		{
			name:     "twelve_months_full",
			columns:  []string{"month", "sales"},
			rows:     12,
			expected: ((5+1)*12*8 + 100) * 100 / 960.0, // 676px
		},
		{
			name:     "twelve_months_preview",
			columns:  []string{"month", "sales"},
			rows:     12,
			preview:  true,
			expected: ((5+1)*12*8 + 100) * 100 / 480.0, // above 100, needs scroll
		},
		{
			name:     "wide_characters",
			columns:  []string{"売上"},
			rows:     2,
			expected: ((4+1)*2*8 + 100) * 100 / 960.0,
		},
	}

	e := DefaultEstimator()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, e.WidthPercent(tc.columns, tc.rows, tc.preview), 1e-9)
		})
	}
}

func TestEstimateWidthPercentMonotonic(t *testing.T) {
	t.Parallel()
	columns := []string{"category", "value"}
	prev := EstimateWidthPercent(columns, 0, FullWidth, PixelsPerCharacter, HorizontalMargin)
	for rows := 1; rows <= 200; rows++ {
		cur := EstimateWidthPercent(columns, rows, FullWidth, PixelsPerCharacter, HorizontalMargin)
		assert.GreaterOrEqual(t, cur, prev, "rows=%d", rows)
		prev = cur
	}
}

func TestEstimateWidthPercentDegenerate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, EstimateWidthPercent([]string{"a"}, 10, 0, 8, 100))
	assert.Equal(t, 0.0, EstimateWidthPercent([]string{"a"}, 10, -1, 8, 100))
	assert.InDelta(t, 10.0, EstimateWidthPercent([]string{"a"}, -3, 1000, 8, 100), 1e-9)
}

func TestScrollDecision(t *testing.T) {
	t.Parallel()
	assert.True(t, NeedsScroll(135, true))
	assert.False(t, NeedsScroll(135, false))
	assert.False(t, NeedsScroll(100, true))

	assert.Equal(t, 135.0, ContainerPercent(135, true))
	assert.Equal(t, 100.0, ContainerPercent(80, true))
	assert.Equal(t, 100.0, ContainerPercent(135, false))
}

func TestLongestHeaderCountsCells(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, LongestHeader([]string{"売上"}))
	assert.Equal(t, 7, LongestHeader([]string{"売上", "revenue"}))
	assert.Equal(t, 0, LongestHeader(nil))
}

func TestAxisPadding(t *testing.T) {
	t.Parallel()
	p := DefaultPadding()
	assert.Equal(t, 20, p.AxisPadding(Viewport{Width: 1280, MobilePreview: true}))
	assert.Equal(t, 20, p.AxisPadding(Viewport{Width: 640, Preview: true}))
	assert.Equal(t, 60, p.AxisPadding(Viewport{Width: 1280, Preview: true}))
	assert.Equal(t, 120, p.AxisPadding(Viewport{Width: 1280}))
	assert.Equal(t, 120, p.AxisPadding(Viewport{Width: 800}))
}

func TestChunkMetrics(t *testing.T) {
	t.Parallel()
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, ChunkMetrics(items, 2))
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5}}, ChunkMetrics(items, 0))
	assert.Nil(t, ChunkMetrics([]int{}, 3))
}
