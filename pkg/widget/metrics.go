package widget

import (
	"github.com/Slach/chartfmt/pkg/dataset"
	"github.com/Slach/chartfmt/pkg/layout"
	"github.com/Slach/chartfmt/pkg/tickformat"
)

// Metric is a single headline number.
type Metric struct {
	Title      string        `yaml:"title"`
	Value      dataset.Value `yaml:"-"`
	Percentage bool          `yaml:"percentage"`
	Currency   string        `yaml:"currency"`
}

// MetricCard is a formatted Metric.
type MetricCard struct {
	Title   string
	Display string
	Raw     string
}

// MetricsGroup formats metrics and lays them out perRow to a row.
func MetricsGroup(metrics []Metric, perRow int, significantDigits bool, f *tickformat.Formatter) [][]MetricCard {
	if f == nil {
		f = tickformat.Default()
	}
	cards := make([]MetricCard, len(metrics))
	for i, m := range metrics {
		cards[i] = MetricCard{
			Title:   m.Title,
			Display: f.FormatMetric(m.Value, significantDigits, m.Percentage, m.Currency),
			Raw:     m.Value.String(),
		}
	}
	return layout.ChunkMetrics(cards, perRow)
}
