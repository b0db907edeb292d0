// Package legend holds the interactive legend state of a chart: which series
// are hidden and which one is hovered.
//
// A Visibility is owned by a single session and mutated only by discrete
// user actions; it is not safe for concurrent mutation.
package legend

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// ResetPolicy decides what happens to the hidden set when the chart is
// handed a different dataset.
type ResetPolicy int

const (
	// KeepHidden carries the hidden set over to the new dataset.
	KeepHidden ResetPolicy = iota
	// ResetOnDatasetChange shows every series again and clears hover.
	ResetOnDatasetChange
)

// DefaultDimmedOpacity is applied to series that are not hovered while
// another series is.
const DefaultDimmedOpacity = 0.2

// Visibility tracks hidden and hovered series. The zero value is usable with
// KeepHidden and fully transparent dimming; New sets DefaultDimmedOpacity.
type Visibility struct {
	hidden   map[string]struct{}
	hovered  string
	hovering bool
	version  uint64
	dataset  uint64
	observed bool
	policy   ResetPolicy
	dimmed   float64
}

func New(policy ResetPolicy) *Visibility {
	return &Visibility{
		hidden: make(map[string]struct{}),
		policy: policy,
		dimmed: DefaultDimmedOpacity,
	}
}

// SetDimmedOpacity overrides DefaultDimmedOpacity.
func (v *Visibility) SetDimmedOpacity(opacity float64) {
	v.dimmed = opacity
}

// Toggle hides a visible series or shows a hidden one.
func (v *Visibility) Toggle(column string) {
	if v.hidden == nil {
		v.hidden = make(map[string]struct{})
	}
	if _, ok := v.hidden[column]; ok {
		delete(v.hidden, column)
	} else {
		v.hidden[column] = struct{}{}
	}
	v.version++
}

// SetHovered replaces the hovered series; an empty name clears it.
// Hover never changes which series are aggregated, so it does not bump Version.
func (v *Visibility) SetHovered(column string) {
	v.hovered = column
	v.hovering = column != ""
}

func (v *Visibility) ClearHovered() {
	v.SetHovered("")
}

func (v *Visibility) IsHidden(column string) bool {
	if v == nil {
		return false
	}
	_, ok := v.hidden[column]
	return ok
}

// Hidden returns the hidden series in name order.
func (v *Visibility) Hidden() []string {
	out := make([]string, 0, len(v.hidden))
	for c := range v.hidden {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (v *Visibility) Hovered() (string, bool) {
	return v.hovered, v.hovering
}

// Visible filters columns down to the ones not hidden, preserving order.
func (v *Visibility) Visible(columns []string) []string {
	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if !v.IsHidden(c) {
			out = append(out, c)
		}
	}
	return out
}

// Opacity is 1 for every series when nothing is hovered, otherwise 1 for the
// hovered series and the dimmed opacity for the rest.
func (v *Visibility) Opacity(column string) float64 {
	if !v.hovering || v.hovered == column {
		return 1
	}
	return v.dimmed
}

// Version changes whenever the hidden set changes.
func (v *Visibility) Version() uint64 {
	if v == nil {
		return 0
	}
	return v.version
}

// Observe tells the legend which dataset it is attached to and applies the
// reset policy when that dataset changes. It reports whether state was reset.
func (v *Visibility) Observe(datasetVersion uint64) bool {
	if !v.observed {
		v.observed = true
		v.dataset = datasetVersion
		return false
	}
	if v.dataset == datasetVersion {
		return false
	}
	v.dataset = datasetVersion
	if v.policy != ResetOnDatasetChange {
		return false
	}
	log.Debug().Uint64("dataset", datasetVersion).Int("hidden", len(v.hidden)).Msg("legend reset on dataset change")
	v.hidden = make(map[string]struct{})
	v.hovered, v.hovering = "", false
	v.version++
	return true
}
