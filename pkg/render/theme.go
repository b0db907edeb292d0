package render

import "charm.land/lipgloss/v2"

// Theme styles terminal output. The zero Theme writes plain text.
type Theme struct {
	Enabled bool
	Header  lipgloss.Style
	Dimmed  lipgloss.Style
	Hidden  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Enabled: true,
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Dimmed:  lipgloss.NewStyle().Faint(true),
		Hidden:  lipgloss.NewStyle().Faint(true).Strikethrough(true),
	}
}

func (t Theme) render(style lipgloss.Style, s string) string {
	if !t.Enabled || s == "" {
		return s
	}
	return style.Render(s)
}

// series styles a legend entry by visibility and hover opacity.
func (t Theme) series(s string, hidden bool, opacity float64) string {
	switch {
	case hidden:
		return t.render(t.Hidden, s)
	case opacity < 1:
		return t.render(t.Dimmed, s)
	default:
		return s
	}
}
