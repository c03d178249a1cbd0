package inspect

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// styles groups the styles of one rendering. Plain styles carry no colors.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	wide    lipgloss.Style
	invalid lipgloss.Style
	border  lipgloss.Style
	ok      lipgloss.Style
	bad     lipgloss.Style
}

func newStyles(color bool) styles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	if !color {
		return styles{
			title:   lipgloss.NewStyle().Bold(true),
			label:   lipgloss.NewStyle(),
			header:  cell.Bold(true),
			cell:    cell,
			wide:    cell,
			invalid: cell,
			border:  lipgloss.NewStyle(),
			ok:      lipgloss.NewStyle(),
			bad:     lipgloss.NewStyle(),
		}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		label:   lipgloss.NewStyle().Foreground(colorMuted),
		header:  cell.Bold(true).Foreground(colorPrimary),
		cell:    cell,
		wide:    cell.Foreground(colorAccent),
		invalid: cell.Foreground(colorError),
		border:  lipgloss.NewStyle().Foreground(colorMuted),
		ok:      lipgloss.NewStyle().Foreground(colorSecondary),
		bad:     lipgloss.NewStyle().Foreground(colorError),
	}
}
