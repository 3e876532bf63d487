// Package ui renders CLI output: tables, status markers and the cost panel.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Colors reports whether colored output should be used. NO_COLOR and the
// --no-color flag both turn it off.
func Colors(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	return os.Getenv("NO_COLOR") == ""
}

// Palette is the small set of styles the CLI draws with.
type Palette struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Accent lipgloss.Style
	Muted  lipgloss.Style
}

// NewPalette returns the brand palette, or plain styles when color is off.
func NewPalette(color bool) Palette {
	if !color {
		plain := lipgloss.NewStyle()
		return Palette{
			Title:  plain.Bold(true),
			Label:  plain,
			Value:  plain,
			Accent: plain.Bold(true),
			Muted:  plain,
		}
	}
	return Palette{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Accent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22d3ee")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Status is a one-glyph outcome marker.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusInfo    Status = "info"
)

// RenderStatus draws a status marker. Without color it falls back to a
// bracketed word so the output stays greppable.
func RenderStatus(status Status, color bool) string {
	if !color {
		switch status {
		case StatusSuccess:
			return "[OK]"
		case StatusWarning:
			return "[WARN]"
		default:
			return "[INFO]"
		}
	}

	symbol, c := "ℹ", "12"
	switch status {
	case StatusSuccess:
		symbol, c = "✓", "10"
	case StatusWarning:
		symbol, c = "⚠", "11"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true).Render(symbol)
}
