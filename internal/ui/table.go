package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	minColWidth  = 3
)

// Table draws a bordered key/value or multi-column table sized to the
// terminal. Cells wider than their column are cut with an ellipsis.
type Table struct {
	headers  []string
	rows     [][]string
	maxWidth int
	header   lipgloss.Style
	cell     lipgloss.Style
}

// NewTable creates a table. maxWidth 0 means the terminal width.
func NewTable(color bool, maxWidth int, headers ...string) *Table {
	t := &Table{
		headers:  headers,
		maxWidth: maxWidth,
		header:   lipgloss.NewStyle().Bold(true),
		cell:     lipgloss.NewStyle(),
	}
	if color {
		t.header = t.header.Foreground(lipgloss.Color("12"))
	}
	return t
}

// AddRow appends a row. Short rows are padded with empty cells.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render returns the table, one line per row plus borders.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}
	width := t.maxWidth
	if width == 0 {
		width = TerminalWidth()
	}
	widths := t.columnWidths(width)

	var sb strings.Builder
	sb.WriteString(border(widths, "┌", "┬", "┐"))
	sb.WriteString(t.row(t.headers, widths, t.header))
	sb.WriteString(border(widths, "├", "┼", "┤"))
	for _, r := range t.rows {
		sb.WriteString(t.row(r, widths, t.cell))
	}
	sb.WriteString(border(widths, "└", "┴", "┘"))
	return sb.String()
}

func (t *Table) columnWidths(maxWidth int) []int {
	n := len(t.headers)
	widths := make([]int, n)
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range t.rows {
		for i, c := range r {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	// "│ a │ b │" costs n+1 bars and two spaces per column
	overhead := n + 1 + 2*n
	content := 0
	for _, w := range widths {
		content += w
	}
	if content+overhead <= maxWidth {
		return widths
	}

	available := max(maxWidth-overhead, n*minColWidth)
	remaining := available
	for i := 0; i < n-1; i++ {
		w := max(widths[i]*available/content, minColWidth)
		widths[i] = w
		remaining -= w
	}
	widths[n-1] = max(remaining, minColWidth)
	return widths
}

func (t *Table) row(cells []string, widths []int, style lipgloss.Style) string {
	var sb strings.Builder
	sb.WriteString("│")
	for i, w := range widths {
		sb.WriteString(" ")
		sb.WriteString(style.Render(fit(cells[i], w)))
		sb.WriteString(" │")
	}
	sb.WriteString("\n")
	return sb.String()
}

func border(widths []int, left, mid, right string) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, w := range widths {
		sb.WriteString(strings.Repeat("─", w+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	sb.WriteString("\n")
	return sb.String()
}

// fit pads or truncates s to exactly w display cells.
func fit(s string, w int) string {
	sw := lipgloss.Width(s)
	if sw <= w {
		return s + strings.Repeat(" ", w-sw)
	}
	return Truncate(s, w)
}

// Truncate shortens s to at most n runes, ending with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n < minColWidth {
		return strings.Repeat(".", n)
	}
	return string(r[:n-1]) + "…"
}

// TerminalWidth is the width of stdout's terminal, or 80 when it is not one.
func TerminalWidth() int {
	w, _, err := term.GetSize(1)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
