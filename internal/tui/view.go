package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tarush10000/Sooru-Demo/domain/navigation"
	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/domain/wizard"
	"github.com/tarush10000/Sooru-Demo/internal/ui"
)

const progressWidth = 40

var fadeStyle = lipgloss.NewStyle().Faint(true)

// View renders the current screen.
func (m Model) View() string {
	var body string
	switch m.shell.Current() {
	case navigation.ScreenSolutions:
		body = m.solutionsView()
	case navigation.ScreenFeatures:
		body = m.featuresView()
	case navigation.ScreenDemo:
		body = m.demoView()
	default:
		body = m.landingView()
	}
	if m.fading {
		body = fadeStyle.Render(body)
	}

	var sb strings.Builder
	sb.WriteString(m.palette.Title.Render(m.catalog.Brand))
	sb.WriteString("\n\n")
	sb.WriteString(body)
	sb.WriteString("\n\n")
	if m.showHelp {
		sb.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) landingView() string {
	l := m.catalog.Landing
	lines := []string{
		m.palette.Muted.Render(l.Tagline),
		"",
		m.palette.Accent.Render(l.Heading),
	}
	for _, p := range l.Problems {
		lines = append(lines, "  • "+p.Text)
	}
	lines = append(lines, "", m.palette.Title.Render("[enter] "+l.CTA))
	return strings.Join(lines, "\n")
}

func (m Model) solutionsView() string {
	s := m.catalog.Solutions
	lines := []string{
		m.palette.Accent.Render(s.Heading),
		m.palette.Muted.Render(s.Subheading),
		"",
		m.palette.Title.Render(s.ChallengesTitle),
	}
	for _, c := range s.Challenges {
		lines = append(lines, "  ✗ "+c)
	}
	lines = append(lines, "", m.palette.Title.Render(s.SolutionsTitle))
	for _, c := range s.Solutions {
		lines = append(lines, "  ✓ "+c)
	}
	lines = append(lines, "", m.palette.Title.Render("[enter] "+s.CTA))
	return strings.Join(lines, "\n")
}

func (m Model) featuresView() string {
	f := m.catalog.Features
	lines := []string{
		m.palette.Accent.Render(f.Heading),
		m.palette.Muted.Render(f.Subheading),
		"",
	}
	for _, c := range f.Items {
		lines = append(lines, m.palette.Label.Render(c.Title)+"  "+m.palette.Muted.Render(c.Description))
	}
	lines = append(lines, "", m.palette.Title.Render(f.UseCasesTitle))
	for _, c := range f.UseCases {
		lines = append(lines, "  "+c.Title+": "+c.Description)
	}
	lines = append(lines, "", m.palette.Title.Render(f.UpcomingTitle))
	for _, u := range f.Upcoming {
		lines = append(lines, "  • "+u)
	}
	lines = append(lines, "", m.palette.Title.Render("[enter] "+f.CTA))
	return strings.Join(lines, "\n")
}

func (m Model) demoView() string {
	w := m.shell.Wizard()
	d := m.catalog.Demo

	var sb strings.Builder
	sb.WriteString(m.palette.Accent.Render(d.Heading))
	sb.WriteString("\n")
	sb.WriteString(m.palette.Muted.Render(d.Subheading))
	sb.WriteString("\n\n")
	sb.WriteString(m.progressView(w))
	sb.WriteString("\n\n")

	switch w.Step() {
	case wizard.StepPlanDetails:
		sb.WriteString(m.planView(w.Plan()))
	case wizard.StepDesign2D:
		sb.WriteString(m.design2DView(w.Plan()))
	case wizard.StepDesign3D:
		sb.WriteString(m.design3DView(w.Plan()))
	case wizard.StepCostAnalysis:
		sb.WriteString(m.costView())
	case wizard.StepShare:
		sb.WriteString(m.shareView())
	}

	sb.WriteString("\n\n")
	sb.WriteString(m.navView(w))
	return sb.String()
}

func (m Model) progressView(w *wizard.State) string {
	var steps []string
	for _, s := range wizard.Steps() {
		label := fmt.Sprintf("%d %s", int(s), s.Title())
		switch w.Status(s) {
		case wizard.StatusDone:
			steps = append(steps, m.palette.Accent.Render("✓ "+label))
		case wizard.StatusActive:
			steps = append(steps, m.palette.Title.Render("● "+label))
		default:
			steps = append(steps, m.palette.Muted.Render("○ "+label))
		}
	}

	filled := w.Progress() * progressWidth / 100
	bar := m.palette.Accent.Render(strings.Repeat("█", filled)) +
		m.palette.Muted.Render(strings.Repeat("░", progressWidth-filled))
	return strings.Join(steps, "  ") + "\n" + bar + fmt.Sprintf(" %d%%", w.Progress())
}

func (m Model) planView(d plan.Details) string {
	lines := []string{m.palette.Title.Render("Plan Details"), ""}
	for i, spec := range plan.Fields() {
		cursor := "  "
		if i == m.field {
			cursor = m.palette.Accent.Render("> ")
		}
		value := d.Get(spec.Field)
		if value == "" {
			value = m.palette.Muted.Render("Select " + strings.ToLower(spec.Label))
		} else {
			value = m.palette.Value.Render(value)
		}
		lines = append(lines, cursor+m.palette.Label.Render(spec.Label+": ")+value)
	}
	lines = append(lines, "", m.palette.Muted.Render("↑/↓ choose a field, space to change it"))
	return strings.Join(lines, "\n")
}

func (m Model) planSummary(d plan.Details) string {
	return strings.Join([]string{
		"Rooms: " + plan.ValueOrNA(d.Rooms),
		"Style: " + plan.ValueOrNA(d.Style),
		"Size: " + plan.ValueOrNA(d.Size),
	}, "  ")
}

func (m Model) design2DView(d plan.Details) string {
	return strings.Join([]string{
		m.palette.Title.Render("2D Floor Plan"),
		m.palette.Muted.Render("Generated based on your specifications"),
		m.planSummary(d),
		"",
		ui.RenderStatus(ui.StatusSuccess, m.opts.Color) + " AI has generated your personalized 2D floor plan!",
	}, "\n")
}

func (m Model) design3DView(d plan.Details) string {
	style := d.Style
	if style == "" {
		style = "dream"
	}
	return strings.Join([]string{
		m.palette.Title.Render("Interactive 3D Model"),
		m.palette.Muted.Render(fmt.Sprintf("Experience your %s design in stunning detail", style)),
		"",
		ui.RenderStatus(ui.StatusSuccess, m.opts.Color) +
			fmt.Sprintf(" Experience your %s-room home in stunning 3D!", plan.RoomsLabel(d.Rooms)),
	}, "\n")
}

func (m Model) costView() string {
	if m.estimate == nil {
		if m.err != nil {
			return ui.RenderStatus(ui.StatusWarning, m.opts.Color) + " " + m.err.Error()
		}
		return ""
	}
	return m.palette.Title.Render("Cost Breakdown") + "\n" +
		ui.EstimateTable(*m.estimate, m.opts.Color, m.width).Render() +
		m.palette.Title.Render("Smart Analysis") + "\n" +
		ui.AnalysisTable(m.estimate.Analysis, m.opts.Color, m.width).Render() +
		m.palette.Muted.Render(m.catalog.Demo.Footer)
}

func (m Model) shareView() string {
	lines := []string{
		m.palette.Title.Render("Design Complete!"),
		m.summary,
		"",
		m.palette.Label.Render("Export Options"),
	}
	for _, o := range share.ExportOptions() {
		lines = append(lines, "  "+o.Label)
	}
	lines = append(lines,
		"",
		m.palette.Label.Render("Share Your Design"),
		"  [w] Share on WhatsApp",
		"  [t] Share on Twitter",
		"  [c] Copy Share Link",
	)
	if m.status != "" {
		lines = append(lines, "", ui.RenderStatus(ui.StatusInfo, m.opts.Color)+" "+m.status)
	}
	return strings.Join(lines, "\n")
}

func (m Model) navView(w *wizard.State) string {
	if w.IsLast() {
		return m.palette.Title.Render("[r] Try Another Design") + "   " + m.palette.Muted.Render("[esc] Back to Home")
	}
	prev := m.palette.Label.Render("[←] Previous")
	if w.IsFirst() {
		prev = m.palette.Muted.Render("[←] Previous")
	}
	return prev + "   " + m.palette.Title.Render("[→] Next")
}
