// Package tui is the terminal rendition of the site: the three marketing
// screens followed by the five-step demo wizard.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tarush10000/Sooru-Demo/domain/estimate"
	"github.com/tarush10000/Sooru-Demo/domain/navigation"
	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/domain/wizard"
	"github.com/tarush10000/Sooru-Demo/internal/content"
	"github.com/tarush10000/Sooru-Demo/internal/ui"
)

// fadeDoneMsg ends a screen transition and applies the pending action.
type fadeDoneMsg struct{}

// shareDoneMsg reports a finished share action.
type shareDoneMsg struct {
	status string
}

// Options configures a Model.
type Options struct {
	// Delay is the fade between screens. Zero applies transitions at once.
	Delay time.Duration
	Color bool
	// Screen is where the session starts; empty means the landing screen.
	Screen navigation.Screen
}

// Model represents the state of the TUI application.
type Model struct {
	shell   *navigation.Shell
	svc     *estimate.Service
	sharer  *share.Sharer
	catalog *content.Catalog
	opts    Options
	palette ui.Palette

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int

	// Plan form focus on step 1
	field int

	estimate *plan.Estimate
	summary  string

	fading  bool
	pending func(*Model)
	status  string
	err     error
}

// New creates the model.
func New(svc *estimate.Service, sharer *share.Sharer, catalog *content.Catalog, opts Options) Model {
	shell := navigation.New()
	if opts.Screen != "" {
		shell.Go(opts.Screen)
	}
	h := help.New()
	return Model{
		shell:   shell,
		svc:     svc,
		sharer:  sharer,
		catalog: catalog,
		opts:    opts,
		palette: ui.NewPalette(opts.Color),
		keys:    DefaultKeyMap(),
		help:    h,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Screen is the current top-level screen.
func (m Model) Screen() navigation.Screen {
	return m.shell.Current()
}

// Step is the wizard step, or 0 when no wizard is running.
func (m Model) Step() wizard.Step {
	if !m.shell.HasWizard() {
		return 0
	}
	return m.shell.Wizard().Step()
}

// Plan is the plan chosen so far.
func (m Model) Plan() plan.Details {
	if !m.shell.HasWizard() {
		return plan.Details{}
	}
	return m.shell.Wizard().Plan()
}

// Estimate is the cost shown from step 4 on.
func (m Model) Estimate() *plan.Estimate {
	return m.estimate
}

// Status is the last share outcome.
func (m Model) Status() string {
	return m.status
}

// Err is the last error raised while computing an estimate.
func (m Model) Err() error {
	return m.err
}

// Fading reports whether a transition is in flight.
func (m Model) Fading() bool {
	return m.fading
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case fadeDoneMsg:
		m.fading = false
		if m.pending != nil {
			m.pending(&m)
			m.pending = nil
		}
		m.refresh()
		return m, nil

	case shareDoneMsg:
		m.status = msg.status
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	// Input is ignored mid-fade, like the site's disabled buttons.
	if m.fading {
		return m, nil
	}

	if m.shell.Current() != navigation.ScreenDemo {
		switch {
		case key.Matches(msg, m.keys.Continue), key.Matches(msg, m.keys.Next):
			if _, ok := m.shell.Current().Next(); ok {
				return m.transition(func(m *Model) { m.shell.Advance() })
			}
		case key.Matches(msg, m.keys.Home):
			if m.shell.Current() != navigation.ScreenLanding {
				return m.transition(func(m *Model) { m.shell.Home() })
			}
		}
		return m, nil
	}

	w := m.shell.Wizard()
	switch {
	case key.Matches(msg, m.keys.Continue), key.Matches(msg, m.keys.Next):
		if !w.IsLast() {
			return m.transition(func(m *Model) { m.shell.Wizard().Next() })
		}
	case key.Matches(msg, m.keys.Prev):
		if !w.IsFirst() {
			return m.transition(func(m *Model) { m.shell.Wizard().Prev() })
		}
	case key.Matches(msg, m.keys.Restart):
		if w.IsLast() {
			return m.transition(func(m *Model) {
				m.shell.Wizard().Restart()
				m.field = 0
				m.status = ""
			})
		}
	case key.Matches(msg, m.keys.Home):
		return m.transition(func(m *Model) {
			m.shell.Home()
			m.field = 0
			m.status = ""
		})
	case key.Matches(msg, m.keys.Up):
		if w.Step() == wizard.StepPlanDetails && m.field > 0 {
			m.field--
		}
	case key.Matches(msg, m.keys.Down):
		if w.Step() == wizard.StepPlanDetails && m.field < len(plan.Fields())-1 {
			m.field++
		}
	case key.Matches(msg, m.keys.Cycle):
		if w.Step() == wizard.StepPlanDetails {
			m.cycleOption()
		}
	case key.Matches(msg, m.keys.WhatsApp):
		if w.IsLast() {
			return m, m.share(string(share.PlatformWhatsApp))
		}
	case key.Matches(msg, m.keys.Twitter):
		if w.IsLast() {
			return m, m.share(string(share.PlatformTwitter))
		}
	case key.Matches(msg, m.keys.CopyLink):
		if w.IsLast() {
			return m, m.copyLink()
		}
	}
	return m, nil
}

// transition fades the screen out and applies fn once the fade ends.
func (m Model) transition(fn func(*Model)) (tea.Model, tea.Cmd) {
	if m.opts.Delay <= 0 {
		fn(&m)
		m.refresh()
		return m, nil
	}
	m.fading = true
	m.pending = fn
	return m, tea.Tick(m.opts.Delay, func(time.Time) tea.Msg {
		return fadeDoneMsg{}
	})
}

// cycleOption moves the focused field to its next option, wrapping through
// "not chosen".
func (m *Model) cycleOption() {
	spec := plan.Fields()[m.field]
	w := m.shell.Wizard()
	current := w.Plan().Get(spec.Field)

	next := spec.Options[0]
	for i, opt := range spec.Options {
		if opt == current {
			if i+1 < len(spec.Options) {
				next = spec.Options[i+1]
			} else {
				next = ""
			}
			break
		}
	}
	w.SetField(spec.Field, next)
}

// refresh keeps the estimate in step with the wizard. The variance is drawn
// again each time the cost step is entered.
func (m *Model) refresh() {
	step := m.Step()
	if step < wizard.StepCostAnalysis {
		m.estimate = nil
		m.summary = ""
		return
	}
	if m.estimate != nil && step != wizard.StepCostAnalysis {
		return
	}

	est, err := m.svc.Estimate(context.Background(), m.shell.Wizard().Plan(), estimate.SourceCLI)
	if err != nil {
		m.err = err
		return
	}
	m.estimate = &est
	m.summary, err = m.svc.Summary(est)
	if err != nil {
		m.err = err
	}
}

func (m Model) share(platform string) tea.Cmd {
	sharer := m.sharer
	return func() tea.Msg {
		intent, ok := sharer.Share(context.Background(), platform)
		if !ok {
			return shareDoneMsg{}
		}
		return shareDoneMsg{status: fmt.Sprintf("Opened %s share", intent.Platform.Label())}
	}
}

func (m Model) copyLink() tea.Cmd {
	sharer := m.sharer
	return func() tea.Msg {
		return shareDoneMsg{status: "Link copied: " + sharer.CopyLink(context.Background())}
	}
}
