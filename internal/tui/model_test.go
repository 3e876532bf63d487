package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarush10000/Sooru-Demo/domain/estimate"
	"github.com/tarush10000/Sooru-Demo/domain/navigation"
	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/domain/wizard"
	"github.com/tarush10000/Sooru-Demo/internal/content"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
)

type fakeOpener struct{ urls []string }

func (f *fakeOpener) Open(u string) error {
	f.urls = append(f.urls, u)
	return nil
}

type fakeClipboard struct{ texts []string }

func (f *fakeClipboard) WriteText(s string) error {
	f.texts = append(f.texts, s)
	return nil
}

func newTestModel(t *testing.T, opts Options) (Model, *fakeOpener, *fakeClipboard) {
	t.Helper()
	catalog, err := content.Load()
	require.NoError(t, err)

	composer := share.NewComposer("")
	svc := estimate.NewService(plan.NewAnalyzer(plan.FixedRand(0.9)), composer, false, logger.Discard())
	opener := &fakeOpener{}
	cb := &fakeClipboard{}
	sharer := share.NewSharer(composer, opener, cb, "", logger.Discard())
	return New(svc, sharer, catalog, opts), opener, cb
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModel_WalksScreensToDemo(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	assert.Equal(t, navigation.ScreenLanding, m.Screen())
	assert.Equal(t, wizard.Step(0), m.Step())

	enter := tea.KeyMsg{Type: tea.KeyEnter}
	m = press(t, m, enter)
	assert.Equal(t, navigation.ScreenSolutions, m.Screen())
	m = press(t, m, enter, enter)
	assert.Equal(t, navigation.ScreenDemo, m.Screen())
	assert.Equal(t, wizard.StepPlanDetails, m.Step())
}

func TestModel_PlanSelection(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Screen: navigation.ScreenDemo})
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down := tea.KeyMsg{Type: tea.KeyDown}

	m = press(t, m, space)
	assert.Equal(t, "2 Rooms", m.Plan().Rooms)
	m = press(t, m, space)
	assert.Equal(t, "3 Rooms", m.Plan().Rooms)

	m = press(t, m, down, space)
	assert.Equal(t, "Modern", m.Plan().Style)

	m = press(t, m, down, down, space, space, space, space)
	assert.Equal(t, "Extra Large (4000+ sq ft)", m.Plan().Size)

	// the last option wraps back to unset
	m = press(t, m, space)
	assert.Equal(t, "", m.Plan().Size)
	m = press(t, m, space)
	assert.Equal(t, "Small (< 1500 sq ft)", m.Plan().Size)
}

func TestModel_PrevDisabledOnFirstStep(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Screen: navigation.ScreenDemo})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, wizard.StepPlanDetails, m.Step())
}

func TestModel_EstimateFromCostStep(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Screen: navigation.ScreenDemo})
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m = press(t, m, space, space) // 3 Rooms

	m = press(t, m, runes("n"), runes("n"))
	assert.Equal(t, wizard.StepDesign3D, m.Step())
	assert.Nil(t, m.Estimate())

	m = press(t, m, runes("n"))
	require.NotNil(t, m.Estimate())
	assert.Equal(t, int64(49500), m.Estimate().Cost.Total)
	assert.Equal(t, plan.VarianceOver, m.Estimate().Analysis.BudgetVariance)
	assert.Contains(t, m.View(), "$49,500")

	m = press(t, m, runes("n"))
	assert.Equal(t, wizard.StepShare, m.Step())
	assert.Contains(t, m.View(), "Design Complete!")

	// no step past the last
	m = press(t, m, runes("n"))
	assert.Equal(t, wizard.StepShare, m.Step())

	m = press(t, m, runes("p"), runes("p"))
	assert.Equal(t, wizard.StepDesign3D, m.Step())
	assert.Nil(t, m.Estimate())
}

func TestModel_RestartAndHome(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Screen: navigation.ScreenDemo})
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m = press(t, m, space)

	// restart only applies on the last step
	m = press(t, m, runes("r"))
	assert.Equal(t, "2 Rooms", m.Plan().Rooms)

	m = press(t, m, runes("n"), runes("n"), runes("n"), runes("n"), runes("r"))
	assert.Equal(t, wizard.StepPlanDetails, m.Step())
	assert.True(t, m.Plan().IsEmpty())

	m = press(t, m, runes("n"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, navigation.ScreenLanding, m.Screen())
	assert.Equal(t, wizard.Step(0), m.Step())
}

func TestModel_ShareActions(t *testing.T) {
	m, opener, cb := newTestModel(t, Options{Screen: navigation.ScreenDemo})
	m = press(t, m, runes("n"), runes("n"), runes("n"), runes("n"))
	require.Equal(t, wizard.StepShare, m.Step())

	_, cmd := m.Update(runes("w"))
	require.NotNil(t, cmd)
	m = press(t, m, cmd())
	require.Len(t, opener.urls, 1)
	assert.Contains(t, opener.urls[0], "https://wa.me/?text=")
	assert.Equal(t, "Opened WhatsApp share", m.Status())

	_, cmd = m.Update(runes("t"))
	require.NotNil(t, cmd)
	m = press(t, m, cmd())
	require.Len(t, opener.urls, 2)
	assert.Contains(t, opener.urls[1], "https://twitter.com/intent/tweet?text=")

	_, cmd = m.Update(runes("c"))
	require.NotNil(t, cmd)
	m = press(t, m, cmd())
	assert.Equal(t, []string{share.DefaultLink}, cb.texts)
	assert.Equal(t, "Link copied: "+share.DefaultLink, m.Status())
	assert.Contains(t, m.View(), share.DefaultLink)
}

func TestModel_ShareKeysIgnoredBeforeLastStep(t *testing.T) {
	m, opener, _ := newTestModel(t, Options{Screen: navigation.ScreenDemo})
	_, cmd := m.Update(runes("w"))
	assert.Nil(t, cmd)
	assert.Empty(t, opener.urls)
}

func TestModel_FadeDefersTransition(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Delay: navigation.TransitionDelay})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.Fading())
	assert.Equal(t, navigation.ScreenLanding, m.Screen())

	// input during the fade is dropped
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, navigation.ScreenLanding, m.Screen())

	m = press(t, m, fadeDoneMsg{})
	assert.False(t, m.Fading())
	assert.Equal(t, navigation.ScreenSolutions, m.Screen())
}

func TestModel_FadeTickFires(t *testing.T) {
	m, _, _ := newTestModel(t, Options{Delay: time.Millisecond})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		assert.IsType(t, fadeDoneMsg{}, msg)
	case <-ctx.Done():
		t.Fatal("fade tick never fired")
	}
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewPerScreen(t *testing.T) {
	m, _, _ := newTestModel(t, Options{})
	assert.Contains(t, m.View(), "Do you face these challenges?")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Sooru.AI Solutions")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Powerful Features")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	assert.Contains(t, view, "Plan Details")
	assert.Contains(t, view, "20%")
}
