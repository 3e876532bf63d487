// Package navigation holds the screen the visitor is on and owns the demo
// wizard while they are on the demo screen.
package navigation

import (
	"fmt"
	"strings"
	"time"

	"github.com/tarush10000/Sooru-Demo/domain/wizard"
)

// TransitionDelay is the cosmetic fade between screens. Nothing waits on it
// for correctness.
const TransitionDelay = 300 * time.Millisecond

// Screen is one of the four top-level pages.
type Screen string

const (
	ScreenLanding   Screen = "landing"
	ScreenSolutions Screen = "solutions"
	ScreenFeatures  Screen = "features"
	ScreenDemo      Screen = "demo"
)

var order = []Screen{ScreenLanding, ScreenSolutions, ScreenFeatures, ScreenDemo}

// Screens returns the screens in narrative order.
func Screens() []Screen {
	return append([]Screen(nil), order...)
}

// ParseScreen resolves a screen name.
func ParseScreen(name string) (Screen, error) {
	s := Screen(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range order {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown screen %q", name)
}

// Next is the screen the call-to-action on s leads to. Demo has no next.
func (s Screen) Next() (Screen, bool) {
	for i, known := range order {
		if known == s && i+1 < len(order) {
			return order[i+1], true
		}
	}
	return s, false
}

// Shell is the single top-level controller of a visit.
type Shell struct {
	current Screen
	wizard  *wizard.State
}

// New returns a shell on the landing screen.
func New() *Shell {
	return &Shell{current: ScreenLanding}
}

func (sh *Shell) Current() Screen {
	return sh.current
}

// Advance follows the current screen's call-to-action. It reports whether the
// screen changed.
func (sh *Shell) Advance() bool {
	next, ok := sh.current.Next()
	if !ok {
		return false
	}
	sh.Go(next)
	return true
}

// Go jumps to a screen. Landing on the landing screen discards the wizard;
// landing on the demo screen starts one if none is running.
func (sh *Shell) Go(s Screen) {
	sh.current = s
	switch s {
	case ScreenLanding:
		sh.wizard = nil
	case ScreenDemo:
		if sh.wizard == nil {
			sh.wizard = wizard.New()
		}
	}
}

// Home returns to the landing screen and discards the wizard.
func (sh *Shell) Home() {
	sh.Go(ScreenLanding)
}

// Wizard returns the running wizard, starting one if needed.
func (sh *Shell) Wizard() *wizard.State {
	if sh.wizard == nil {
		sh.wizard = wizard.New()
	}
	return sh.wizard
}

// HasWizard reports whether a wizard is running, without starting one.
func (sh *Shell) HasWizard() bool {
	return sh.wizard != nil
}
