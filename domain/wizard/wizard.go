// Package wizard sequences the five-step guided demo.
package wizard

import (
	"fmt"

	"github.com/tarush10000/Sooru-Demo/domain/plan"
)

// Step is the 1-based position in the demo.
type Step int

const (
	StepPlanDetails Step = iota + 1
	StepDesign2D
	StepDesign3D
	StepCostAnalysis
	StepShare

	FirstStep = StepPlanDetails
	LastStep  = StepShare
)

var stepTitles = map[Step]string{
	StepPlanDetails:  "Plan Details",
	StepDesign2D:     "2D Design",
	StepDesign3D:     "3D Visualization",
	StepCostAnalysis: "Cost Analysis",
	StepShare:        "Share & Export",
}

// Title is the label shown in the progress bar.
func (s Step) Title() string {
	if t, ok := stepTitles[s]; ok {
		return t
	}
	return fmt.Sprintf("Step %d", int(s))
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

// Steps returns all steps in order.
func Steps() []Step {
	return []Step{StepPlanDetails, StepDesign2D, StepDesign3D, StepCostAnalysis, StepShare}
}

// StepStatus is how a step is drawn in the progress bar.
type StepStatus string

const (
	StatusDone    StepStatus = "done"
	StatusActive  StepStatus = "active"
	StatusPending StepStatus = "pending"
)

// State is one visitor's run through the demo. The zero value is not ready
// for use; call New.
type State struct {
	step Step
	plan plan.Details
}

// New returns a wizard at step 1 with an empty plan.
func New() *State {
	return &State{step: FirstStep}
}

func (s *State) Step() Step {
	return s.step
}

// Plan returns a copy of the current plan.
func (s *State) Plan() plan.Details {
	return s.plan
}

// Next advances one step. It reports whether the step changed.
func (s *State) Next() bool {
	if s.step >= LastStep {
		return false
	}
	s.step++
	return true
}

// Prev goes back one step. It reports whether the step changed.
func (s *State) Prev() bool {
	if s.step <= FirstStep {
		return false
	}
	s.step--
	return true
}

// Restart returns to step 1 and clears the plan.
func (s *State) Restart() {
	s.step = FirstStep
	s.plan.Reset()
}

// SetField updates one plan field. Progress is never gated on the plan, so
// this is valid on any step.
func (s *State) SetField(f plan.Field, value string) {
	s.plan.Set(f, value)
}

// SetPlan replaces the whole plan.
func (s *State) SetPlan(d plan.Details) {
	s.plan = d
}

// IsFirst and IsLast drive the enabled state of the navigation buttons.
func (s *State) IsFirst() bool { return s.step == FirstStep }
func (s *State) IsLast() bool  { return s.step == LastStep }

// Progress is the share of the demo reached, as a percentage.
func (s *State) Progress() int {
	return int(s.step) * 100 / int(LastStep)
}

// Status returns how step other is drawn relative to the current step.
func (s *State) Status(other Step) StepStatus {
	switch {
	case other < s.step:
		return StatusDone
	case other == s.step:
		return StatusActive
	default:
		return StatusPending
	}
}

// Snapshot is a copyable view of the state.
type Snapshot struct {
	Step Step         `json:"step"`
	Plan plan.Details `json:"plan"`
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{Step: s.step, Plan: s.plan}
}

// Restore rebuilds a State from a snapshot, clamping the step into range.
func Restore(snap Snapshot) *State {
	step := snap.Step
	if step < FirstStep {
		step = FirstStep
	}
	if step > LastStep {
		step = LastStep
	}
	return &State{step: step, plan: snap.Plan}
}
