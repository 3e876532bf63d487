package plan

import (
	"math/rand/v2"
	"strings"
)

const (
	maxSpaceUtilization  = 95
	baseSpaceUtilization = 85

	VarianceOver  = "+3%"
	VarianceUnder = "-2%"
)

// RandSource yields values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRand draws from the process-wide generator.
var DefaultRand RandSource = globalRand{}

// FixedRand always returns the same value. Useful for tests and for the CLI's
// --variance flag.
type FixedRand float64

func (f FixedRand) Float64() float64 { return float64(f) }

// Analysis is the "smart analysis" panel. BudgetVariance is the one value
// drawn at random; everything else follows from the plan.
type Analysis struct {
	EnergyRating     string `json:"energy_rating" yaml:"energy_rating"`
	SpaceUtilization int    `json:"space_utilization" yaml:"space_utilization"`
	NaturalLight     string `json:"natural_light" yaml:"natural_light"`
	BudgetVariance   string `json:"budget_variance" yaml:"budget_variance"`
}

// Estimate bundles the plan with everything derived from it.
type Estimate struct {
	Plan     Details       `json:"plan" yaml:"plan"`
	Cost     CostBreakdown `json:"cost" yaml:"cost"`
	Analysis Analysis      `json:"analysis" yaml:"analysis"`
}

// Analyzer produces analyses using an injected random source.
type Analyzer struct {
	rand RandSource
}

// NewAnalyzer returns an Analyzer. A nil source falls back to DefaultRand.
func NewAnalyzer(src RandSource) *Analyzer {
	if src == nil {
		src = DefaultRand
	}
	return &Analyzer{rand: src}
}

// Analyze derives the analysis for d. Each call draws a fresh variance.
func (a *Analyzer) Analyze(d Details) Analysis {
	return Analysis{
		EnergyRating:     EnergyRating(d.Style),
		SpaceUtilization: SpaceUtilization(ParseRoomCount(d.Rooms)),
		NaturalLight:     NaturalLight(d.Size),
		BudgetVariance:   a.budgetVariance(),
	}
}

// Estimate computes cost and analysis together.
func (a *Analyzer) Estimate(d Details) Estimate {
	return Estimate{
		Plan:     d,
		Cost:     CalculateCost(d),
		Analysis: a.Analyze(d),
	}
}

func (a *Analyzer) budgetVariance() string {
	if a.rand.Float64() > 0.5 {
		return VarianceOver
	}
	return VarianceUnder
}

// EnergyRating is A+ for any style mentioning Modern.
func EnergyRating(style string) string {
	if strings.Contains(style, "Modern") {
		return "A+"
	}
	return "A"
}

// SpaceUtilization grows by two points per room and caps at 95.
func SpaceUtilization(roomCount int) int {
	return min(maxSpaceUtilization, baseSpaceUtilization+2*roomCount)
}

// NaturalLight is Excellent for Large and Extra Large homes.
func NaturalLight(size string) string {
	if strings.Contains(size, "Large") {
		return "Excellent"
	}
	return "Good"
}
