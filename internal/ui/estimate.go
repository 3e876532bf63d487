package ui

import (
	"fmt"

	"github.com/tarush10000/Sooru-Demo/domain/plan"
)

// EstimateTable lays out a cost breakdown the way the cost step shows it:
// parts as bare amounts, the total in dollars.
func EstimateTable(est plan.Estimate, color bool, width int) *Table {
	t := NewTable(color, width, "Item", "Value")
	t.AddRow("Rooms", plan.ValueOrNA(est.Plan.Rooms))
	t.AddRow("Style", plan.ValueOrNA(est.Plan.Style))
	t.AddRow("Budget", plan.ValueOrNA(est.Plan.Budget))
	t.AddRow("Size", plan.ValueOrNA(est.Plan.Size))
	t.AddRow("Foundation", plan.FormatAmount(est.Cost.Foundation))
	t.AddRow("Materials", plan.FormatAmount(est.Cost.Materials))
	t.AddRow("Labor", plan.FormatAmount(est.Cost.Labor))
	t.AddRow("Total Estimate", plan.FormatUSD(est.Cost.Total))
	return t
}

// AnalysisTable lays out the smart analysis panel.
func AnalysisTable(a plan.Analysis, color bool, width int) *Table {
	t := NewTable(color, width, "Metric", "Value")
	t.AddRow("Energy Efficiency", a.EnergyRating)
	t.AddRow("Space Utilization", fmt.Sprintf("%d%%", a.SpaceUtilization))
	t.AddRow("Natural Light", a.NaturalLight)
	t.AddRow("Budget Variance", a.BudgetVariance)
	return t
}
