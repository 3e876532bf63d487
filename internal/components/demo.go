package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/domain/wizard"
	"github.com/tarush10000/Sooru-Demo/internal/content"
)

// nextFormID links the plan selects on step 1 to the Next Step form.
const nextFormID = "demo-next"

// StepView is one dot on the progress bar.
type StepView struct {
	Number int
	Title  string
	Status wizard.StepStatus
}

// DemoView is everything the demo screen needs for one render.
type DemoView struct {
	Step      wizard.Step
	Progress  int
	Steps     []StepView
	Plan      plan.Details
	Estimate  plan.Estimate
	Summary   string
	ShareLink string
}

// NewDemoView snapshots the wizard. est and summary only matter on the cost
// and share steps.
func NewDemoView(c *content.Catalog, w *wizard.State, est plan.Estimate, summary, shareLink string) DemoView {
	steps := make([]StepView, 0, len(wizard.Steps()))
	for _, s := range wizard.Steps() {
		title := c.StepTitle(int(s))
		if title == "" {
			title = s.Title()
		}
		steps = append(steps, StepView{Number: int(s), Title: title, Status: w.Status(s)})
	}
	return DemoView{
		Step:      w.Step(),
		Progress:  w.Progress(),
		Steps:     steps,
		Plan:      w.Plan(),
		Estimate:  est,
		Summary:   summary,
		ShareLink: shareLink,
	}
}

// Demo is the live demo screen.
func Demo(c *content.Catalog, v DemoView) g.Node {
	return Section(
		Class("container center"),
		H1(Class("title"), g.Text(c.Demo.Heading)),
		P(Class("subheading"), g.Text(c.Demo.Subheading)),
		ProgressBar(v.Steps, v.Progress),
		Div(
			Class("demo-body"),
			g.Attr("data-step", strconv.Itoa(int(v.Step))),
			demoStep(c, v),
			g.If(v.Step != wizard.LastStep, NavigationButtons(v.Step)),
		),
	)
}

func demoStep(c *content.Catalog, v DemoView) g.Node {
	switch v.Step {
	case wizard.StepPlanDetails:
		return PlanDetailsStep(v.Plan)
	case wizard.StepDesign2D:
		return Design2DStep(v.Plan)
	case wizard.StepDesign3D:
		return Design3DStep(v.Plan)
	case wizard.StepCostAnalysis:
		return CostAnalysisStep(v.Estimate, c.Demo.Footer)
	default:
		return ShareStep(v.Summary, v.ShareLink)
	}
}

// ProgressBar shows the five steps and a fill proportional to progress.
func ProgressBar(steps []StepView, progress int) g.Node {
	return Div(
		Class("progress"),
		Div(
			Class("progress-steps"),
			g.Group(g.Map(steps, func(s StepView) g.Node {
				marker := g.Node(g.Text(strconv.Itoa(s.Number)))
				if s.Status == wizard.StatusDone {
					marker = Icon("lucide--check", "done")
				}
				return Div(
					Class("progress-step "+string(s.Status)),
					Div(Class("progress-dot"), marker),
					Span(Class("progress-label"), g.Text(s.Title)),
				)
			})),
		),
		Div(
			Class("progress-track"),
			Div(
				Class("progress-fill"),
				Style(fmt.Sprintf("width: %d%%", progress)),
			),
		),
	)
}

func stepHeading(number int, before, highlight, after string) g.Node {
	return H2(
		Class("step-heading"),
		g.Textf("Step %d: %s", number, before),
		Span(Class("accent"), g.Text(highlight)),
		g.If(after != "", g.Text(" "+after)),
	)
}

func successBanner(text string) g.Node {
	return Div(
		Class("banner"),
		Icon("lucide--check", ""),
		Span(g.Text(text)),
	)
}

// PlanDetailsStep renders the four selects. They submit with the Next Step
// form so the choices are saved when the visitor moves on.
func PlanDetailsStep(d plan.Details) g.Node {
	return Div(
		Class("panel"),
		stepHeading(1, "Specify Your ", "Plan Details", ""),
		Div(
			Class("grid grid-2"),
			g.Group(g.Map(plan.Fields(), func(spec plan.FieldSpec) g.Node {
				current := d.Get(spec.Field)
				id := "plan-" + string(spec.Field)
				return Div(
					Class("field"),
					Label(For(id), g.Text(spec.Label)),
					Select(
						ID(id),
						Name(string(spec.Field)),
						g.Attr("form", nextFormID),
						Option(Value(""), g.If(current == "", Selected()), g.Text("Select...")),
						g.Group(g.Map(spec.Options, func(opt string) g.Node {
							return Option(Value(opt), g.If(opt == current, Selected()), g.Text(opt))
						})),
					),
				)
			})),
		),
	)
}

func planSummary(d plan.Details) g.Node {
	row := func(label, value string) g.Node {
		return Div(Class("summary-row"), g.Text(label+": "), Span(Class("value"), g.Text(plan.ValueOrNA(value))))
	}
	return Div(
		Class("summary grid grid-2"),
		row("Rooms", d.Rooms),
		row("Style", d.Style),
		row("Budget", d.Budget),
		row("Size", d.Size),
	)
}

// Design2DStep is the canned "generated floor plan".
func Design2DStep(d plan.Details) g.Node {
	return Div(
		Class("panel"),
		stepHeading(2, "", "2D Design", "Generated"),
		Div(
			Class("canvas"),
			Icon("lucide--layers icon-xl", ""),
			H3(g.Text("2D Floor Plan")),
			P(Class("muted"), g.Text("Generated based on your specifications")),
			planSummary(d),
		),
		successBanner("AI has generated your personalized 2D floor plan!"),
	)
}

// Design3DStep is the canned "interactive 3D model".
func Design3DStep(d plan.Details) g.Node {
	style := d.Style
	if style == "" {
		style = "dream"
	}
	return Div(
		Class("panel"),
		stepHeading(3, "", "3D Visualization", ""),
		Div(
			Class("canvas canvas-3d"),
			Icon("lucide--box icon-xl", ""),
			H3(g.Text("Interactive 3D Model")),
			P(Class("muted"), g.Textf("Experience your %s design in stunning detail", style)),
			Div(
				Class("button-row"),
				Button(Type("button"), Class("btn btn-secondary"), Icon("lucide--rotate-cw", ""), g.Text("Rotate View")),
				Button(Type("button"), Class("btn btn-secondary"), Icon("lucide--eye", ""), g.Text("Walk Through")),
			),
		),
		successBanner(fmt.Sprintf("Experience your %s-room home in stunning 3D!", plan.RoomsLabel(d.Rooms))),
	)
}

// CostAnalysisStep shows the breakdown and the smart analysis.
func CostAnalysisStep(est plan.Estimate, footer string) g.Node {
	costs := []struct {
		Label  string
		Amount int64
	}{
		{"Foundation & Structure", est.Cost.Foundation},
		{"Materials & Finishes", est.Cost.Materials},
		{"Labor & Installation", est.Cost.Labor},
	}
	a := est.Analysis
	analysis := []struct {
		Label string
		Icon  string
		Tone  string
	}{
		{fmt.Sprintf("Energy Efficiency: %s Rating", a.EnergyRating), "lucide--lightbulb", "good"},
		{fmt.Sprintf("Space Utilization: %d%% Optimal", a.SpaceUtilization), "lucide--settings", "info"},
		{fmt.Sprintf("Natural Light: %s", a.NaturalLight), "lucide--sun", "warm"},
		{fmt.Sprintf("Budget Variance: %s (Within Range)", a.BudgetVariance), "lucide--trending-up", "good"},
	}

	return Div(
		Class("panel"),
		stepHeading(4, "", "Cost & Analysis", ""),
		Div(
			Class("grid grid-2"),
			Div(
				Class("card"),
				H3(Class("card-title"), Icon("lucide--dollar-sign", ""), g.Text("Cost Breakdown")),
				g.Group(g.Map(costs, func(item struct {
					Label  string
					Amount int64
				}) g.Node {
					return Div(
						Class("cost-row"),
						Span(g.Text(item.Label)),
						Span(Class("amount"), g.Text(plan.FormatAmount(item.Amount))),
					)
				})),
				Div(
					Class("cost-row total"),
					Span(g.Text("Total Estimated Cost")),
					Span(Class("amount"), g.Text(plan.FormatUSD(est.Cost.Total))),
				),
			),
			Div(
				Class("card"),
				H3(Class("card-title"), Icon("lucide--brain", ""), g.Text("Smart Analysis")),
				g.Group(g.Map(analysis, func(item struct {
					Label string
					Icon  string
					Tone  string
				}) g.Node {
					return Div(
						Class("analysis-row "+item.Tone),
						Icon(item.Icon, ""),
						Span(g.Text(item.Label)),
					)
				})),
			),
		),
		successBanner(footer),
	)
}

// ShareStep offers the export and share actions plus restart and home.
func ShareStep(summary, shareLink string) g.Node {
	shares := []struct {
		Label string
		Href  string
		Icon  string
	}{
		{"Share on WhatsApp", "/demo/share/" + string(share.PlatformWhatsApp), "lucide--message-circle"},
		{"Share on Twitter", "/demo/share/" + string(share.PlatformTwitter), "lucide--share-2"},
	}

	return Div(
		Class("panel"),
		stepHeading(5, "Share Your ", "Creation", ""),
		Div(
			Class("complete"),
			Icon("lucide--check icon-xl", ""),
			H3(g.Text("Design Complete!")),
			P(Class("muted"), g.Text(summary)),
		),
		Div(
			Class("grid grid-2"),
			Div(
				Class("card"),
				H4(Class("card-title"), Icon("lucide--cloud", ""), g.Text("Export Options")),
				g.Group(g.Map(share.ExportOptions(), func(o share.ExportOption) g.Node {
					return Button(Type("button"), Class("btn btn-export"), Icon(o.Icon, ""), g.Text(o.Label))
				})),
			),
			Div(
				Class("card"),
				H4(Class("card-title"), Icon("lucide--palette", ""), g.Text("Share Your Design")),
				g.Group(g.Map(shares, func(s struct {
					Label string
					Href  string
					Icon  string
				}) g.Node {
					return A(Href(s.Href), Target("_blank"), Rel("noopener"), Class("btn btn-share"), Icon(s.Icon, ""), g.Text(s.Label))
				})),
				A(
					Href("/demo/share-link"),
					Class("btn btn-share"),
					g.Attr("data-copy-link", shareLink),
					Icon("lucide--copy", ""),
					g.Text("Copy Share Link"),
				),
			),
		),
		Div(
			Class("button-row"),
			PostButton("/demo/restart", "Try Another Design", "btn btn-primary", "lucide--rotate-ccw"),
			PostButton("/screen/home", "Back to Home", "btn btn-ghost", "lucide--home"),
		),
	)
}

// NavigationButtons are shown on steps 1-4. Previous is disabled on step 1.
func NavigationButtons(step wizard.Step) g.Node {
	return Div(
		Class("nav-buttons"),
		PostButton("/demo/prev", "← Previous", "btn btn-ghost", "", g.If(step == wizard.FirstStep, Disabled())),
		Form(
			ID(nextFormID),
			Method("post"),
			Action("/demo/next"),
			g.Attr("data-transition", ""),
			Class("inline-form"),
			Button(Type("submit"), Class("btn btn-primary"), g.Text("Next Step"), Icon("lucide--chevron-right", "")),
		),
	)
}
