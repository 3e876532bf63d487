package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/tarush10000/Sooru-Demo/internal/content"
)

// Landing is the first screen: the problems Sooru.AI addresses.
func Landing(c *content.Catalog) g.Node {
	l := c.Landing
	return Section(
		Class("container center"),
		Div(
			Class("hero"),
			Logo(),
			P(
				Class("tagline"),
				Icon("lucide--sparkles", ""),
				Span(g.Text(l.Tagline)),
				Icon("lucide--sparkles", ""),
			),
		),
		H2(Class("heading"), g.Text(l.Heading)),
		Div(
			Class("stack"),
			g.Group(g.Map(l.Problems, func(p content.Problem) g.Node {
				return Div(
					Class("card card-problem"),
					Icon(catalogIcon(p.Icon), ""),
					P(g.Text(p.Text)),
				)
			})),
		),
		PostButton("/screen/next", l.CTA, "btn btn-cta", "lucide--arrow-right"),
	)
}

// Solutions pairs each challenge with the matching solution.
func Solutions(c *content.Catalog) g.Node {
	s := c.Solutions
	return Section(
		Class("container center"),
		H1(Class("title"), g.Text(s.Heading)),
		P(Class("subheading"), g.Text(s.Subheading)),
		Div(
			Class("grid grid-2"),
			Div(
				Class("stack"),
				H3(Class("column-title challenges"), g.Text(s.ChallengesTitle)),
				g.Group(g.Map(s.Challenges, func(text string) g.Node {
					return Div(Class("card card-problem"), Span(Class("dot")), P(g.Text(text)))
				})),
			),
			Div(
				Class("stack"),
				H3(Class("column-title solutions"), g.Text(s.SolutionsTitle)),
				g.Group(g.Map(s.Solutions, func(text string) g.Node {
					return Div(Class("card card-solution"), Icon("lucide--check", ""), P(g.Text(text)))
				})),
			),
		),
		PostButton("/screen/next", s.CTA, "btn btn-cta", "lucide--arrow-right"),
	)
}

// Features lists the product features, use cases and upcoming work.
func Features(c *content.Catalog) g.Node {
	f := c.Features
	return Section(
		Class("container center"),
		H1(Class("title"), g.Text(f.Heading)),
		P(Class("subheading"), g.Text(f.Subheading)),
		Div(
			Class("grid grid-3"),
			g.Group(g.Map(f.Items, featureCard)),
		),
		H2(Class("heading"), g.Text(f.UseCasesTitle)),
		Div(
			Class("grid grid-3"),
			g.Group(g.Map(f.UseCases, featureCard)),
		),
		H2(Class("heading"), g.Text(f.UpcomingTitle)),
		Div(
			Class("grid grid-2"),
			g.Group(g.Map(f.Upcoming, func(text string) g.Node {
				return Div(Class("card card-upcoming"), Icon("lucide--star", ""), Span(g.Text(text)))
			})),
		),
		PostButton("/screen/next", f.CTA, "btn btn-cta", "lucide--play"),
	)
}

func featureCard(card content.Card) g.Node {
	return Div(
		Class("card card-feature"),
		IconBadge(catalogIcon(card.Icon), card.Gradient),
		H3(g.Text(card.Title)),
		P(Class("muted"), g.Text(card.Description)),
	)
}
