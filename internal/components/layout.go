package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	defaultTheme       = "sooru-dark"
	defaultTitle       = "Sooru.AI - Transforming architectural design through AI innovation"
	defaultDescription = "Design your dream home with AI: from concept to 3D visualization in minutes."
)

// Page scripts, loaded at the end of <body> in this order.
var pageScripts = []string{
	"/static/js/transition.js",
	"/static/js/share.js",
}

type PageConfig struct {
	Title       string
	Description string
	Theme       string
	// Screen is exposed as data-screen on <body> for styling and tests.
	Screen string
}

func (c PageConfig) withDefaults() PageConfig {
	if c.Theme == "" {
		c.Theme = defaultTheme
	}
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Description == "" {
		c.Description = defaultDescription
	}
	return c
}

// Layout wraps a screen in the document shell shared by every page.
func Layout(config PageConfig, content ...g.Node) g.Node {
	config = config.withDefaults()

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			g.Attr("data-theme", config.Theme),
			pageHead(config),
			Body(
				Class("page"),
				g.If(config.Screen != "", g.Attr("data-screen", config.Screen)),
				Main(ID("screen"), Class("screen fade-in"), g.Group(content)),
				g.Map(pageScripts, func(src string) g.Node { return Script(Src(src)) }),
			),
		),
	})
}

func pageHead(config PageConfig) g.Node {
	og := [][2]string{
		{"og:title", config.Title},
		{"og:description", config.Description},
		{"og:type", "website"},
	}
	return Head(
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
		TitleEl(g.Text(config.Title)),
		Meta(Name("description"), Content(config.Description)),
		g.Map(og, func(p [2]string) g.Node { return Meta(g.Attr("property", p[0]), Content(p[1])) }),
		Link(Rel("stylesheet"), Href("/static/styles.css")),
		Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
	)
}
