package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return H1(
		Class("brand"),
		g.Text("Sooru.AI"),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	iconName := parts[0]
	return strings.Replace(iconName, "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify glyph from a "set--name [classes]" string.
func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	classes := "iconify icon"
	if sizeClasses := extractSizeClasses(iconClass); sizeClasses != "" {
		classes = fmt.Sprintf("iconify icon %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

// catalogIcons maps the short icon names used in content.yaml to lucide.
var catalogIcons = map[string]string{
	"eye":     "lucide--eye",
	"dollar":  "lucide--dollar-sign",
	"zap":     "lucide--zap",
	"layers":  "lucide--layers",
	"brain":   "lucide--brain",
	"message": "lucide--message-circle",
	"cpu":     "lucide--cpu",
	"file":    "lucide--file-text",
	"cloud":   "lucide--cloud",
	"home":    "lucide--home",
	"users":   "lucide--users",
	"star":    "lucide--star",
}

func catalogIcon(name string) string {
	if icon, ok := catalogIcons[name]; ok {
		return icon
	}
	return "lucide--sparkles"
}

// IconBadge renders an icon on a two-stop gradient tile.
func IconBadge(icon string, gradient []string) g.Node {
	return Span(
		Class("icon-badge"),
		Style(gradientStyle(gradient)),
		Icon(icon, ""),
	)
}

func gradientStyle(stops []string) string {
	if len(stops) < 2 {
		return ""
	}
	return fmt.Sprintf("background: linear-gradient(to right, %s, %s)", stops[0], stops[1])
}

// PostButton is a single-button form. Forms marked data-transition fade the
// screen out before submitting.
func PostButton(action, label, class, icon string, attrs ...g.Node) g.Node {
	return Form(
		Method("post"),
		Action(action),
		g.Attr("data-transition", ""),
		Class("inline-form"),
		Button(
			Type("submit"),
			Class(class),
			g.Group(attrs),
			g.Text(label),
			g.Iff(icon != "", func() g.Node { return Icon(icon, "") }),
		),
	)
}

// NotFound is rendered for unknown site paths.
func NotFound() g.Node {
	return Layout(
		PageConfig{Title: "Not found - Sooru.AI"},
		Section(
			Class("container center"),
			Logo(),
			P(Class("subheading"), g.Text("This page does not exist.")),
			A(Href("/"), Class("btn btn-primary"), g.Text("Back to Home")),
		),
	)
}
