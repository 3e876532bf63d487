// Package share builds the promotional share text and the platform intent
// URLs offered on the last demo step.
package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Platform is a share target.
type Platform string

const (
	PlatformWhatsApp Platform = "whatsapp"
	PlatformTwitter  Platform = "twitter"
)

// DefaultLink is the literal link placed on the clipboard by "Copy Share Link".
const DefaultLink = "https://sooru.ai/demo/shared-design-123"

var ErrUnsupportedPlatform = errors.New("unsupported share platform")

var intentBases = map[Platform]string{
	PlatformWhatsApp: "https://wa.me/?text=",
	PlatformTwitter:  "https://twitter.com/intent/tweet?text=",
}

var platformLabels = map[Platform]string{
	PlatformWhatsApp: "WhatsApp",
	PlatformTwitter:  "Twitter",
}

// Label is the platform's display name.
func (p Platform) Label() string {
	if l, ok := platformLabels[p]; ok {
		return l
	}
	return string(p)
}

// Platforms lists the supported intent targets.
func Platforms() []Platform {
	return []Platform{PlatformWhatsApp, PlatformTwitter}
}

// ParsePlatform resolves a platform tag, case-insensitively.
func ParsePlatform(tag string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(tag)))
	if _, ok := intentBases[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, tag)
	}
	return p, nil
}

// IntentURL returns the web-intent URL that pre-fills text on p.
func IntentURL(p Platform, text string) (string, error) {
	base, ok := intentBases[p]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, string(p))
	}
	return base + EncodeURIComponent(text), nil
}

var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers do for a single URI
// component: spaces become %20 and !'()* stay literal.
func EncodeURIComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}

// ExportOption is one of the presentational export buttons.
type ExportOption struct {
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon" yaml:"icon"`
}

// ExportOptions are shown next to the share buttons. None of them produce a
// file.
func ExportOptions() []ExportOption {
	return []ExportOption{
		{Label: "Download PDF Report", Icon: "lucide--file-text"},
		{Label: "Export CAD Files", Icon: "lucide--download"},
		{Label: "Save 3D Model (STL)", Icon: "lucide--download"},
	}
}
