package share

import (
	"context"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"github.com/tarush10000/Sooru-Demo/pkg/logger"
)

// Opener opens a URL in a new browser context.
type Opener interface {
	Open(url string) error
}

// Clipboard receives the copied share link.
type Clipboard interface {
	WriteText(text string) error
}

// SystemBrowser opens URLs with the desktop's default browser.
type SystemBrowser struct{}

func (SystemBrowser) Open(u string) error {
	return browser.OpenURL(u)
}

// SystemClipboard writes to the desktop clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// Sharer performs share actions. Browser and clipboard failures are logged
// and otherwise ignored; the visitor simply sees nothing happen.
type Sharer struct {
	composer  *Composer
	opener    Opener
	clipboard Clipboard
	link      string
	log       *slog.Logger
}

// NewSharer wires a Sharer. An empty link falls back to DefaultLink.
func NewSharer(composer *Composer, opener Opener, cb Clipboard, link string, log *slog.Logger) *Sharer {
	if link == "" {
		link = DefaultLink
	}
	return &Sharer{
		composer:  composer,
		opener:    opener,
		clipboard: cb,
		link:      link,
		log:       log.With(logger.Scope("share")),
	}
}

// Share opens the intent for tag. Tags other than the supported platforms do
// nothing and report false.
func (s *Sharer) Share(ctx context.Context, tag string) (Intent, bool) {
	p, err := ParsePlatform(tag)
	if err != nil {
		s.log.DebugContext(ctx, "ignoring share request", slog.String("platform", tag))
		return Intent{}, false
	}

	intent, err := s.composer.Intent(p)
	if err != nil {
		s.log.WarnContext(ctx, "failed to build share intent", logger.Error(err))
		return Intent{}, false
	}

	if err := s.opener.Open(intent.URL); err != nil {
		s.log.DebugContext(ctx, "browser refused share intent",
			slog.String("platform", string(p)),
			logger.Error(err),
		)
	}
	return intent, true
}

// CopyLink puts the share link on the clipboard and returns it.
func (s *Sharer) CopyLink(ctx context.Context) string {
	if err := s.clipboard.WriteText(s.link); err != nil {
		s.log.DebugContext(ctx, "clipboard write failed", logger.Error(err))
	}
	return s.link
}

// Link returns the literal share link.
func (s *Sharer) Link() string {
	return s.link
}
