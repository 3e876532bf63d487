package share

import (
	"fmt"
	"sync"

	"github.com/aymerick/raymond"

	"github.com/tarush10000/Sooru-Demo/domain/plan"
)

const (
	promoTemplate   = "🏠 Just designed my dream home using Sooru.AI! 🎨✨ This AI-powered architectural tool is amazing - from concept to 3D visualization in minutes! Check it out: {{{site}}} #Architecture #AI #HomeDesign"
	summaryTemplate = "Your {{#if style}}{{{style}}}{{else}}AI-generated{{/if}} {{{rooms}}}-room design ({{{total}}}) is ready to share"

	DefaultSite = "sooru.ai"
)

// Composer renders the share texts. Templates are parsed once and reused.
type Composer struct {
	site string

	once    sync.Once
	promo   *raymond.Template
	summary *raymond.Template
	err     error
}

// NewComposer returns a composer that links to site.
func NewComposer(site string) *Composer {
	if site == "" {
		site = DefaultSite
	}
	return &Composer{site: site}
}

func (c *Composer) parse() error {
	c.once.Do(func() {
		if c.promo, c.err = raymond.Parse(promoTemplate); c.err != nil {
			c.err = fmt.Errorf("parse promo template: %w", c.err)
			return
		}
		if c.summary, c.err = raymond.Parse(summaryTemplate); c.err != nil {
			c.err = fmt.Errorf("parse summary template: %w", c.err)
		}
	})
	return c.err
}

// Message is the fixed promotional blurb used for every platform.
func (c *Composer) Message() (string, error) {
	if err := c.parse(); err != nil {
		return "", err
	}
	out, err := c.promo.Exec(map[string]any{"site": c.site})
	if err != nil {
		return "", fmt.Errorf("render promo message: %w", err)
	}
	return out, nil
}

// Summary is the "design complete" line on the share step.
func (c *Composer) Summary(d plan.Details, cost plan.CostBreakdown) (string, error) {
	if err := c.parse(); err != nil {
		return "", err
	}
	out, err := c.summary.Exec(map[string]any{
		"style": d.Style,
		"rooms": plan.RoomsLabel(d.Rooms),
		"total": plan.FormatUSD(cost.Total),
	})
	if err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return out, nil
}

// Intent is a ready-to-open share action.
type Intent struct {
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
	Text     string   `json:"text"`
}

// Intent builds the share action for p.
func (c *Composer) Intent(p Platform) (Intent, error) {
	text, err := c.Message()
	if err != nil {
		return Intent{}, err
	}
	u, err := IntentURL(p, text)
	if err != nil {
		return Intent{}, err
	}
	return Intent{Platform: p, URL: u, Text: text}, nil
}
