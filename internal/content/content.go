// Package content holds the marketing copy shown on the site and in the
// terminal demo. The catalog is embedded and parsed once.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var raw []byte

type Problem struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon"`
}

// Card is a feature or use case tile. Gradient holds the two stops of the
// tile's icon background.
type Card struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Gradient    []string `yaml:"gradient"`
}

type Landing struct {
	Tagline  string    `yaml:"tagline"`
	Heading  string    `yaml:"heading"`
	CTA      string    `yaml:"cta"`
	Problems []Problem `yaml:"problems"`
}

type Solutions struct {
	Heading         string   `yaml:"heading"`
	Subheading      string   `yaml:"subheading"`
	ChallengesTitle string   `yaml:"challenges_title"`
	SolutionsTitle  string   `yaml:"solutions_title"`
	CTA             string   `yaml:"cta"`
	Challenges      []string `yaml:"challenges"`
	Solutions       []string `yaml:"solutions"`
}

type Features struct {
	Heading       string   `yaml:"heading"`
	Subheading    string   `yaml:"subheading"`
	UseCasesTitle string   `yaml:"use_cases_title"`
	UpcomingTitle string   `yaml:"upcoming_title"`
	CTA           string   `yaml:"cta"`
	Items         []Card   `yaml:"items"`
	UseCases      []Card   `yaml:"use_cases"`
	Upcoming      []string `yaml:"upcoming"`
}

type Demo struct {
	Heading    string   `yaml:"heading"`
	Subheading string   `yaml:"subheading"`
	Footer     string   `yaml:"footer"`
	Steps      []string `yaml:"steps"`
}

// Catalog is the full set of copy.
type Catalog struct {
	Brand     string    `yaml:"brand"`
	Landing   Landing   `yaml:"landing"`
	Solutions Solutions `yaml:"solutions"`
	Features  Features  `yaml:"features"`
	Demo      Demo      `yaml:"demo"`
}

var (
	loadOnce sync.Once
	catalog  *Catalog
	loadErr  error
)

// Load returns the embedded catalog.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		catalog, loadErr = Parse(raw)
	})
	return catalog, loadErr
}

// MustLoad is Load for package initialisation paths where a broken embed is a
// build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every section has copy to show.
func (c *Catalog) Validate() error {
	var errs []error
	check := func(name string, n int) {
		if n == 0 {
			errs = append(errs, fmt.Errorf("content: %s is empty", name))
		}
	}
	check("brand", len(c.Brand))
	check("landing.problems", len(c.Landing.Problems))
	check("solutions.challenges", len(c.Solutions.Challenges))
	check("solutions.solutions", len(c.Solutions.Solutions))
	check("features.items", len(c.Features.Items))
	check("features.use_cases", len(c.Features.UseCases))
	check("features.upcoming", len(c.Features.Upcoming))
	check("demo.steps", len(c.Demo.Steps))
	for _, card := range append(append([]Card(nil), c.Features.Items...), c.Features.UseCases...) {
		if len(card.Gradient) != 2 {
			errs = append(errs, fmt.Errorf("content: card %q needs two gradient stops", card.Title))
		}
	}
	return errors.Join(errs...)
}

// StepTitle returns the title of a 1-based wizard step, or "" when out of
// range.
func (c *Catalog) StepTitle(step int) string {
	if step < 1 || step > len(c.Demo.Steps) {
		return ""
	}
	return c.Demo.Steps[step-1]
}
