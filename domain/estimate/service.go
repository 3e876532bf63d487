// Package estimate serves the cost calculator and share composer over JSON
// and provides the same service to the HTML site.
package estimate

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tarush10000/Sooru-Demo/domain/plan"
	"github.com/tarush10000/Sooru-Demo/domain/share"
	"github.com/tarush10000/Sooru-Demo/internal/config"
	"github.com/tarush10000/Sooru-Demo/pkg/logger"
	"github.com/tarush10000/Sooru-Demo/pkg/metrics"
	"github.com/tarush10000/Sooru-Demo/pkg/tracing"
)

// Estimate sources recorded in metrics.
const (
	SourceAPI  = "api"
	SourceSite = "site"
	SourceCLI  = "cli"
)

// Service computes estimates and share intents.
type Service struct {
	analyzer *plan.Analyzer
	composer *share.Composer
	strict   bool
	log      *slog.Logger
}

// NewService builds a Service. A nil rand uses the process-wide generator.
func NewService(analyzer *plan.Analyzer, composer *share.Composer, strict bool, log *slog.Logger) *Service {
	if analyzer == nil {
		analyzer = plan.NewAnalyzer(nil)
	}
	return &Service{
		analyzer: analyzer,
		composer: composer,
		strict:   strict,
		log:      log.With(logger.Scope("estimate")),
	}
}

// NewServiceFromConfig is the fx constructor.
func NewServiceFromConfig(cfg *config.Config, log *slog.Logger) *Service {
	return NewService(plan.NewAnalyzer(nil), share.NewComposer(cfg.Site.ShareSite), cfg.API.StrictOptions, log)
}

// Strict reports whether off-catalog plan values are rejected.
func (s *Service) Strict() bool {
	return s.strict
}

// Estimate computes cost and analysis for d. In strict mode values outside
// the option catalog return a *plan.ValidationError.
func (s *Service) Estimate(ctx context.Context, d plan.Details, source string) (plan.Estimate, error) {
	_, span := tracing.Start(ctx, "estimate.calculate",
		attribute.String("sooru.estimate.source", source),
		attribute.String("sooru.plan.rooms", d.Rooms),
		attribute.String("sooru.plan.style", d.Style),
		attribute.String("sooru.plan.size", d.Size),
	)
	defer span.End()

	if s.strict {
		if err := d.Validate(); err != nil {
			span.RecordError(err)
			return plan.Estimate{}, err
		}
	}

	est := s.analyzer.Estimate(d)
	span.SetAttributes(attribute.Int64("sooru.estimate.total", est.Cost.Total))

	metrics.Estimates.WithLabelValues(source).Inc()
	metrics.EstimateTotal.Observe(float64(est.Cost.Total))

	s.log.DebugContext(ctx, "estimate computed",
		slog.String("source", source),
		slog.Int64("total", est.Cost.Total),
		slog.String("variance", est.Analysis.BudgetVariance))
	return est, nil
}

// Summary is the share-step headline for an estimate.
func (s *Service) Summary(est plan.Estimate) (string, error) {
	return s.composer.Summary(est.Plan, est.Cost)
}

// ShareIntent builds the intent for a platform tag.
func (s *Service) ShareIntent(ctx context.Context, tag string) (share.Intent, error) {
	_, span := tracing.Start(ctx, "estimate.share_intent", attribute.String("sooru.share.platform", tag))
	defer span.End()

	p, err := share.ParsePlatform(tag)
	if err != nil {
		return share.Intent{}, err
	}
	intent, err := s.composer.Intent(p)
	if err != nil {
		span.RecordError(err)
		return share.Intent{}, err
	}
	metrics.Shares.WithLabelValues(string(p)).Inc()
	return intent, nil
}
