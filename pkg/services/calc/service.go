package calc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/livecost/pkg/models/domain"
	"github.com/de-tools/livecost/pkg/services/cost"
	"github.com/de-tools/livecost/pkg/services/report"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Service validates counters and produces the breakdown with its daily report.
type Service interface {
	Calculate(ctx context.Context, counters domain.InputCounters) (domain.CalculationResult, error)
}

// Options configure a Service. Zero fields fall back to defaults.
type Options struct {
	Calculator cost.Calculator
	Generator  report.Generator
	Clock      func() time.Time
	Metrics    *Metrics
}

type service struct {
	calculator cost.Calculator
	generator  report.Generator
	clock      func() time.Time
	metrics    *Metrics
}

func NewService(opts Options) Service {
	if opts.Calculator == nil {
		opts.Calculator = cost.NewCalculator()
	}
	if opts.Generator == nil {
		opts.Generator = report.NewGenerator(time.Local)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics(prometheus.NewRegistry())
	}

	return &service{
		calculator: opts.Calculator,
		generator:  opts.Generator,
		clock:      opts.Clock,
		metrics:    opts.Metrics,
	}
}

func (s *service) Calculate(ctx context.Context, counters domain.InputCounters) (domain.CalculationResult, error) {
	logger := zerolog.Ctx(ctx)
	timer := prometheus.NewTimer(s.metrics.duration)
	defer timer.ObserveDuration()

	if err := counters.Validate(); err != nil {
		s.metrics.calculations.WithLabelValues(outcomeInvalid).Inc()
		logger.Debug().Err(err).Msg("rejected counters")
		return domain.CalculationResult{}, err
	}

	breakdown, err := s.calculator.Compute(counters)
	if err != nil {
		return domain.CalculationResult{}, s.fail(logger, counters, err)
	}

	rep, err := s.generator.Generate(counters, breakdown, s.clock())
	if err != nil {
		return domain.CalculationResult{}, s.fail(logger, counters, err)
	}

	s.metrics.calculations.WithLabelValues(outcomeOK).Inc()
	for _, w := range rep.Warnings {
		s.metrics.warnings.WithLabelValues(string(w.Metric)).Inc()
	}

	logger.Info().
		Int("fans_count", counters.FansCount).
		Float64("total_cost", breakdown.TotalCost).
		Int("warnings", len(rep.Warnings)).
		Msg("cost calculation completed")

	return domain.CalculationResult{Breakdown: breakdown, Report: rep}, nil
}

func (s *service) fail(logger *zerolog.Logger, counters domain.InputCounters, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		s.metrics.calculations.WithLabelValues(outcomeInvalid).Inc()
		return err
	}

	s.metrics.calculations.WithLabelValues(outcomeError).Inc()
	logger.Error().
		Err(err).
		Interface("counters", counters).
		Msg("cost calculation failed")

	if !errors.Is(err, domain.ErrComputation) {
		err = fmt.Errorf("%w: %w", domain.ErrComputation, err)
	}
	return err
}
