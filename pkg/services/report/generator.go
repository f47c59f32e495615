package report

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/de-tools/livecost/pkg/models/domain"
	"github.com/de-tools/livecost/pkg/services/cost"
)

// Generator builds the daily report for a computed breakdown.
type Generator interface {
	Generate(counters domain.InputCounters, breakdown domain.CostBreakdown, now time.Time) (domain.DailyReport, error)
}

type generator struct {
	loc  *time.Location
	tmpl *template.Template
}

// NewGenerator returns a Generator that renders dates and times in loc.
// A nil loc means time.Local.
func NewGenerator(loc *time.Location) Generator {
	if loc == nil {
		loc = time.Local
	}
	return &generator{
		loc:  loc,
		tmpl: newTextTemplate(loc),
	}
}

func (g *generator) Generate(
	counters domain.InputCounters,
	breakdown domain.CostBreakdown,
	now time.Time,
) (domain.DailyReport, error) {
	local := now.In(g.loc)
	y, m, d := local.Date()

	report := domain.DailyReport{
		Date:      time.Date(y, m, d, 0, 0, 0, 0, g.loc),
		Timestamp: now,
		Counters:  counters,
		Breakdown: breakdown,
		Warnings:  Warnings(breakdown),
		Analysis:  Analyze(counters, breakdown),
	}

	var sb strings.Builder
	if err := g.tmpl.Execute(&sb, report); err != nil {
		return domain.DailyReport{}, fmt.Errorf("failed to render report text: %w", err)
	}
	report.FormattedText = sb.String()

	return report, nil
}

// Warnings lists every unit cost strictly above its threshold, in table order.
func Warnings(b domain.CostBreakdown) []domain.Warning {
	warnings := []domain.Warning{}
	for _, t := range thresholds {
		if t.exceeded(b) {
			warnings = append(warnings, t.warning(b))
		}
	}
	return warnings
}

// Analyze returns the advisory lines: one verdict per threshold, then the
// scale and conversion notes when they apply.
func Analyze(c domain.InputCounters, b domain.CostBreakdown) []domain.Analysis {
	analysis := make([]domain.Analysis, 0, len(thresholds)+2)
	for _, t := range thresholds {
		analysis = append(analysis, t.verdict(b))
	}

	if c.FansCount >= scaleFansCount {
		analysis = append(analysis, domain.Analysis{Kind: domain.AnalysisScale, Message: scaleNote})
	}

	if c.PayCount > 0 && c.FansCount > 0 {
		// pay/fans is finite here, Round cannot fail
		rate, _ := cost.Round(float64(c.PayCount) / float64(c.FansCount) * 100)
		analysis = append(analysis, domain.Analysis{
			Kind:    domain.AnalysisConversion,
			Rate:    rate,
			Message: fmt.Sprintf("📊 上粉到付费转化率: %.2f%%", rate),
		})
	}

	return analysis
}
