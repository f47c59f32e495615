package domain

import "time"

// DailyReport is the outcome of one calculation request.
type DailyReport struct {
	Date          time.Time // civil date in the report location, midnight
	Timestamp     time.Time // instant of generation
	Counters      InputCounters
	Breakdown     CostBreakdown
	Warnings      []Warning
	Analysis      []Analysis
	FormattedText string
}

// Warning reports a unit cost above its threshold.
type Warning struct {
	Metric    Metric
	Value     float64
	Threshold float64
	Message   string
}

type AnalysisKind string

const (
	AnalysisGood       AnalysisKind = "good"
	AnalysisPoor       AnalysisKind = "poor"
	AnalysisScale      AnalysisKind = "scale"
	AnalysisConversion AnalysisKind = "conversion"
)

// Analysis is one line of the report's advisory section.
type Analysis struct {
	Kind    AnalysisKind
	Metric  Metric  // set for good/poor verdicts
	Rate    float64 // conversion percentage, set for AnalysisConversion
	Message string
}

// CalculationResult bundles the breakdown with the report built from it.
type CalculationResult struct {
	Breakdown CostBreakdown
	Report    DailyReport
}
