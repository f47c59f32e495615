package report

import (
	"fmt"
	"strconv"

	"github.com/de-tools/livecost/pkg/models/domain"
)

// threshold is a unit-cost ceiling. Warnings and analysis verdicts both read
// from the same table so the two can never disagree.
type threshold struct {
	metric domain.Metric
	limit  float64
	label  string
	good   string
	poor   string
}

var thresholds = []threshold{
	{
		metric: domain.MetricCostPerFan,
		limit:  2.5,
		label:  "单个上粉成本",
		good:   "✅ 上粉成本控制良好，在合理范围内",
		poor:   "❌ 上粉成本偏高，建议优化获客策略",
	},
	{
		metric: domain.MetricCostPerRegister,
		limit:  15,
		label:  "单个注册成本",
		good:   "✅ 注册成本控制良好，转化效率较高",
		poor:   "❌ 注册成本偏高，建议优化注册流程",
	},
	{
		metric: domain.MetricCostPerPay,
		limit:  100,
		label:  "单个付费成本",
		good:   "✅ 付费成本控制良好，用户价值较高",
		poor:   "❌ 付费成本偏高，建议提升用户付费意愿",
	},
}

const (
	scaleFansCount = 1000
	scaleNote      = "📈 上粉规模较大，具备规模效应"
)

func (t threshold) exceeded(b domain.CostBreakdown) bool {
	return b.Value(t.metric) > t.limit
}

func (t threshold) warning(b domain.CostBreakdown) domain.Warning {
	v := b.Value(t.metric)
	return domain.Warning{
		Metric:    t.metric,
		Value:     v,
		Threshold: t.limit,
		Message:   fmt.Sprintf("⚠️ %s过高: ¥%s > ¥%s", t.label, plain(v), plain(t.limit)),
	}
}

func (t threshold) verdict(b domain.CostBreakdown) domain.Analysis {
	if t.exceeded(b) {
		return domain.Analysis{Kind: domain.AnalysisPoor, Metric: t.metric, Message: t.poor}
	}
	return domain.Analysis{Kind: domain.AnalysisGood, Metric: t.metric, Message: t.good}
}

func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Limit returns the warning threshold for m, if m has one.
func Limit(m domain.Metric) (float64, bool) {
	for _, t := range thresholds {
		if t.metric == m {
			return t.limit, true
		}
	}
	return 0, false
}
