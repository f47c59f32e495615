package adapters

import (
	"encoding/json"
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/de-tools/livecost/pkg/models/api"
	"github.com/de-tools/livecost/pkg/models/domain"
	"github.com/de-tools/livecost/pkg/services/report"
)

// TimestampLayout renders instants in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	errNotNumber = errors.New("must be a number")
	errFraction  = errors.New("must be a whole number")
)

// ParseCounters reads the counters from an untyped request body. Absent or
// blank counters are zero; fans_count must end up positive.
func ParseCounters(raw map[string]any) (domain.InputCounters, error) {
	var c domain.InputCounters
	for _, f := range domain.CounterFields {
		v, err := parseCounter(raw[string(f)])
		if err != nil {
			return domain.InputCounters{}, &domain.FieldError{Field: f, Reason: err.Error()}
		}
		*c.Ref(f) = v
	}

	if err := c.Validate(); err != nil {
		return domain.InputCounters{}, err
	}
	return c, nil
}

// ParseForm reads the counters from an urlencoded form.
func ParseForm(values url.Values) (domain.InputCounters, error) {
	raw := make(map[string]any, len(domain.CounterFields))
	for _, f := range domain.CounterFields {
		if values.Has(string(f)) {
			raw[string(f)] = values.Get(string(f))
		}
	}
	return ParseCounters(raw)
}

func parseCounter(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, nil
	case int:
		return n, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, errNotNumber
		}
		return wholeNumber(f)
	case float64:
		return wholeNumber(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, nil
		}
		if i, err := strconv.Atoi(s); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, errNotNumber
		}
		return wholeNumber(f)
	default:
		return 0, errNotNumber
	}
}

func wholeNumber(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotNumber
	}
	if f != math.Trunc(f) {
		return 0, errFraction
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, errNotNumber
	}
	return int(f), nil
}

func MapCountersDomainToApi(c domain.InputCounters) api.InputData {
	return api.InputData{
		FansCount:         c.FansCount,
		AccountCount:      c.AccountCount,
		GroupMembers:      c.GroupMembers,
		ConversionMembers: c.ConversionMembers,
		ChannelCount:      c.ChannelCount,
		RegisterCount:     c.RegisterCount,
		PayCount:          c.PayCount,
		ValueCount:        c.ValueCount,
	}
}

func MapBreakdownDomainToApi(b domain.CostBreakdown) api.Results {
	return api.Results{
		TotalCost:       b.TotalCost,
		RegisterCost:    b.RegisterCost,
		PayCost:         b.PayCost,
		ValueTotalCost:  b.ValueTotalCost,
		CostPerFan:      b.CostPerFan,
		CostPerRegister: b.CostPerRegister,
		CostPerPay:      b.CostPerPay,
		CostPerValue:    b.CostPerValue,
	}
}

func MapDailyReportDomainToApi(r domain.DailyReport) api.DailyReport {
	out := api.DailyReport{
		Date:          r.Date.Format(report.DateLayout),
		Timestamp:     r.Timestamp.UTC().Format(TimestampLayout),
		InputData:     MapCountersDomainToApi(r.Counters),
		Results:       MapBreakdownDomainToApi(r.Breakdown),
		Warnings:      make([]string, 0, len(r.Warnings)),
		Analysis:      make([]string, 0, len(r.Analysis)),
		FormattedText: r.FormattedText,
	}

	for _, w := range r.Warnings {
		out.Warnings = append(out.Warnings, w.Message)
	}
	for _, a := range r.Analysis {
		out.Analysis = append(out.Analysis, a.Message)
	}

	return out
}

func MapCalculationResultDomainToApi(res domain.CalculationResult) api.CalcResponse {
	return api.CalcResponse{
		Results:     MapBreakdownDomainToApi(res.Breakdown),
		DailyReport: MapDailyReportDomainToApi(res.Report),
	}
}
