package cost

import (
	"fmt"
	"math"

	"github.com/de-tools/livecost/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Fixed business coefficients, in currency units.
const (
	staffCostPerMember    = 150.0
	acquisitionCostPerFan = 0.2
	channelCost           = 200.0
	channelAmortization   = 25.0
	networkCost           = 100.0
	accountCost           = 16.0
	registerSurchargeFan  = 0.15
	conversionBaseSalary  = 150.0
	payBonus              = 5.0
	valueBonus            = 50.0

	publishedPlaces = 2
)

// Calculator turns input counters into a cost breakdown.
type Calculator interface {
	Compute(counters domain.InputCounters) (domain.CostBreakdown, error)
}

type calculator struct{}

// NewCalculator returns the stateless Calculator. It is safe for concurrent use.
func NewCalculator() Calculator {
	return calculator{}
}

func (calculator) Compute(in domain.InputCounters) (domain.CostBreakdown, error) {
	if err := in.Validate(); err != nil {
		return domain.CostBreakdown{}, err
	}

	fans := float64(in.FansCount)

	total := float64(in.GroupMembers)*staffCostPerMember +
		fans*acquisitionCostPerFan +
		(float64(in.ChannelCount)*channelCost)/channelAmortization +
		networkCost +
		float64(in.AccountCount)*accountCost

	perFan := total / fans
	register := total + fans*registerSurchargeFan
	perRegister := perUnit(register, in.RegisterCount)

	salary := conversionBaseSalary + float64(in.PayCount)*payBonus + float64(in.ValueCount)*valueBonus
	pay := register + salary
	perPay := perUnit(pay, in.PayCount)
	perValue := perUnit(pay, in.ValueCount)

	var out domain.CostBreakdown
	figures := []struct {
		name string
		raw  float64
		dst  *float64
	}{
		{"total_cost", total, &out.TotalCost},
		{"register_cost", register, &out.RegisterCost},
		{"pay_cost", pay, &out.PayCost},
		{"value_total_cost", pay, &out.ValueTotalCost},
		{"cost_per_fan", perFan, &out.CostPerFan},
		{"cost_per_register", perRegister, &out.CostPerRegister},
		{"cost_per_pay", perPay, &out.CostPerPay},
		{"cost_per_value", perValue, &out.CostPerValue},
	}
	for _, f := range figures {
		v, err := Round(f.raw)
		if err != nil {
			return domain.CostBreakdown{}, fmt.Errorf("failed to compute %s: %w", f.name, err)
		}
		*f.dst = v
	}

	return out, nil
}

// Round rounds v to two decimal places, half away from zero.
func Round(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite value %v", domain.ErrComputation, v)
	}
	return decimal.NewFromFloat(v).Round(publishedPlaces).InexactFloat64(), nil
}

func perUnit(amount float64, units int) float64 {
	if units <= 0 {
		return 0
	}
	return amount / float64(units)
}
