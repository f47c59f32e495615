package domain

// CostBreakdown holds the published cost figures, each rounded to two decimals.
type CostBreakdown struct {
	TotalCost      float64 // fan acquisition total
	RegisterCost   float64 // TotalCost + registration surcharge
	PayCost        float64 // RegisterCost + conversion salary
	ValueTotalCost float64 // always equal to PayCost

	CostPerFan      float64
	CostPerRegister float64
	CostPerPay      float64
	CostPerValue    float64
}

// Metric identifies a unit cost that is checked against a threshold.
type Metric string

const (
	MetricCostPerFan      Metric = "cost_per_fan"
	MetricCostPerRegister Metric = "cost_per_register"
	MetricCostPerPay      Metric = "cost_per_pay"
)

// Value returns the unit cost for m.
func (b CostBreakdown) Value(m Metric) float64 {
	switch m {
	case MetricCostPerFan:
		return b.CostPerFan
	case MetricCostPerRegister:
		return b.CostPerRegister
	case MetricCostPerPay:
		return b.CostPerPay
	}
	return 0
}
