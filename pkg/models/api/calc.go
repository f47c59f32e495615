package api

import "time"

type InputData struct {
	FansCount         int `json:"fans_count"`
	AccountCount      int `json:"account_count"`
	GroupMembers      int `json:"group_members"`
	ConversionMembers int `json:"conversion_members"`
	ChannelCount      int `json:"channel_count"`
	RegisterCount     int `json:"register_count"`
	PayCount          int `json:"pay_count"`
	ValueCount        int `json:"value_count"`
}

type Results struct {
	TotalCost      float64 `json:"total_cost"`
	RegisterCost   float64 `json:"register_cost"`
	PayCost        float64 `json:"pay_cost"`
	ValueTotalCost float64 `json:"value_total_cost"`

	CostPerFan      float64 `json:"cost_per_fan"`
	CostPerRegister float64 `json:"cost_per_register"`
	CostPerPay      float64 `json:"cost_per_pay"`
	CostPerValue    float64 `json:"cost_per_value"`
}

type DailyReport struct {
	Date          string    `json:"date"`
	Timestamp     string    `json:"timestamp"`
	InputData     InputData `json:"input_data"`
	Results       Results   `json:"results"`
	Warnings      []string  `json:"warnings"`
	Analysis      []string  `json:"analysis"`
	FormattedText string    `json:"formatted_text"`
}

// CalcResponse is the body of a successful calculation: the eight figures at
// the top level plus the embedded daily report.
type CalcResponse struct {
	Results
	DailyReport DailyReport `json:"daily_report"`
}

type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

type NotFoundResponse struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
