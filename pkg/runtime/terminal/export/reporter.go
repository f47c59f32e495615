package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/livecost/pkg/models/domain"
	"github.com/de-tools/livecost/pkg/services/report"
)

type TableConfig struct {
	NameWidth      int
	ValueWidth     int
	ThresholdWidth int
	StatusWidth    int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:      20,
		ValueWidth:     16,
		ThresholdWidth: 10,
		StatusWidth:    6,
	}
}

// Reporter renders the cost figures as a fixed-width table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

type row struct {
	Name      string
	Value     string
	Threshold string
	Status    string
}

type table struct {
	Date     string
	Rows     []row
	Warnings []string
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(res domain.CalculationResult) error {
	funcMap := template.FuncMap{
		"formatRow": func(name, value, threshold, status string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.ThresholdWidth, threshold,
				c.config.StatusWidth, status)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.ThresholdWidth+2),
				strings.Repeat("-", c.config.StatusWidth+2))
		},
	}

	tmpl := `Cost report {{.Date}}
{{separator}}
{{formatRow "Metric" "Value" "Threshold" "Status"}}
{{separator}}
{{range .Rows}}{{formatRow .Name .Value .Threshold .Status}}
{{end}}{{separator}}
{{range .Warnings}}{{.}}
{{end}}`

	t, err := template.New("table").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, buildTable(res))
}

func buildTable(res domain.CalculationResult) table {
	b := res.Breakdown
	warned := make(map[domain.Metric]bool, len(res.Report.Warnings))
	warnings := make([]string, 0, len(res.Report.Warnings))
	for _, w := range res.Report.Warnings {
		warned[w.Metric] = true
		warnings = append(warnings, w.Message)
	}

	figures := []struct {
		metric domain.Metric
		value  float64
	}{
		{"total_cost", b.TotalCost},
		{"register_cost", b.RegisterCost},
		{"pay_cost", b.PayCost},
		{"value_total_cost", b.ValueTotalCost},
		{domain.MetricCostPerFan, b.CostPerFan},
		{domain.MetricCostPerRegister, b.CostPerRegister},
		{domain.MetricCostPerPay, b.CostPerPay},
		{"cost_per_value", b.CostPerValue},
	}

	rows := make([]row, 0, len(figures))
	for _, f := range figures {
		r := row{Name: string(f.metric), Value: report.Money(f.value)}
		if limit, ok := report.Limit(f.metric); ok {
			r.Threshold = report.Money(limit)
			r.Status = "OK"
			if warned[f.metric] {
				r.Status = "HIGH"
			}
		}
		rows = append(rows, r)
	}

	return table{
		Date:     res.Report.Date.Format(report.DateLayout),
		Rows:     rows,
		Warnings: warnings,
	}
}
