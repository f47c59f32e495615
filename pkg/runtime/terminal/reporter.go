package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/livecost/pkg/adapters"
	"github.com/de-tools/livecost/pkg/models/domain"
)

// Reporter prints the pre-rendered daily report text.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(res domain.CalculationResult) error {
	_, err := io.WriteString(c.writer, res.Report.FormattedText)
	return err
}

// JSONReporter prints the same document the HTTP API returns.
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (j *JSONReporter) Handle(res domain.CalculationResult) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(adapters.MapCalculationResultDomainToApi(res)); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
