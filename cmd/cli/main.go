package main

import (
	"fmt"
	"os"

	"github.com/de-tools/livecost/pkg/config"
	"github.com/de-tools/livecost/pkg/runtime/terminal"
	"github.com/de-tools/livecost/pkg/services/calc"
	"github.com/de-tools/livecost/pkg/services/report"
)

func main() {
	cfg, err := config.Load(os.Getenv("LIVECOST_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loc, err := cfg.Report.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Service: calc.NewService(calc.Options{
			Generator: report.NewGenerator(loc),
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
