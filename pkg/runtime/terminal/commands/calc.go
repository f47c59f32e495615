package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/livecost/pkg/models/domain"
	"github.com/de-tools/livecost/pkg/services/calc"
	"github.com/de-tools/livecost/pkg/services/profile"
	"github.com/spf13/cobra"
)

// Reporter prints a calculation result in one output format.
type Reporter interface {
	Handle(res domain.CalculationResult) error
}

type CalcCmd struct {
	svc          calc.Service
	reporters    map[string]Reporter
	profilesPath string
	profile      string
	output       string
	counters     domain.InputCounters
}

func NewCalcCmd(svc calc.Service, reporters map[string]Reporter, defaultProfiles string) *cobra.Command {
	cc := &CalcCmd{svc: svc, reporters: reporters}
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate acquisition costs and print the daily report",
		RunE:  cc.run,
	}

	for _, f := range domain.CounterFields {
		cmd.Flags().IntVar(cc.counters.Ref(f), FlagName(f), 0, fmt.Sprintf("Value of %s", f))
	}
	cmd.Flags().StringVar(&cc.profilesPath, "profiles", defaultProfiles, "Path to the counter profiles file")
	cmd.Flags().StringVar(&cc.profile, "profile", "", "Profile to take counters from; flags override it")
	cmd.Flags().StringVarP(&cc.output, "output", "o", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(formats(reporters), "|")))

	return cmd
}

// FlagName is the command-line flag bound to a counter.
func FlagName(f domain.CounterField) string {
	return strings.ReplaceAll(string(f), "_", "-")
}

func (cc *CalcCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	reporter, ok := cc.reporters[cc.output]
	if !ok {
		return fmt.Errorf("unsupported output %q. Supported outputs: %v", cc.output, formats(cc.reporters))
	}

	counters := cc.counters
	if cc.profile != "" {
		reg, err := profile.NewRegistry(cc.profilesPath)
		if err != nil {
			return err
		}
		base, err := reg.GetCounters(ctx, cc.profile)
		if err != nil {
			return err
		}
		for _, f := range domain.CounterFields {
			if !cmd.Flags().Changed(FlagName(f)) {
				*counters.Ref(f) = base.Get(f)
			}
		}
	}

	res, err := cc.svc.Calculate(ctx, counters)
	if err != nil {
		return fmt.Errorf("failed to calculate costs: %w", err)
	}

	return reporter.Handle(res)
}

func formats(reporters map[string]Reporter) []string {
	names := make([]string, 0, len(reporters))
	for name := range reporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
