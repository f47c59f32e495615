package terminal

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/de-tools/livecost/pkg/runtime/terminal/commands"
	"github.com/de-tools/livecost/pkg/runtime/terminal/export"

	"github.com/de-tools/livecost/pkg/services/calc"
	"github.com/spf13/cobra"
)

const profilesFile = ".livecostcfg"

// CLI represents the command-line interface
type CLI struct {
	svc          calc.Service
	reporters    map[string]commands.Reporter
	profilesPath string
	rootCmd      *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Service calc.Service
	Output  io.Writer
	// ProfilesPath defaults to $HOME/.livecostcfg
	ProfilesPath string
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Service == nil {
		opts.Service = calc.NewService(calc.Options{})
	}
	if opts.ProfilesPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.ProfilesPath = filepath.Join(home, profilesFile)
		}
	}

	cli := &CLI{
		svc: opts.Service,
		reporters: map[string]commands.Reporter{
			"text":  NewReporter(opts.Output),
			"json":  NewJSONReporter(opts.Output),
			"table": export.NewReporter(opts.Output),
		},
		profilesPath: opts.ProfilesPath,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// Run executes the CLI with explicit arguments.
func (cli *CLI) Run(ctx context.Context, args []string) error {
	cli.rootCmd.SetArgs(args)
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "livecost",
		Short:         "Live-stream acquisition cost calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(commands.NewCalcCmd(cli.svc, cli.reporters, cli.profilesPath))
	cmd.AddCommand(commands.NewProfilesCmd(cli.profilesPath))

	return cmd
}
