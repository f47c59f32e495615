package commands

import (
	"fmt"

	"github.com/de-tools/livecost/pkg/services/profile"
	"github.com/spf13/cobra"
)

func NewProfilesCmd(defaultProfiles string) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List counter profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := profile.NewRegistry(path)
			if err != nil {
				return err
			}

			names, err := reg.GetProfiles(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list profiles: %w", err)
			}

			for _, name := range names {
				counters, err := reg.GetCounters(cmd.Context(), name)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t(invalid: %v)\n", name, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%+v\n", name, counters)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "profiles", defaultProfiles, "Path to the counter profiles file")
	return cmd
}
