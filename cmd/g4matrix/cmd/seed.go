package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lemwill/g4matrix/pkg/seed"
)

func newSeedCmd() *cobra.Command {
	var explicit int64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Resolve a random seed",
		Long: `Resolve a random seed the way a run would. Without -r, or with -r -1,
the seed is derived from the clock, the process id and the system uptime.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, report := newDeriver().Resolve(explicit)

			out := cmd.OutOrStdout()
			if report.Derived {
				_, _ = fmt.Fprintf(out, "Time       : %d\n", report.Time)
				_, _ = fmt.Fprintf(out, "PID        : %d\n", report.PID)
				_, _ = fmt.Fprintf(out, "Uptime     : %d\n", report.Uptime)
				_, _ = fmt.Fprintf(out, "Accumulator: %d\n", report.Accumulator)
				for _, w := range report.Warnings {
					_, _ = fmt.Fprintf(out, "Warning    : %s\n", w)
				}
			}
			_, err := fmt.Fprintf(out, "Random seed: %d\n", s)
			return err
		},
	}

	cmd.Flags().Int64VarP(&explicit, "seed", "r", seed.Auto, "seed to resolve, -1 derives one")
	return cmd
}
