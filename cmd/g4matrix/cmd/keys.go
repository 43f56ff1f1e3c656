package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lemwill/g4matrix/pkg/config"
	"github.com/lemwill/g4matrix/pkg/logger"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List configuration keys",
		Long:  `List every key a configuration file must define, in resolution order`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := logger.NewTable("KEY", "TYPE", "UNIT", "DESCRIPTION", "EXAMPLE")
			for _, f := range config.Schema {
				table.AddRow(f.Key, f.Kind.String(), f.Unit, f.Label, f.Example)
			}
			table.Fprint(cmd.OutOrStdout())
			return nil
		},
	}
}
