package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lemwill/g4matrix/pkg/config"
	"github.com/lemwill/g4matrix/pkg/logger"
	"github.com/lemwill/g4matrix/pkg/prompt"
)

// ErrFileExists is returned by init when the target exists and --force is not set.
var ErrFileExists = errors.New("file already exists")

// isInteractive is replaced in tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newInitCmd() *cobra.Command {
	var defaults, force bool

	cmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write a configuration file",
		Long: `Write a complete configuration file. On a terminal every key is asked
for in turn; otherwise, or with --defaults, the reference values are written.
G4MATRIX_<KEY> environment variables replace individual defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", ErrFileExists, path)
			}

			var raw *config.RawConfig
			var err error
			if !defaults && isInteractive() {
				logger.LogSection("N E W   C O N F I G U R A T I O N")
				raw, err = prompt.ForSchema(config.Schema, nil)
			} else {
				raw, err = prompt.Defaults(config.Schema)
			}
			if err != nil {
				return err
			}
			if _, err := config.Resolve(raw); err != nil {
				return err
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := config.Encode(f, raw); err != nil {
				_ = f.Close()
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			logger.Successf("Configuration written to %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "write reference values without prompting")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
