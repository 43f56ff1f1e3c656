package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lemwill/g4matrix/pkg/logger"
	"github.com/lemwill/g4matrix/pkg/override"
	"github.com/lemwill/g4matrix/pkg/simulation"
)

// ErrUsage is returned when the command line does not name a configuration file.
var ErrUsage = errors.New("usage")

const envPrefix = "G4MATRIX"

// globals holds the persistent flags after viper has merged settings and environment.
type globals struct {
	settingsFile string
	logLevel     string
	noColor      bool
	kernel       string
	noMetadata   bool
}

type rootOptions struct {
	v       *viper.Viper
	globals globals
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "g4matrix <config_file>",
		Short: "Scintillator matrix simulation driver",
		Long: `g4matrix reads a detector configuration file, resolves every parameter
and the random seed, and hands them to a simulation kernel.

Run settings from the file can be replaced on the command line:
  -m <macro>    run macro
  -r <seed>     random seed, -1 derives one from the system
  -o <output>   output file base name, without extension
  -t <threads>  worker threads

A configuration file named like a subcommand (keys, seed, init) must be
given as a path, for example ./keys.`,
		Args:          requireConfigFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig(cmd.Root().PersistentFlags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ov, err := override.FromFlagSet(cmd.Flags())
			if err != nil {
				return err
			}
			return runConfig(cmd, opts.globals, args[0], ov)
		},
	}

	// Unknown flags belong to the kernel's own command line.
	rootCmd.FParseErrWhitelist = cobra.FParseErrWhitelist{UnknownFlags: true}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", override.ErrMalformedArgument, err)
	})

	pf := rootCmd.PersistentFlags()
	pf.String("settings", "", "settings file (default is $HOME/.g4matrix/settings.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("kernel", simulation.DryRunName, fmt.Sprintf("simulation kernel (%s)", strings.Join(simulation.DefaultRegistry.List(), ", ")))
	pf.Bool("no-metadata", false, "do not write the run metadata file")

	override.Register(rootCmd.Flags())

	rootCmd.AddCommand(newKeysCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return run(NewRootCmd(), os.Args[1:])
}

// run pairs override flags with their values before cobra sees args, so a
// missing value is reported by flag name instead of being taken from the
// next argument.
func run(root *cobra.Command, args []string) error {
	if err := override.CheckPairs(args); err != nil {
		return err
	}
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	return root.Execute()
}

func requireConfigFile(cmd *cobra.Command, args []string) error {
	// Arguments after -- are passed through to the kernel.
	if n := cmd.ArgsLenAtDash(); n >= 0 {
		args = args[:n]
	}
	if len(args) == 1 {
		return nil
	}
	_ = cmd.Usage()
	if len(args) == 0 {
		return fmt.Errorf("%w: missing configuration file", ErrUsage)
	}
	return fmt.Errorf("%w: expected one configuration file, got %d arguments", ErrUsage, len(args))
}

// initConfig merges flags, G4MATRIX_* environment variables and the settings file.
func (o *rootOptions) initConfig(flags *pflag.FlagSet) error {
	v := o.v
	if err := v.BindPFlags(flags); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	settings := v.GetString("settings")
	if settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read settings %s: %w", settings, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".g4matrix"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("settings")
		// A missing default settings file is fine
		_ = v.ReadInConfig()
	}

	o.globals = globals{
		settingsFile: settings,
		logLevel:     v.GetString("log-level"),
		noColor:      v.GetBool("no-color"),
		kernel:       v.GetString("kernel"),
		noMetadata:   v.GetBool("no-metadata"),
	}

	logger.SetLevel(logger.ParseLevel(o.globals.logLevel))
	logger.SetNoColor(o.globals.noColor)
	return nil
}
