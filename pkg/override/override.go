// Package override applies command-line overrides to the run settings
// resolved from the configuration file.
package override

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/lemwill/g4matrix/pkg/config"
)

// ErrMalformedArgument indicates a recognised flag without a usable value.
var ErrMalformedArgument = errors.New("malformed argument")

const (
	flagMacro   = "macro"
	flagSeed    = "seed"
	flagOutput  = "output"
	flagThreads = "threads"
)

// valueFlags maps every recognised spelling to its flag name.
var valueFlags = map[string]string{
	"-m": flagMacro, "--macro": flagMacro,
	"-r": flagSeed, "--seed": flagSeed,
	"-o": flagOutput, "--output": flagOutput,
	"-t": flagThreads, "--threads": flagThreads,
}

// Overrides holds the values given on the command line. Nil fields were not set.
type Overrides struct {
	Macro   *string
	Seed    *int64
	Output  *string
	Threads *int
}

// Register adds the override flags to fs.
func Register(fs *pflag.FlagSet) {
	fs.StringP(flagMacro, "m", "", "run macro (overrides 'macro')")
	fs.StringP(flagSeed, "r", "", "random seed, -1 derives one (overrides 'seed')")
	fs.StringP(flagOutput, "o", "", "output file base name (overrides 'output')")
	fs.StringP(flagThreads, "t", "", "number of worker threads for the kernel")
}

// Parse scans args left to right. Every recognised flag must be followed by a
// value; unknown flags and positional arguments are ignored.
func Parse(args []string) (*Overrides, error) {
	if err := CheckPairs(args); err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet("overrides", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	Register(fs)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArgument, err)
	}
	return FromFlagSet(fs)
}

// CheckPairs pairs each recognised flag with the argument after it and
// reports the first flag left without a value.
func CheckPairs(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return nil
		}
		if strings.Contains(arg, "=") && strings.HasPrefix(arg, "--") {
			name, value, _ := strings.Cut(arg, "=")
			if _, ok := valueFlags[name]; ok && value == "" {
				return fmt.Errorf("%w: flag %s has an empty value", ErrMalformedArgument, name)
			}
			continue
		}
		if _, ok := valueFlags[arg]; !ok {
			continue
		}
		if i+1 >= len(args) {
			return fmt.Errorf("%w: flag %s requires a value", ErrMalformedArgument, arg)
		}
		i++
	}
	return nil
}

// FromFlagSet collects the override flags that were set on fs.
func FromFlagSet(fs *pflag.FlagSet) (*Overrides, error) {
	o := &Overrides{}

	if fs.Changed(flagMacro) {
		v, _ := fs.GetString(flagMacro)
		if v == "" {
			return nil, fmt.Errorf("%w: -m expects a macro file", ErrMalformedArgument)
		}
		o.Macro = &v
	}
	if fs.Changed(flagOutput) {
		v, _ := fs.GetString(flagOutput)
		if v == "" {
			return nil, fmt.Errorf("%w: -o expects a file name", ErrMalformedArgument)
		}
		o.Output = &v
	}
	if fs.Changed(flagSeed) {
		raw, _ := fs.GetString(flagSeed)
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: -r expects an integer seed, got %q", ErrMalformedArgument, raw)
		}
		o.Seed = &v
	}
	if fs.Changed(flagThreads) {
		raw, _ := fs.GetString(flagThreads)
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: -t expects a non-negative integer, got %q", ErrMalformedArgument, raw)
		}
		o.Threads = &v
	}

	return o, nil
}

// Apply overwrites the run settings that were given on the command line.
func (o *Overrides) Apply(run *config.RunSettings) {
	if o == nil || run == nil {
		return
	}
	if o.Macro != nil {
		run.Macro = *o.Macro
	}
	if o.Seed != nil {
		run.Seed = *o.Seed
	}
	if o.Output != nil {
		run.Output = *o.Output
	}
	if o.Threads != nil {
		run.Threads = *o.Threads
	}
}

// Empty reports whether no override was given.
func (o *Overrides) Empty() bool {
	return o == nil || (o.Macro == nil && o.Seed == nil && o.Output == nil && o.Threads == nil)
}
