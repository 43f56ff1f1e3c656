package override

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemwill/g4matrix/pkg/config"
)

func baseRun() config.RunSettings {
	return config.RunSettings{Output: "base", Macro: "base.mac", Seed: -1}
}

func TestParseAndApply(t *testing.T) {
	o, err := Parse([]string{"-m", "foo.mac", "-r", "7", "-o", "bar"})
	require.NoError(t, err)

	params, err := config.Resolve(config.ExampleConfig())
	require.NoError(t, err)
	before := *params

	o.Apply(&params.Run)

	assert.Equal(t, "foo.mac", params.Run.Macro)
	assert.Equal(t, int64(7), params.Run.Seed)
	assert.Equal(t, "bar", params.Run.Output)

	params.Run = before.Run
	assert.Equal(t, before, *params, "only run settings may change")
}

func TestApplyIsIdempotent(t *testing.T) {
	args := []string{"cfg.txt", "-r", "99", "-o", "out"}
	run := baseRun()

	o1, err := Parse(args)
	require.NoError(t, err)
	o1.Apply(&run)
	once := run

	o2, err := Parse(args)
	require.NoError(t, err)
	o2.Apply(&run)

	assert.Equal(t, once, run)
	assert.Equal(t, "base.mac", run.Macro)
}

func TestParseLeavesUnsetFields(t *testing.T) {
	o, err := Parse([]string{"matrix.cfg"})
	require.NoError(t, err)
	assert.True(t, o.Empty())

	run := baseRun()
	o.Apply(&run)
	assert.Equal(t, baseRun(), run)
}

func TestParseIgnoresUnknownFlags(t *testing.T) {
	o, err := Parse([]string{"-u", "tcsh", "-x", "-m", "a.mac", "--vis"})
	require.NoError(t, err)
	require.NotNil(t, o.Macro)
	assert.Equal(t, "a.mac", *o.Macro)
	assert.Nil(t, o.Seed)
}

func TestParseNegativeSeedAndThreads(t *testing.T) {
	o, err := Parse([]string{"-r", "-1", "-t", "4"})
	require.NoError(t, err)
	require.NotNil(t, o.Seed)
	assert.Equal(t, int64(-1), *o.Seed)
	require.NotNil(t, o.Threads)
	assert.Equal(t, 4, *o.Threads)

	o, err = Parse([]string{"--seed=12", "--output", "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), *o.Seed)
	assert.Equal(t, "x", *o.Output)
}

func TestParseLastWinsForRepeatedFlag(t *testing.T) {
	o, err := Parse([]string{"-o", "first", "-o", "second"})
	require.NoError(t, err)
	assert.Equal(t, "second", *o.Output)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"trailing macro", []string{"cfg", "-m"}},
		{"trailing seed", []string{"-o", "out", "-r"}},
		{"trailing output", []string{"-o"}},
		{"trailing threads", []string{"--threads"}},
		{"empty long value", []string{"--output="}},
		{"non-integer seed", []string{"-r", "abc"}},
		{"fractional seed", []string{"-r", "1.5"}},
		{"negative threads", []string{"-t", "-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Parse(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedArgument)
			assert.Nil(t, o)
		})
	}
}

func TestFromFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("root", pflag.ContinueOnError)
	Register(fs)
	require.NoError(t, fs.Parse([]string{"-t", "8", "cfg"}))

	o, err := FromFlagSet(fs)
	require.NoError(t, err)
	assert.Nil(t, o.Macro)
	require.NotNil(t, o.Threads)
	assert.Equal(t, 8, *o.Threads)
}

func TestApplyNil(t *testing.T) {
	var o *Overrides
	run := baseRun()
	o.Apply(&run)
	assert.Equal(t, baseRun(), run)
	assert.True(t, o.Empty())
}

func TestCheckPairs(t *testing.T) {
	require.NoError(t, CheckPairs([]string{"cfg.txt", "-m", "a.mac", "--seed=3", "-x"}))
	require.NoError(t, CheckPairs([]string{"cfg.txt", "--", "-m"}))

	err := CheckPairs([]string{"cfg.txt", "-r", "5", "--threads"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedArgument)
	assert.Contains(t, err.Error(), "flag --threads requires a value")
}
