package seed

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemwill/g4matrix/pkg/logger"
)

type panicEntropy struct{ t *testing.T }

func (p panicEntropy) Now() int64 { p.t.Fatal("entropy read for explicit seed"); return 0 }

func (p panicEntropy) PID() int64 { p.t.Fatal("entropy read for explicit seed"); return 0 }

func (p panicEntropy) Uptime() (int64, error) {
	p.t.Fatal("entropy read for explicit seed")
	return 0, nil
}

func quietLogger(buf *bytes.Buffer) logger.Logger {
	return logger.NewWithConfig(logger.Config{Level: logger.DebugLevel, Writer: buf, NoColor: true})
}

func TestResolvePassThrough(t *testing.T) {
	d := &Deriver{Entropy: panicEntropy{t}, Log: quietLogger(&bytes.Buffer{})}

	for _, explicit := range []int64{42, 0, 7, -2, 1 << 40} {
		got, report := d.Resolve(explicit)
		assert.Equal(t, explicit, got)
		assert.False(t, report.Derived)
		assert.Equal(t, explicit, report.Seed)
	}
}

func TestResolveDeterministic(t *testing.T) {
	src := FixedEntropy{Time: 1_700_000_000, Process: 4242, Up: 86_400}
	d := &Deriver{Entropy: src, Log: quietLogger(&bytes.Buffer{})}

	first, report := d.Resolve(Auto)
	second, _ := d.Resolve(Auto)

	assert.Equal(t, first, second)
	assert.True(t, report.Derived)
	assert.Equal(t, int64(1_700_000_000+4242+86_400), report.Accumulator)
	assert.Equal(t, Mix(report.Accumulator), first)
}

func TestResolveSensitivity(t *testing.T) {
	base := FixedEntropy{Time: 1_700_000_000, Process: 4242, Up: 86_400}
	variants := map[string]FixedEntropy{
		"time":   {Time: base.Time + 1, Process: base.Process, Up: base.Up},
		"pid":    {Time: base.Time, Process: base.Process + 1, Up: base.Up},
		"uptime": {Time: base.Time, Process: base.Process, Up: base.Up + 1},
	}

	want, _ := (&Deriver{Entropy: base, Log: quietLogger(&bytes.Buffer{})}).Resolve(Auto)
	for name, src := range variants {
		t.Run(name, func(t *testing.T) {
			got, _ := (&Deriver{Entropy: src, Log: quietLogger(&bytes.Buffer{})}).Resolve(Auto)
			assert.NotEqual(t, want, got)
		})
	}
}

func TestMixRangeAndSpread(t *testing.T) {
	seen := make(map[int64]struct{})
	const n = 2000
	for acc := int64(1_700_000_000); acc < 1_700_000_000+n; acc++ {
		s := Mix(acc)
		require.GreaterOrEqual(t, s, int64(0))
		require.Less(t, s, int64(Range))
		seen[s] = struct{}{}
	}
	assert.Greater(t, len(seen), n*98/100)
}

func TestResolveUptimeUnavailable(t *testing.T) {
	var buf bytes.Buffer
	src := FixedEntropy{Time: 100, Process: 5, UptimeErr: errors.New("no procfs")}
	d := &Deriver{Entropy: src, Log: quietLogger(&buf)}

	got, report := d.Resolve(Auto)

	assert.Equal(t, Mix(105), got)
	assert.Equal(t, int64(0), report.Uptime)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "entropy source unavailable")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "Uptime unavailable")
}

func TestSystemEntropyUptime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uptime")
	require.NoError(t, os.WriteFile(path, []byte("35872.11 141183.87\n"), 0o644))

	up, err := (&SystemEntropy{UptimePath: path}).Uptime()
	require.NoError(t, err)
	assert.Equal(t, int64(35872), up)

	_, err = (&SystemEntropy{UptimePath: filepath.Join(t.TempDir(), "missing")}).Uptime()
	assert.ErrorIs(t, err, ErrEntropySourceUnavailable)
}

func TestParseUptime(t *testing.T) {
	tests := []struct {
		line    string
		want    int64
		wantErr bool
	}{
		{"12.50 40.00", 12, false},
		{"7 9", 7, false},
		{"  3600.99\n", 3600, false},
		{"", 0, true},
		{"abc 1", 0, true},
	}
	for _, tt := range tests {
		got, err := parseUptime(tt.line)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrEntropySourceUnavailable, tt.line)
			continue
		}
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewEngineReproducible(t *testing.T) {
	a, b := NewEngine(123456), NewEngine(123456)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, NewEngine(1).Uint64(), NewEngine(2).Uint64())
}
