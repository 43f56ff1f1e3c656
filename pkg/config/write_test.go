package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTrip(t *testing.T) {
	raw := ExampleConfig()
	raw.Set("vis", "0")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, raw))
	assert.Contains(t, buf.String(), "# Crystal x length [mm]\ncrystalx = 1.53\n")

	back, err := Parse(&buf, "encoded")
	require.NoError(t, err)
	for _, key := range raw.Keys() {
		want, _ := raw.Lookup(key)
		got, ok := back.Lookup(key)
		assert.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	_, err = Resolve(back)
	assert.NoError(t, err)
}

func TestFieldCheck(t *testing.T) {
	f, ok := Lookup("ncrystalx")
	require.True(t, ok)
	assert.NoError(t, f.Check("8"))
	assert.ErrorIs(t, f.Check("eight"), ErrTypeMismatch)

	f, _ = Lookup("backEsr")
	assert.NoError(t, f.Check("0"))
	assert.ErrorIs(t, f.Check("2"), ErrTypeMismatch)
}
