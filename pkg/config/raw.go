package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	delimiter = "="
	comment   = "#"
	// sentry ends parsing; anything after it is ignored.
	sentry = "EndConfigFile"
)

// RawConfig is the untyped key/value content of a configuration file.
// A repeated key keeps its first position but takes the last value.
type RawConfig struct {
	Source string
	keys   []string
	values map[string]string
}

// NewRawConfig returns an empty configuration attributed to source.
func NewRawConfig(source string) *RawConfig {
	return &RawConfig{
		Source: source,
		values: make(map[string]string),
	}
}

// Set stores value under key, replacing any earlier value.
func (r *RawConfig) Set(key, value string) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Lookup returns the raw value for key.
func (r *RawConfig) Lookup(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns keys in first-seen order.
func (r *RawConfig) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of distinct keys.
func (r *RawConfig) Len() int { return len(r.keys) }

// Load reads a configuration file from path.
func Load(path string) (*RawConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigNotFound, path, err)
	}
	defer f.Close()

	raw, err := Parse(f, path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return raw, nil
}

// Parse reads "key = value" lines from r. Text after '#' is ignored, as are
// blank lines and lines without a delimiter.
func Parse(r io.Reader, source string) (*RawConfig, error) {
	raw := NewRawConfig(source)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.Index(line, comment); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == sentry {
			break
		}

		key, value, found := strings.Cut(line, delimiter)
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		raw.Set(key, strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return raw, nil
}
