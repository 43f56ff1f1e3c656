package config

import (
	"bufio"
	"fmt"
	"io"
)

// Encode writes raw as a configuration file in Schema order, each key preceded
// by its label. Keys outside the schema follow at the end.
func Encode(w io.Writer, raw *RawConfig) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# g4matrix configuration")
	fmt.Fprintln(bw, "# lengths in mm; flags are 0 or 1")
	for _, f := range Schema {
		v, ok := raw.Lookup(f.Key)
		if !ok {
			continue
		}
		label := f.Label
		if f.Unit != "" {
			label += " [" + f.Unit + "]"
		}
		fmt.Fprintf(bw, "\n# %s\n%s = %s\n", label, f.Key, v)
	}

	first := true
	for _, key := range raw.Keys() {
		if _, known := Lookup(key); known {
			continue
		}
		if first {
			fmt.Fprintln(bw, "\n# other keys")
			first = false
		}
		v, _ := raw.Lookup(key)
		fmt.Fprintf(bw, "%s = %s\n", key, v)
	}

	return bw.Flush()
}
