package logger

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	t.Cleanup(func() {
		SetOutput(nil)
		SetNoColor(false)
		SetLevel(InfoLevel)
	})
	return &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"warning", WarnLevel},
		{"error", ErrorLevel},
		{"", InfoLevel},
		{"verbose", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)

	SetLevel(WarnLevel)
	Info("hidden")
	Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message missing: %q", out)
	}
}

func TestDerivedLoggerSharesSettings(t *testing.T) {
	buf := capture(t)

	child := WithPrefix("seed").WithField("run", 3)
	SetLevel(DebugLevel)
	child.Debugf("value %d", 42)

	out := buf.String()
	for _, want := range []string{"[seed]", "value 42", "run=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestNoColorOutputIsPlain(t *testing.T) {
	buf := capture(t)

	LogSection("C O N F I G U R A T I O N")
	LogKeyValue("Kernel", "dryrun")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("escape codes in no-color output: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Kernel: dryrun") {
		t.Errorf("key/value missing: %q", buf.String())
	}
}

func TestBanner(t *testing.T) {
	buf := capture(t)

	LogBanner("g4matrix")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("banner has %d lines, want 5: %q", len(lines), buf.String())
	}
	for _, line := range lines {
		if len(line) != 59 {
			t.Errorf("banner line %q has width %d", line, len(line))
		}
	}
	if !strings.Contains(lines[2], "g4matrix") {
		t.Errorf("title line = %q", lines[2])
	}
}

func TestTable(t *testing.T) {
	table := NewTable("KEY", "TYPE")
	table.AddRow("crystalx", "float")
	table.AddRow("ncrystalx", "int")

	var buf bytes.Buffer
	table.Fprint(&buf)

	want := "KEY        TYPE\n" +
		"---------  -----\n" +
		"crystalx   float\n" +
		"ncrystalx  int\n"
	if buf.String() != want {
		t.Errorf("table =\n%s\nwant\n%s", buf.String(), want)
	}
}
