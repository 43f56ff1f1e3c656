package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Icons used by the console helpers
const (
	IconSuccess = "✅"
	IconRefresh = "🔄"
	IconDot     = "•"
	IconArrow   = "→"
)

var (
	colorSection = color.New(color.FgCyan, color.Bold)
	colorKey     = color.New(color.FgCyan)
)

// output returns the default logger's writer and color setting
func output() (io.Writer, bool) {
	l, ok := defaultLogger.(*logger)
	if !ok {
		return io.Discard, true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writer, l.noColor
}

// Success logs a success message with a green checkmark
func Success(args ...interface{}) {
	defaultLogger.Info(IconSuccess + " " + fmt.Sprint(args...))
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Progress logs a progress message with a refresh icon
func Progress(args ...interface{}) {
	defaultLogger.Info(IconRefresh + " " + fmt.Sprint(args...))
}

// Progressf logs a formatted progress message
func Progressf(format string, args ...interface{}) {
	Progress(fmt.Sprintf(format, args...))
}

// LogBanner prints lines centred in a hash-framed box
func LogBanner(lines ...string) {
	const width = 59
	w, noColor := output()

	border := strings.Repeat("#", width)
	blank := "#" + strings.Repeat(" ", width-2) + "#"

	var b strings.Builder
	b.WriteString("\n" + border + "\n" + blank + "\n")
	for _, line := range lines {
		inner := width - 2
		if len(line) > inner {
			line = line[:inner]
		}
		left := (inner - len(line)) / 2
		right := inner - len(line) - left
		b.WriteString("#" + strings.Repeat(" ", left) + line + strings.Repeat(" ", right) + "#\n")
	}
	b.WriteString(blank + "\n" + border + "\n")

	text := b.String()
	if !noColor {
		text = colorSection.Sprint(text)
	}
	_, _ = fmt.Fprintln(w, text)
}

// LogSection creates a visual section separator
func LogSection(title string) {
	w, noColor := output()
	line := strings.Repeat("=", 50)
	if noColor {
		_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n", line, title, line)
		return
	}
	_, _ = fmt.Fprintf(w, "%s\n%s\n%s\n", colorSection.Sprint(line), colorSection.Sprint(title), colorSection.Sprint(line))
}

// LogLines writes pre-rendered report lines verbatim
func LogLines(lines []string) {
	w, _ := output()
	for _, line := range lines {
		_, _ = fmt.Fprintln(w, line)
	}
}

// LogKeyValue logs a key-value pair
func LogKeyValue(key string, value interface{}) {
	w, noColor := output()
	if noColor {
		_, _ = fmt.Fprintf(w, "%s: %v\n", key, value)
		return
	}
	_, _ = fmt.Fprintf(w, "%s %v\n", colorKey.Sprint(key+":"), value)
}

// LogList logs a list of items with bullets
func LogList(title string, items []string) {
	Info(title)
	w, _ := output()
	for _, item := range items {
		_, _ = fmt.Fprintf(w, "  %s %s\n", IconDot, item)
	}
}

// Table represents a simple table for logging
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a new table
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow adds a row to the table
func (t *Table) AddRow(values ...string) {
	t.rows = append(t.rows, values)
}

// Print writes the table to the default logger's output
func (t *Table) Print() {
	w, _ := output()
	t.Fprint(w)
}

// Fprint writes the table with padded columns
func (t *Table) Fprint(w io.Writer) {
	if len(t.headers) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		var b strings.Builder
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
		}
		_, _ = fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}

	writeRow(t.headers)
	seps := make([]string, len(widths))
	for i, width := range widths {
		seps[i] = strings.Repeat("-", width)
	}
	writeRow(seps)
	for _, row := range t.rows {
		writeRow(row)
	}
}
