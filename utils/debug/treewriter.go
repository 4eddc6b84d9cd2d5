package debug

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TreeWriter accumulates indented human readable dumps for debug reports.
type TreeWriter struct {
	w      *strings.Builder
	indent string
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: "  ",
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

// Line writes formatted line at given depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Section writes header line followed by colon and optional item count.
func (tw *TreeWriter) Section(depth int, title string, count int) {
	tw.pad(depth)
	tw.w.WriteString(title)
	if count >= 0 {
		fmt.Fprintf(tw.w, " (%d)", count)
	}
	tw.w.WriteString(":\n")
}

// Field writes "label: value", value is quoted when it has leading or
// trailing spaces or non printable characters.
func (tw *TreeWriter) Field(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Fields writes label/value pairs with labels padded to the same width.
func (tw *TreeWriter) Fields(depth int, pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}
	for _, p := range pairs {
		tw.pad(depth)
		tw.w.WriteString(p[0])
		tw.w.WriteString(": ")
		tw.w.WriteString(strings.Repeat(" ", width-len(p[0])))
		tw.w.WriteString(encodeText(p[1]))
		tw.w.WriteByte('\n')
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return `""`
	}
	if raw != strings.TrimSpace(raw) || strings.ContainsFunc(raw, needsEscape) {
		return strconv.Quote(raw)
	}
	return raw
}

func needsEscape(r rune) bool {
	return r == '"' || r == '\\' || !unicode.IsPrint(r)
}
