package style

import (
	"fmt"
	"maps"
	"slices"

	"sprop/utils/debug"
)

// Trace records how compilation arrived at its result. It is only collected
// when requested (see WithTrace) and is meant for debug reports.
type Trace struct {
	entries  []traceEntry
	sections map[string]int // operation -> entry count for summary
}

type traceEntry struct {
	operation string // "EXPAND", "UNKNOWN", "DEFAULT", "WIN", "BIND", "DIAG"
	subject   string
	details   []string
}

func newTrace() *Trace {
	return &Trace{sections: make(map[string]int)}
}

// IsEnabled returns true if trace is being recorded.
func (t *Trace) IsEnabled() bool {
	return t != nil
}

func (t *Trace) add(operation, subject string, details ...string) {
	if !t.IsEnabled() {
		return
	}
	t.entries = append(t.entries, traceEntry{operation: operation, subject: subject, details: details})
	t.sections[operation]++
}

func (t *Trace) traceExpand(name PropertyName, value ResponsiveValue, triples []Triple) {
	if !t.IsEnabled() {
		return
	}
	details := make([]string, 0, len(triples)+1)
	details = append(details, "value: "+value.String())
	for _, tr := range triples {
		details = append(details, tr.String())
	}
	t.add("EXPAND", string(name), details...)
}

func (t *Trace) traceUnknown(err error) {
	if !t.IsEnabled() {
		return
	}
	t.add("UNKNOWN", err.Error())
}

func (t *Trace) traceDefault(tr Triple) {
	if !t.IsEnabled() {
		return
	}
	t.add("DEFAULT", string(tr.Physical), "from "+string(tr.Source), "value: "+tr.Value.String())
}

func (t *Trace) traceWinner(tr Triple) {
	if !t.IsEnabled() {
		return
	}
	t.add("WIN", tr.String(), "value: "+tr.Value.String())
}

func (t *Trace) traceBindings(physical PropertyName, bindings []Binding) {
	if !t.IsEnabled() || len(bindings) == 0 {
		return
	}
	details := make([]string, 0, len(bindings))
	for _, b := range bindings {
		details = append(details, b.Key+": "+FormatExpr(b.Expr))
	}
	t.add("BIND", string(physical), details...)
}

func (t *Trace) traceDiagnostic(d Diagnostic) {
	if !t.IsEnabled() {
		return
	}
	t.add("DIAG", d.Kind.String(), d.Err.Error())
}

// Count returns number of recorded entries for operation.
func (t *Trace) Count(operation string) int {
	if !t.IsEnabled() {
		return 0
	}
	return t.sections[operation]
}

// String renders trace as indented text.
func (t *Trace) String() string {
	if !t.IsEnabled() || len(t.entries) == 0 {
		return ""
	}

	tw := debug.NewTreeWriter()
	tw.Section(0, "summary", -1)
	summary := make([][2]string, 0, len(t.sections))
	for _, op := range slices.Sorted(maps.Keys(t.sections)) {
		summary = append(summary, [2]string{op, fmt.Sprint(t.sections[op])})
	}
	tw.Fields(1, summary)

	tw.Section(0, "trace", len(t.entries))
	for i, e := range t.entries {
		tw.Line(1, "[%04d] %s: %s", i+1, e.operation, e.subject)
		for _, d := range e.details {
			tw.Line(4, "%s", d)
		}
	}
	return tw.String()
}
