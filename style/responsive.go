package style

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"sprop/common"
)

// IntermediateKey returns name of the custom property holding value of
// physical property for a single breakpoint: "--pc-box-display-sm".
func (t *Tables) IntermediateKey(physical PropertyName, breakpoint string) string {
	return "--" + t.namespace + "-" + physical.Kebab() + "-" + breakpoint
}

// Sanitize drops parts of prop value which can never produce a binding:
// blank values and entries for breakpoints not present in tables. Every
// dropped part is reported. It returns false when nothing usable is left, in
// which case the prop must not take part in precedence at all.
func (t *Tables) Sanitize(name PropertyName, value ResponsiveValue) (ResponsiveValue, []Diagnostic, bool) {
	if !value.IsResponsive() {
		if v := value.Value(); isBlank(v) {
			return value, []Diagnostic{blankDiagnostic(name, "", v)}, false
		}
		return value, nil, true
	}

	var diags []Diagnostic
	entries := make(map[string]Value, len(value.entries))
	for _, bp := range value.Breakpoints() {
		v, _ := value.Entry(bp)
		switch _, known := t.rank[bp]; {
		case !known:
			diags = append(diags, newDiagnostic(common.DiagnosticKindInvalidResponsiveValue, name, bp, v.Raw,
				fmt.Errorf("%w: unknown breakpoint %q", ErrInvalidResponsiveValue, bp)))
		case isBlank(v):
			diags = append(diags, blankDiagnostic(name, bp, v))
		default:
			entries[bp] = v
		}
	}
	if len(entries) == 0 {
		if len(diags) == 0 {
			diags = append(diags, newDiagnostic(common.DiagnosticKindInvalidResponsiveValue, name, "", "",
				fmt.Errorf("%w: no breakpoints specified", ErrInvalidResponsiveValue)))
		}
		return value, diags, false
	}
	if len(diags) == 0 {
		return value, nil, true
	}
	return ResponsiveValue{entries: entries}, diags, true
}

func isBlank(v Value) bool {
	return strings.TrimSpace(v.Raw) == ""
}

func blankDiagnostic(name PropertyName, breakpoint string, v Value) Diagnostic {
	return newDiagnostic(common.DiagnosticKindInvalidResponsiveValue, name, breakpoint, v.Raw,
		fmt.Errorf("%w: %w", ErrInvalidResponsiveValue, ErrEmptyValue))
}

// CompileResponsive produces output bindings for already chosen value of
// physical property.
//
// Single value yields one direct binding. Mapping yields one intermediate
// binding per supplied breakpoint, narrowest first, followed by binding of
// the property itself referencing intermediates widest first and ending with
// "unset". Since breakpoints are min-width conditions, widest active
// breakpoint is the most specific one and must be checked first.
//
// Value is passed through Sanitize first, unusable parts are dropped and
// reported.
func (t *Tables) CompileResponsive(physical PropertyName, value ResponsiveValue) ([]Binding, []Diagnostic) {
	value, diags, ok := t.Sanitize(physical, value)
	if !ok {
		return nil, diags
	}
	if !value.IsResponsive() {
		return []Binding{{
			Key:      physical.Kebab(),
			Property: physical,
			Expr:     t.ResolveToken(physical, value.Value()),
		}}, diags
	}

	supported := value.Breakpoints()
	slices.SortFunc(supported, func(a, b string) int {
		return cmp.Compare(t.rank[a], t.rank[b])
	})

	bindings := make([]Binding, 0, len(supported)+1)
	chain := FallbackChain{Refs: make([]string, len(supported)), Terminal: unsetTerminal}
	for i, bp := range supported {
		v, _ := value.Entry(bp)
		key := t.IntermediateKey(physical, bp)
		bindings = append(bindings, Binding{
			Key:        key,
			Property:   physical,
			Breakpoint: bp,
			Expr: Conditional{
				Breakpoint: bp,
				Toggle:     t.breakpoints[t.rank[bp]].Toggle(),
				Value:      t.ResolveToken(physical, v),
			},
		})
		// widest first
		chain.Refs[len(supported)-1-i] = key
	}
	bindings = append(bindings, Binding{
		Key:      physical.Kebab(),
		Property: physical,
		Expr:     chain,
	})
	return bindings, diags
}

// tokenDiagnostics reports token references absent from known set.
func tokenDiagnostics(bindings []Binding, known map[string]bool) []Diagnostic {
	if known == nil {
		return nil
	}
	var diags []Diagnostic
	for _, b := range bindings {
		expr := b.Expr
		if c, ok := expr.(Conditional); ok {
			expr = c.Value
		}
		ref, ok := expr.(TokenRef)
		if !ok || known[ref.Name] {
			continue
		}
		diags = append(diags, newDiagnostic(common.DiagnosticKindUnknownToken, b.Property, b.Breakpoint, ref.Step,
			fmt.Errorf("%w: --%s is not defined", ErrUnknownToken, ref.Name)))
	}
	return diags
}
