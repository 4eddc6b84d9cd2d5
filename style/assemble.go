package style

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maruel/natural"
)

// ResolvedMap is the final output of compilation: flat ordered mapping from
// output key to expression. Properties are ordered by CSS name, intermediate
// bindings of a property precede its chained binding. ResolvedMap is never
// modified after assembly.
type ResolvedMap struct {
	bindings []Binding
	index    map[string]int
}

// assemble flattens per property bindings into single map.
func assemble(groups map[PropertyName][]Binding) (*ResolvedMap, error) {
	names := make([]PropertyName, 0, len(groups))
	total := 0
	for name, bs := range groups {
		names = append(names, name)
		total += len(bs)
	}
	slices.SortFunc(names, func(a, b PropertyName) int {
		ka, kb := a.Kebab(), b.Kebab()
		switch {
		case ka == kb:
			return strings.Compare(string(a), string(b))
		case natural.Less(ka, kb):
			return -1
		default:
			return 1
		}
	})

	m := &ResolvedMap{
		bindings: make([]Binding, 0, total),
		index:    make(map[string]int, total),
	}
	for _, name := range names {
		for _, b := range groups[name] {
			if prev, dup := m.index[b.Key]; dup {
				return nil, &PropertyError{
					Property:   name,
					Breakpoint: b.Breakpoint,
					Err:        fmt.Errorf("%w: %q already bound by %s", ErrBindingCollision, b.Key, m.bindings[prev].Property),
				}
			}
			m.index[b.Key] = len(m.bindings)
			m.bindings = append(m.bindings, b)
		}
	}
	return m, nil
}

// Len returns number of bindings.
func (m *ResolvedMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.bindings)
}

// Get returns binding by output key.
func (m *ResolvedMap) Get(key string) (Binding, bool) {
	if m == nil {
		return Binding{}, false
	}
	i, ok := m.index[key]
	if !ok {
		return Binding{}, false
	}
	return m.bindings[i], true
}

// Value returns formatted value for output key.
func (m *ResolvedMap) Value(key string) (string, bool) {
	b, ok := m.Get(key)
	if !ok {
		return "", false
	}
	return FormatExpr(b.Expr), true
}

// Keys returns output keys in order.
func (m *ResolvedMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.bindings))
	for i, b := range m.bindings {
		keys[i] = b.Key
	}
	return keys
}

// Bindings returns copy of all bindings in order.
func (m *ResolvedMap) Bindings() []Binding {
	if m == nil {
		return nil
	}
	return slices.Clone(m.bindings)
}

// Strings returns formatted values keyed by output key.
func (m *ResolvedMap) Strings() map[string]string {
	out := make(map[string]string, m.Len())
	for _, b := range m.Bindings() {
		out[b.Key] = FormatExpr(b.Expr)
	}
	return out
}

// InlineStyle serializes map as value of HTML style attribute.
func (m *ResolvedMap) InlineStyle() string {
	var sb strings.Builder
	for i, b := range m.Bindings() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(b.Key)
		sb.WriteString(": ")
		writeExpr(&sb, b.Expr)
		sb.WriteByte(';')
	}
	return sb.String()
}

func (m *ResolvedMap) String() string {
	return m.InlineStyle()
}
