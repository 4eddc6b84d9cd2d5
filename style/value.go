package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

// ValueKind tells token resolver how to treat a value.
type ValueKind int

const (
	KindAuto    ValueKind = iota // decided by lexical form of the value
	KindScale                    // always a token scale step
	KindLiteral                  // always passed through as is
)

// YAML tags forcing value kind in props and definition files.
const (
	tagLiteral = "!raw"
	tagScale   = "!token"
)

// Value is a single prop value: a symbolic scale step ("400", "bg-surface")
// or a literal understood by the output medium ("42px", "flex").
type Value struct {
	Raw  string
	Kind ValueKind
}

// Auto makes value classified by its lexical form.
func Auto(raw string) Value {
	return Value{Raw: raw}
}

// Scale makes value always treated as token step on tokenized properties.
func Scale(step string) Value {
	return Value{Raw: step, Kind: KindScale}
}

// Raw makes value never converted to token reference.
func Raw(text string) Value {
	return Value{Raw: text, Kind: KindLiteral}
}

func (v Value) String() string {
	return v.Raw
}

// UnmarshalYAML keeps scalar text exactly as written, so "025" stays a scale
// step and is not read as octal number.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: scalar value expected", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		return fmt.Errorf("line %d: value is required", node.Line)
	case tagLiteral:
		*v = Raw(node.Value)
	case tagScale:
		*v = Scale(node.Value)
	default:
		*v = Auto(node.Value)
	}
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: v.Raw}
	switch v.Kind {
	case KindLiteral:
		node.Tag = tagLiteral
	case KindScale:
		node.Tag = tagScale
	}
	return node, nil
}

// ResponsiveValue is either a single value or a mapping from breakpoint alias
// to value.
type ResponsiveValue struct {
	single  Value
	entries map[string]Value // nil when value is not responsive
}

// Single makes non-responsive value.
func Single(v Value) ResponsiveValue {
	return ResponsiveValue{single: v}
}

// PerBreakpoint makes responsive value. Map is copied.
func PerBreakpoint(entries map[string]Value) ResponsiveValue {
	r := ResponsiveValue{entries: make(map[string]Value, len(entries))}
	for bp, v := range entries {
		r.entries[bp] = v
	}
	return r
}

// IsResponsive reports whether value varies per breakpoint.
func (r ResponsiveValue) IsResponsive() bool {
	return r.entries != nil
}

// Value returns value of non-responsive ResponsiveValue.
func (r ResponsiveValue) Value() Value {
	return r.single
}

// Entry returns value for a single breakpoint.
func (r ResponsiveValue) Entry(breakpoint string) (Value, bool) {
	v, ok := r.entries[breakpoint]
	return v, ok
}

// Breakpoints returns breakpoint aliases present in the mapping, sorted by
// name. Use Tables to order them by rank.
func (r ResponsiveValue) Breakpoints() []string {
	names := make([]string, 0, len(r.entries))
	for bp := range r.entries {
		names = append(names, bp)
	}
	slices.Sort(names)
	return names
}

func (r ResponsiveValue) String() string {
	if !r.IsResponsive() {
		return r.single.Raw
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, bp := range r.Breakpoints() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(bp)
		sb.WriteString(": ")
		sb.WriteString(r.entries[bp].Raw)
	}
	sb.WriteByte('}')
	return sb.String()
}

func (r *ResponsiveValue) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		var v Value
		if err := v.UnmarshalYAML(node); err != nil {
			return err
		}
		*r = Single(v)
		return nil
	case yaml.MappingNode:
		entries := make(map[string]Value, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]
			if _, dup := entries[key.Value]; dup {
				return fmt.Errorf("line %d: breakpoint %q specified more than once", key.Line, key.Value)
			}
			var v Value
			if err := v.UnmarshalYAML(val); err != nil {
				return fmt.Errorf("breakpoint %q: %w", key.Value, err)
			}
			entries[key.Value] = v
		}
		*r = ResponsiveValue{entries: entries}
		return nil
	default:
		return fmt.Errorf("line %d: expected scalar or breakpoint mapping", node.Line)
	}
}

func (r ResponsiveValue) MarshalYAML() (any, error) {
	if !r.IsResponsive() {
		return r.single.MarshalYAML()
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, bp := range r.Breakpoints() {
		val, _ := r.entries[bp].MarshalYAML()
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: bp}, val.(*yaml.Node))
	}
	return node, nil
}

// ParseResponsive converts loosely typed data (decoded JSON, hand made maps)
// into ResponsiveValue.
func ParseResponsive(raw any) (ResponsiveValue, error) {
	switch v := raw.(type) {
	case ResponsiveValue:
		return v, nil
	case Value:
		return Single(v), nil
	case map[string]Value:
		return PerBreakpoint(v), nil
	case map[string]string:
		entries := make(map[string]Value, len(v))
		for bp, s := range v {
			entries[bp] = Auto(s)
		}
		return ResponsiveValue{entries: entries}, nil
	case map[string]any:
		entries := make(map[string]Value, len(v))
		for bp, s := range v {
			str, err := scalarString(s)
			if err != nil {
				return ResponsiveValue{}, fmt.Errorf("breakpoint %q: %w", bp, err)
			}
			entries[bp] = Auto(str)
		}
		return ResponsiveValue{entries: entries}, nil
	default:
		str, err := scalarString(raw)
		if err != nil {
			return ResponsiveValue{}, err
		}
		return Single(Auto(str)), nil
	}
}

func scalarString(raw any) (string, error) {
	switch v := raw.(type) {
	case Value:
		return v.Raw, nil
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is required")
	default:
		return "", fmt.Errorf("unsupported value type %T", raw)
	}
}

// Props is the bag of style props supplied by component layer.
type Props map[PropertyName]ResponsiveValue

// Names returns prop names sorted.
func (p Props) Names() []PropertyName {
	names := make([]PropertyName, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseProps converts loosely typed map into Props reporting all bad values
// at once.
func ParseProps(raw map[string]any) (Props, error) {
	props := make(Props, len(raw))
	var err error
	for name, v := range raw {
		rv, e := ParseResponsive(v)
		if e != nil {
			err = multierr.Append(err, fmt.Errorf("prop %q: %w", name, e))
			continue
		}
		props[PropertyName(name)] = rv
	}
	if err != nil {
		return nil, err
	}
	return props, nil
}

// DecodeProps reads props from YAML (or JSON) document. Props are decoded
// node by node since null scalars never reach UnmarshalYAML otherwise and
// would silently become empty values.
func DecodeProps(data []byte) (Props, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode props: %w", err)
	}

	props := make(Props)
	if len(doc.Content) == 0 {
		return props, nil
	}
	root := resolveAlias(doc.Content[0])
	switch {
	case root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null":
		return props, nil
	case root.Kind != yaml.MappingNode:
		return nil, fmt.Errorf("failed to decode props: line %d: mapping of props expected", root.Line)
	}

	var err error
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		name := PropertyName(key.Value)
		if _, dup := props[name]; dup {
			err = multierr.Append(err, fmt.Errorf("line %d: prop %q specified more than once", key.Line, key.Value))
			continue
		}
		var rv ResponsiveValue
		if e := rv.UnmarshalYAML(resolveAlias(val)); e != nil {
			err = multierr.Append(err, fmt.Errorf("prop %q: %w", key.Value, e))
			continue
		}
		props[name] = rv
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode props: %w", err)
	}
	return props, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
