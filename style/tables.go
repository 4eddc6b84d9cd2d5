package style

import (
	"fmt"
	"slices"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
)

// Tables are static, immutable lookup tables every compilation runs against:
// properties (physical and alias), token groups, breakpoints and defaults.
// Tables are safe for concurrent use and are meant to be built once at start
// and shared.
type Tables struct {
	def         *Definition
	namespace   string
	tokenPrefix string
	breakpoints []Breakpoint
	rank        map[string]int
	properties  map[PropertyName]Property
	tokenGroups map[PropertyName]string
	defaults    Props
}

// NewTables validates definition and builds tables from it. All problems
// found are reported at once. Definition is copied, later changes to it do not
// affect tables.
func NewTables(def *Definition) (*Tables, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: no definition", ErrInvalidDefinition)
	}
	def = def.Clone()

	var err error
	invalid := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrInvalidDefinition}, args...)...))
	}

	t := &Tables{
		def:         def,
		namespace:   def.Namespace,
		tokenPrefix: def.TokenPrefix,
		rank:        make(map[string]int, len(def.Breakpoints)),
		properties:  make(map[PropertyName]Property),
		tokenGroups: make(map[PropertyName]string, len(def.TokenGroups)),
	}

	if t.namespace == "" {
		invalid("namespace is required")
	}

	if len(def.Breakpoints) == 0 {
		invalid("at least one breakpoint is required")
	}
	for _, bp := range def.Breakpoints {
		switch {
		case bp.Alias == "":
			invalid("breakpoint without alias")
			continue
		case bp.Condition == "":
			invalid("breakpoint %q has no condition", bp.Alias)
		}
		if _, dup := t.rank[bp.Alias]; dup {
			invalid("breakpoint %q defined more than once", bp.Alias)
			continue
		}
		t.rank[bp.Alias] = len(t.breakpoints)
		t.breakpoints = append(t.breakpoints, bp)
	}

	physical := make(map[PropertyName]bool)
	for _, name := range def.Physical {
		if name == "" {
			invalid("empty physical property name")
			continue
		}
		physical[name] = true
	}
	for name := range def.TokenGroups {
		physical[name] = true
	}

	// physical property -> specificity -> alias, to catch ambiguous tables early
	ranks := make(map[PropertyName]map[int]PropertyName)
	aliases := make(map[PropertyName][]Target, len(def.Aliases))
	for _, entry := range def.Aliases {
		if entry.Alias == "" {
			invalid("alias without name")
			continue
		}
		if _, dup := aliases[entry.Alias]; dup {
			invalid("alias %q defined more than once", entry.Alias)
			continue
		}
		if len(entry.Targets) == 0 {
			invalid("alias %q has no targets", entry.Alias)
			continue
		}
		seen := make(map[PropertyName]bool, len(entry.Targets))
		for _, target := range entry.Targets {
			switch {
			case target.Physical == "":
				invalid("alias %q has target without name", entry.Alias)
				continue
			case seen[target.Physical]:
				invalid("alias %q targets %q more than once", entry.Alias, target.Physical)
				continue
			case target.Specificity <= 0 || target.Specificity >= DirectSpecificity:
				invalid("alias %q target %q has specificity %d out of range", entry.Alias, target.Physical, target.Specificity)
				continue
			}
			seen[target.Physical] = true
			physical[target.Physical] = true

			byRank, ok := ranks[target.Physical]
			if !ok {
				byRank = make(map[int]PropertyName)
				ranks[target.Physical] = byRank
			}
			if other, taken := byRank[target.Specificity]; taken {
				err = multierr.Append(err, fmt.Errorf("aliases %q and %q target %q with the same specificity %d: %w",
					other, entry.Alias, target.Physical, target.Specificity, ErrSpecificityConflict))
				continue
			}
			byRank[target.Specificity] = entry.Alias
		}
		aliases[entry.Alias] = entry.Targets
	}

	for name := range physical {
		if _, clash := aliases[name]; clash {
			invalid("%q is both alias and physical property", name)
			continue
		}
		t.properties[name] = Physical(name)
	}
	for name, targets := range aliases {
		if physical[name] {
			continue
		}
		t.properties[name] = Alias(name, targets...)
	}

	for name, group := range def.TokenGroups {
		if group == "" {
			invalid("token group for %q is empty", name)
			continue
		}
		t.tokenGroups[name] = group
	}

	t.defaults = make(Props, len(def.Defaults))
	for name, value := range def.Defaults {
		if _, ok := t.properties[name]; !ok {
			invalid("default for unknown property %q", name)
			continue
		}
		if !value.IsResponsive() && isBlank(value.Value()) {
			invalid("default for %q is empty", name)
		}
		for _, bp := range value.Breakpoints() {
			if _, ok := t.rank[bp]; !ok {
				invalid("default for %q uses unknown breakpoint %q", name, bp)
			}
			if v, _ := value.Entry(bp); isBlank(v) {
				invalid("default for %q is empty at breakpoint %q", name, bp)
			}
		}
		t.defaults[name] = value
	}

	if err != nil {
		return nil, err
	}
	return t, nil
}

// MustTables is NewTables which panics on error, for static definitions.
func MustTables(def *Definition) *Tables {
	t, err := NewTables(def)
	if err != nil {
		panic(err)
	}
	return t
}

// Namespace returns prefix of intermediate custom properties.
func (t *Tables) Namespace() string {
	return t.namespace
}

// TokenPrefix returns prefix of token custom properties.
func (t *Tables) TokenPrefix() string {
	return t.tokenPrefix
}

// Breakpoints returns configured breakpoints, narrowest first.
func (t *Tables) Breakpoints() []Breakpoint {
	return slices.Clone(t.breakpoints)
}

// Rank returns position of the breakpoint, smaller is narrower.
func (t *Tables) Rank(alias string) (int, bool) {
	r, ok := t.rank[alias]
	return r, ok
}

// Lookup returns property by name.
func (t *Tables) Lookup(name PropertyName) (Property, bool) {
	p, ok := t.properties[name]
	return p, ok
}

// TokenGroup returns token group of physical property.
func (t *Tables) TokenGroup(name PropertyName) (string, bool) {
	g, ok := t.tokenGroups[name]
	return g, ok
}

// Defaults returns values used for properties caller did not specify.
func (t *Tables) Defaults() Props {
	out := make(Props, len(t.defaults))
	for k, v := range t.defaults {
		out[k] = v
	}
	return out
}

// Definition returns copy of the definition tables were built from.
func (t *Tables) Definition() *Definition {
	return t.def.Clone()
}

// PhysicalNames returns all physical properties in natural order.
func (t *Tables) PhysicalNames() []PropertyName {
	return t.names(false)
}

// AliasNames returns all aliases in natural order.
func (t *Tables) AliasNames() []PropertyName {
	return t.names(true)
}

func (t *Tables) names(alias bool) []PropertyName {
	var names []PropertyName
	for name, p := range t.properties {
		if p.IsAlias() == alias {
			names = append(names, name)
		}
	}
	slices.SortFunc(names, func(a, b PropertyName) int {
		switch {
		case a == b:
			return 0
		case natural.Less(string(a), string(b)):
			return -1
		default:
			return 1
		}
	})
	return names
}
