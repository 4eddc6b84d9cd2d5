package style

import (
	"math"
	"strings"
	"unicode"
)

// PropertyName identifies physical or alias property as it is used in props,
// in camel case: "paddingInlineStart", "padding".
type PropertyName string

// DirectSpecificity is rank carried by directly specified physical properties.
// It is reserved: no alias target may use it.
const DirectSpecificity = math.MaxInt

// Kebab returns property name as CSS property: "paddingInlineStart" becomes
// "padding-inline-start".
func (p PropertyName) Kebab() string {
	var sb strings.Builder
	sb.Grow(len(p) + 4)
	for i, r := range string(p) {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Target is a single physical property alias expands to.
type Target struct {
	Physical    PropertyName `yaml:"physical"`
	Specificity int          `yaml:"specificity"`
}

// Property is either physical property or an alias with its expansion list.
// Zero value is not usable, use Physical or Alias.
type Property struct {
	name    PropertyName
	alias   bool
	targets []Target
}

// Physical makes property consumed directly by rendering boundary.
func Physical(name PropertyName) Property {
	return Property{name: name}
}

// Alias makes logical property expanding into targets.
func Alias(name PropertyName, targets ...Target) Property {
	return Property{name: name, alias: true, targets: append([]Target(nil), targets...)}
}

// Name returns property name.
func (p Property) Name() PropertyName {
	return p.name
}

// IsAlias reports whether property expands into other properties.
func (p Property) IsAlias() bool {
	return p.alias
}

// Targets returns expansion list. Physical property expands to itself with
// DirectSpecificity.
func (p Property) Targets() []Target {
	if !p.alias {
		return []Target{{Physical: p.name, Specificity: DirectSpecificity}}
	}
	return append([]Target(nil), p.targets...)
}

// Triple is a candidate value for a physical property produced by alias
// expansion. Source is the property it was expanded from.
type Triple struct {
	Physical    PropertyName
	Source      PropertyName
	Specificity int
	Value       ResponsiveValue
}
