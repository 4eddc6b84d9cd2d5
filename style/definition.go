package style

import (
	"fmt"
	"io"
	"maps"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Breakpoint is a named viewport condition. Its rank is its position in
// Definition.Breakpoints, narrowest first.
type Breakpoint struct {
	Alias     string `yaml:"alias"`
	Condition string `yaml:"condition"` // opaque, evaluated by whoever renders the output
}

// Toggle returns name of custom property switched on while breakpoint is
// active.
func (b Breakpoint) Toggle() string {
	return "--_" + b.Alias
}

// AliasEntry describes alias expansion.
type AliasEntry struct {
	Alias   PropertyName `yaml:"alias"`
	Targets []Target     `yaml:"targets"`
}

// Definition is serializable source of static tables. It is validated and
// frozen by NewTables.
type Definition struct {
	Namespace   string                  `yaml:"namespace"`
	TokenPrefix string                  `yaml:"token_prefix"`
	Breakpoints []Breakpoint            `yaml:"breakpoints"`
	Physical    []PropertyName          `yaml:"physical"`
	Aliases     []AliasEntry            `yaml:"aliases"`
	TokenGroups map[PropertyName]string `yaml:"token_groups"`
	Defaults    Props                   `yaml:"defaults,omitempty"`
}

// Clone returns deep copy of the definition.
func (d *Definition) Clone() *Definition {
	c := &Definition{
		Namespace:   d.Namespace,
		TokenPrefix: d.TokenPrefix,
		Breakpoints: append([]Breakpoint(nil), d.Breakpoints...),
		Physical:    append([]PropertyName(nil), d.Physical...),
		TokenGroups: maps.Clone(d.TokenGroups),
	}
	for _, a := range d.Aliases {
		c.Aliases = append(c.Aliases, AliasEntry{Alias: a.Alias, Targets: append([]Target(nil), a.Targets...)})
	}
	if d.Defaults != nil {
		// ResponsiveValue is never modified after creation, sharing is fine
		c.Defaults = maps.Clone(d.Defaults)
	}
	return c
}

// DecodeDefinition reads definition from YAML. Unknown fields are rejected.
func DecodeDefinition(r io.Reader) (*Definition, error) {
	def := &Definition{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(def); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	return def, nil
}

// LoadDefinition reads definition from YAML file.
func LoadDefinition(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition: %w", err)
	}
	defer f.Close()

	def, err := DecodeDefinition(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Encode writes definition as YAML.
func (d *Definition) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to encode definition: %w", err)
	}
	return enc.Close()
}
