package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single "property: value" pair inside a rule.
type Declaration struct {
	Property string // Property name as written, custom properties keep leading "--"
	Value    string // Raw value, whitespace trimmed; may be empty for custom properties
}

// IsCustom returns true if the declaration defines a custom property.
func (d Declaration) IsCustom() bool {
	return strings.HasPrefix(d.Property, "--")
}

// Rule represents a single CSS rule (selector + declarations).
// Declarations keep source order, repeated properties are allowed and the
// last one wins, same as in a browser cascade.
type Rule struct {
	Selector     string        // Selector text, grouped selectors are split into separate rules
	Declarations []Declaration // Declarations in source order
}

// Get returns the effective value for a property.
func (r Rule) Get(property string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == property {
			return r.Declarations[i].Value, true
		}
	}
	return "", false
}

// Set appends a declaration to the rule.
func (r *Rule) Set(property, value string) {
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
}

// MediaQuery represents @media query condition. Conditions are opaque to us,
// they are evaluated by whoever consumes resulting stylesheet.
type MediaQuery struct {
	Raw string // Query text, e.g. "(min-width: 48em)"
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query MediaQuery
	Rules []Rule
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule or MediaBlock is non-nil.
type StylesheetItem struct {
	Rule       *Rule       // A plain rule (selector + declarations)
	MediaBlock *MediaBlock // A @media block containing nested rules
}

// Stylesheet represents a parsed or generated CSS stylesheet.
type Stylesheet struct {
	Items    []StylesheetItem // All top-level items in source order
	Warnings []string         // Warnings for unsupported features
}

// AddRule appends top-level rule.
func (s *Stylesheet) AddRule(rule Rule) {
	s.Items = append(s.Items, StylesheetItem{Rule: &rule})
}

// AddMediaBlock appends @media block.
func (s *Stylesheet) AddMediaBlock(mb MediaBlock) {
	s.Items = append(s.Items, StylesheetItem{MediaBlock: &mb})
}

// Rules returns all top-level rules in source order.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

// MediaBlocks returns all @media blocks in source order.
func (s *Stylesheet) MediaBlocks() []MediaBlock {
	var blocks []MediaBlock
	for _, item := range s.Items {
		if item.MediaBlock != nil {
			blocks = append(blocks, *item.MediaBlock)
		}
	}
	return blocks
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Declarations are written in the order they were added.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		switch {
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeRule(w, "", item.Rule)
		}

		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w prefixing every line with indent.
func writeRule(w io.Writer, indent string, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "%s  %s: %s;\n", indent, d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query.Raw)
	total += n
	if err != nil {
		return total, err
	}

	for i := range mb.Rules {
		n, err = writeRule(w, "  ", &mb.Rules[i])
		total += n
		if err != nil {
			return total, err
		}

		// Blank line between rules in a media block (except after last)
		if i < len(mb.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
