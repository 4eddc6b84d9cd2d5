package css

import "strings"

// CustomProperties collects custom property declarations from all rules of
// the stylesheet, including rules nested in @media blocks. Names are returned
// without leading "--". When property is declared more than once the last
// declaration wins.
func (s *Stylesheet) CustomProperties() map[string]string {
	props := make(map[string]string)
	collect := func(rule Rule) {
		for _, d := range rule.Declarations {
			if d.IsCustom() {
				props[strings.TrimPrefix(d.Property, "--")] = d.Value
			}
		}
	}
	for _, item := range s.Items {
		switch {
		case item.Rule != nil:
			collect(*item.Rule)
		case item.MediaBlock != nil:
			for _, rule := range item.MediaBlock.Rules {
				collect(rule)
			}
		}
	}
	return props
}
