package style

import (
	"sprop/css"
)

// DefaultSheetSelector is where breakpoint toggles are declared.
const DefaultSheetSelector = ":root"

// BreakpointSheet builds stylesheet making intermediate bindings work: all
// breakpoint toggles are "initial" (which makes any var() referencing them
// invalid so consumer falls back) and each breakpoint's @media block turns
// its toggle into empty value.
func (t *Tables) BreakpointSheet(selector string) *css.Stylesheet {
	if selector == "" {
		selector = DefaultSheetSelector
	}

	sheet := &css.Stylesheet{}
	base := css.Rule{Selector: selector}
	for _, bp := range t.breakpoints {
		base.Set(bp.Toggle(), "initial")
	}
	sheet.AddRule(base)

	for _, bp := range t.breakpoints {
		rule := css.Rule{Selector: selector}
		rule.Set(bp.Toggle(), "")
		sheet.AddMediaBlock(css.MediaBlock{
			Query: css.MediaQuery{Raw: bp.Condition},
			Rules: []css.Rule{rule},
		})
	}
	return sheet
}
