package style

import "strings"

// ResolveToken decides whether value of physical property needs token
// indirection. Never fails: values which do not look like scale steps and
// values of properties without token group are passed through as literals.
func (t *Tables) ResolveToken(physical PropertyName, v Value) Expr {
	group, ok := t.tokenGroups[physical]
	if !ok || v.Kind == KindLiteral || (v.Kind == KindAuto && isPassThrough(v.Raw)) {
		return Literal{Text: v.Raw}
	}
	step := strings.TrimSpace(v.Raw)
	return TokenRef{Group: group, Step: step, Name: t.tokenName(group, step)}
}

func (t *Tables) tokenName(group, step string) string {
	if t.tokenPrefix == "" {
		return group + "-" + step
	}
	return t.tokenPrefix + "-" + group + "-" + step
}
