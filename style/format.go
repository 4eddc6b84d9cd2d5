package style

import (
	"fmt"
	"strings"
)

// FormatExpr renders expression as CSS value text.
//
//	Literal        42px
//	TokenRef       var(--p-space-400)
//	Conditional    var(--_sm) var(--p-space-400)
//	FallbackChain  var(--pc-box-display-xl, var(--pc-box-display-sm, unset))
func FormatExpr(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e)
	return sb.String()
}

func writeExpr(sb *strings.Builder, e Expr) {
	switch v := e.(type) {
	case Literal:
		sb.WriteString(v.Text)
	case TokenRef:
		sb.WriteString("var(--")
		sb.WriteString(v.Name)
		sb.WriteByte(')')
	case Conditional:
		sb.WriteString("var(")
		sb.WriteString(v.Toggle)
		sb.WriteString(") ")
		writeExpr(sb, v.Value)
	case FallbackChain:
		for _, ref := range v.Refs {
			sb.WriteString("var(")
			sb.WriteString(ref)
			sb.WriteString(", ")
		}
		sb.WriteString(v.Terminal)
		sb.WriteString(strings.Repeat(")", len(v.Refs)))
	case nil:
	default:
		panic(fmt.Sprintf("unexpected expression type %T", e))
	}
}
