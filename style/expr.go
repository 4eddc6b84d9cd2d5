package style

// Expr is a resolved output value. Expressions are plain data, turning them
// into CSS text is done by FormatExpr only.
type Expr interface {
	isExpr()
}

// Literal is a value used verbatim.
type Literal struct {
	Text string
}

// TokenRef is an indirect reference to design token custom property.
type TokenRef struct {
	Group string // token group, e.g. "space"
	Step  string // scale step, e.g. "400"
	Name  string // custom property name without leading "--", e.g. "p-space-400"
}

// Conditional is an intermediate binding active only while breakpoint toggle
// is switched on.
type Conditional struct {
	Breakpoint string
	Toggle     string // toggle custom property, e.g. "--_sm"
	Value      Expr
}

// FallbackChain references intermediate bindings in order, first active one
// wins, Terminal is used when none is active.
type FallbackChain struct {
	Refs     []string
	Terminal string
}

func (Literal) isExpr()       {}
func (TokenRef) isExpr()      {}
func (Conditional) isExpr()   {}
func (FallbackChain) isExpr() {}

// Terminal value of every fallback chain. Property falls through to inherited
// or initial value as if it was never set.
const unsetTerminal = "unset"

// Binding is a single entry of resolved map.
type Binding struct {
	Key        string       // output key: CSS property or custom property
	Property   PropertyName // physical property binding belongs to
	Breakpoint string       // set for intermediate bindings only
	Expr       Expr
}

// IsIntermediate reports whether binding is breakpoint scoped custom property.
func (b Binding) IsIntermediate() bool {
	return b.Breakpoint != ""
}
