package style

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"

	"sprop/common"
)

func newTestCompiler(t *testing.T, opts ...Option) *Compiler {
	t.Helper()
	return NewCompiler(MustTables(DefaultDefinition()), zaptest.NewLogger(t), opts...)
}

func compile(t *testing.T, c *Compiler, props Props) *Result {
	t.Helper()
	res, err := c.Compile(props)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return res
}

func TestCompilePrecedence(t *testing.T) {
	c := newTestCompiler(t)

	res := compile(t, c, Props{
		"padding":            Single(Auto("400")),
		"paddingInlineStart": Single(Auto("200")),
	})

	want := map[string]string{
		"padding-inline-start": "var(--p-space-200)",
		"padding-inline-end":   "var(--p-space-400)",
		"padding-block-start":  "var(--p-space-400)",
		"padding-block-end":    "var(--p-space-400)",
	}
	if got := res.Properties.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %v, want %v", got, want)
	}
	wantKeys := []string{"padding-block-end", "padding-block-start", "padding-inline-end", "padding-inline-start"}
	if got := res.Properties.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Keys() = %v, want %v", got, wantKeys)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v", res.Diagnostics)
	}
}

func TestCompileNarrowAliasWins(t *testing.T) {
	c := newTestCompiler(t)

	res := compile(t, c, Props{
		"margin":       Single(Auto("100")),
		"marginInline": Single(Auto("auto")),
		"marginBlock":  Single(Raw("auto")),
	})

	want := map[string]string{
		"margin-inline-start": "var(--p-space-auto)",
		"margin-inline-end":   "var(--p-space-auto)",
		"margin-block-start":  "auto",
		"margin-block-end":    "auto",
	}
	if got := res.Properties.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %v, want %v", got, want)
	}
}

func TestCompileIdempotentForPhysicalProps(t *testing.T) {
	c := newTestCompiler(t)

	res := compile(t, c, Props{
		"display":             Single(Auto("flex")),
		"gridTemplateColumns": Single(Auto("1fr 1fr")),
		"zIndex":              Single(Auto("42px")),
		"color":               Single(Auto("text-secondary")),
	})

	want := map[string]string{
		"display":               "flex",
		"grid-template-columns": "1fr 1fr",
		"z-index":               "42px",
		"color":                 "var(--p-color-text-secondary)",
	}
	if got := res.Properties.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %v, want %v", got, want)
	}
}

func TestCompileResponsiveOrdering(t *testing.T) {
	c := newTestCompiler(t)

	res := compile(t, c, Props{
		"display": PerBreakpoint(map[string]Value{"xl": Auto("flex"), "sm": Auto("grid")}),
	})

	wantKeys := []string{"--pc-box-display-sm", "--pc-box-display-xl", "display"}
	if got := res.Properties.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Errorf("Keys() = %v, want %v", got, wantKeys)
	}
	want := "--pc-box-display-sm: var(--_sm) grid; " +
		"--pc-box-display-xl: var(--_xl) flex; " +
		"display: var(--pc-box-display-xl, var(--pc-box-display-sm, unset));"
	if got := res.Properties.InlineStyle(); got != want {
		t.Errorf("InlineStyle() =\n%s\nwant\n%s", got, want)
	}
}

func TestCompileResponsiveAlias(t *testing.T) {
	c := newTestCompiler(t)

	res := compile(t, c, Props{
		"paddingInline": PerBreakpoint(map[string]Value{"xs": Auto("200"), "lg": Auto("400")}),
	})

	for _, side := range []string{"start", "end"} {
		prop := "padding-inline-" + side
		want := map[string]string{
			"--pc-box-" + prop + "-xs": "var(--_xs) var(--p-space-200)",
			"--pc-box-" + prop + "-lg": "var(--_lg) var(--p-space-400)",
			prop:                       "var(--pc-box-" + prop + "-lg, var(--pc-box-" + prop + "-xs, unset))",
		}
		for key, value := range want {
			if got, ok := res.Properties.Value(key); !ok || got != value {
				t.Errorf("Value(%q) = %q, %v, want %q", key, got, ok, value)
			}
		}
	}
	if res.Properties.Len() != 6 {
		t.Errorf("Len() = %d, want 6", res.Properties.Len())
	}
}

func TestCompileDirectBeatsResponsiveAlias(t *testing.T) {
	c := newTestCompiler(t)

	res := compile(t, c, Props{
		"gap":    PerBreakpoint(map[string]Value{"md": Auto("400")}),
		"rowGap": Single(Auto("100")),
	})

	want := map[string]string{
		"--pc-box-column-gap-md": "var(--_md) var(--p-space-400)",
		"column-gap":             "var(--pc-box-column-gap-md, unset)",
		"row-gap":                "var(--p-space-100)",
	}
	if got := res.Properties.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %v, want %v", got, want)
	}
}

func TestCompileUnknownProperty(t *testing.T) {
	props := Props{"bogusProp": Single(Auto("x"))}

	t.Run("drop", func(t *testing.T) {
		res := compile(t, newTestCompiler(t), props)
		if res.Properties.Len() != 0 {
			t.Errorf("Len() = %d, want 0", res.Properties.Len())
		}
		if len(res.Diagnostics) != 1 {
			t.Fatalf("Diagnostics = %v, want 1", res.Diagnostics)
		}
		d := res.Diagnostics[0]
		if d.Kind != common.DiagnosticKindUnknownProperty || d.Property != "bogusProp" || d.Value != "x" {
			t.Errorf("diagnostic = %+v", d)
		}
		if !errors.Is(d.Err, ErrUnknownProperty) {
			t.Errorf("diagnostic error = %v", d.Err)
		}
	})

	t.Run("fail", func(t *testing.T) {
		c := newTestCompiler(t, WithPolicy(common.UnknownPolicyFail))
		res, err := c.Compile(Props{
			"bogusProp":   Single(Auto("x")),
			"anotherProp": Single(Auto("y")),
			"display":     Single(Auto("flex")),
		})
		if res != nil {
			t.Errorf("Compile() = %v, want nil", res)
		}
		if !errors.Is(err, ErrUnknownProperty) {
			t.Fatalf("Compile() error = %v, want ErrUnknownProperty", err)
		}
		for _, name := range []string{"bogusProp", "anotherProp"} {
			if !strings.Contains(err.Error(), name) {
				t.Errorf("Compile() error %q does not mention %s", err, name)
			}
		}
	})

	t.Run("rest survives", func(t *testing.T) {
		res := compile(t, newTestCompiler(t), Props{
			"bogusProp": Single(Auto("x")),
			"display":   Single(Auto("flex")),
		})
		if got, _ := res.Properties.Value("display"); got != "flex" {
			t.Errorf("display = %q, want flex", got)
		}
	})
}

func TestCompileModifierPropIsUnknown(t *testing.T) {
	res := compile(t, newTestCompiler(t), Props{
		"colorHover": PerBreakpoint(map[string]Value{"sm": Auto("red")}),
		"color":      Single(Auto("text")),
	})

	if got := res.Properties.Keys(); !reflect.DeepEqual(got, []string{"color"}) {
		t.Errorf("Keys() = %v", got)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != common.DiagnosticKindUnknownProperty {
		t.Errorf("Diagnostics = %v", res.Diagnostics)
	}
}

func TestCompileInvalidBreakpointIsLocal(t *testing.T) {
	res := compile(t, newTestCompiler(t), Props{
		"display":  PerBreakpoint(map[string]Value{"huge": Auto("flex")}),
		"position": Single(Auto("relative")),
	})

	if got := res.Properties.Keys(); !reflect.DeepEqual(got, []string{"position"}) {
		t.Errorf("Keys() = %v", got)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Kind != common.DiagnosticKindInvalidResponsiveValue {
		t.Errorf("Diagnostics = %v", res.Diagnostics)
	}
}

func TestCompileUnusableValueDoesNotWin(t *testing.T) {
	tests := []struct {
		name    string
		inline  ResponsiveValue
		wantBP  string
		wantErr error
	}{
		{
			name:    "only unknown breakpoints",
			inline:  PerBreakpoint(map[string]Value{"huge": Auto("200")}),
			wantBP:  "huge",
			wantErr: ErrInvalidResponsiveValue,
		},
		{
			name:    "blank value",
			inline:  Single(Auto("")),
			wantErr: ErrEmptyValue,
		},
		{
			name:    "blank breakpoint entry",
			inline:  PerBreakpoint(map[string]Value{"md": Auto("  ")}),
			wantBP:  "md",
			wantErr: ErrEmptyValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := compile(t, newTestCompiler(t), Props{
				"padding":            Single(Auto("400")),
				"paddingInlineStart": tt.inline,
			})

			want := map[string]string{
				"padding-inline-start": "var(--p-space-400)",
				"padding-inline-end":   "var(--p-space-400)",
				"padding-block-start":  "var(--p-space-400)",
				"padding-block-end":    "var(--p-space-400)",
			}
			if got := res.Properties.Strings(); !reflect.DeepEqual(got, want) {
				t.Errorf("Compile() = %v, want %v", got, want)
			}
			if len(res.Diagnostics) != 1 {
				t.Fatalf("Diagnostics = %v, want 1", res.Diagnostics)
			}
			d := res.Diagnostics[0]
			if d.Kind != common.DiagnosticKindInvalidResponsiveValue || d.Property != "paddingInlineStart" || d.Breakpoint != tt.wantBP {
				t.Errorf("diagnostic = %+v", d)
			}
			if !errors.Is(d.Err, tt.wantErr) {
				t.Errorf("diagnostic error = %v, want %v", d.Err, tt.wantErr)
			}
		})
	}
}

func TestCompilePartiallyUsableMapping(t *testing.T) {
	res := compile(t, newTestCompiler(t), Props{
		"padding":            Single(Auto("400")),
		"paddingInlineStart": PerBreakpoint(map[string]Value{"huge": Auto("200"), "md": Auto("100")}),
	})

	if got, _ := res.Properties.Value("padding-inline-start"); got != "var(--pc-box-padding-inline-start-md, unset)" {
		t.Errorf("padding-inline-start = %q", got)
	}
	if _, ok := res.Properties.Value("--pc-box-padding-inline-start-huge"); ok {
		t.Error("binding for unknown breakpoint emitted")
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Breakpoint != "huge" {
		t.Errorf("Diagnostics = %v", res.Diagnostics)
	}
}

func TestCompileKnownTokens(t *testing.T) {
	c := newTestCompiler(t, WithKnownTokens("p-space-400", "p-space-200"))

	res := compile(t, c, Props{
		"paddingInline": Single(Auto("400")),
		"gap":           PerBreakpoint(map[string]Value{"sm": Auto("200"), "md": Auto("999")}),
	})

	if len(res.Diagnostics) != 2 {
		t.Fatalf("Diagnostics = %v, want 2", res.Diagnostics)
	}
	for _, d := range res.Diagnostics {
		if d.Kind != common.DiagnosticKindUnknownToken || d.Breakpoint != "md" || d.Value != "999" {
			t.Errorf("diagnostic = %+v", d)
		}
		if !errors.Is(d.Err, ErrUnknownToken) {
			t.Errorf("diagnostic error = %v", d.Err)
		}
	}
	if got, _ := res.Properties.Value("--pc-box-row-gap-md"); got != "var(--_md) var(--p-space-999)" {
		t.Errorf("unknown token must still resolve, got %q", got)
	}
}

func TestCompileDefaults(t *testing.T) {
	def := DefaultDefinition()
	def.Defaults = Props{
		"padding": Single(Auto("200")),
		"display": Single(Auto("block")),
	}
	c := NewCompiler(MustTables(def), zaptest.NewLogger(t), WithTrace(true))

	res := compile(t, c, Props{
		"paddingInline": Single(Auto("400")),
		"display":       PerBreakpoint(map[string]Value{"md": Auto("flex")}),
	})

	want := map[string]string{
		"padding-inline-start": "var(--p-space-400)",
		"padding-inline-end":   "var(--p-space-400)",
		"padding-block-start":  "var(--p-space-200)",
		"padding-block-end":    "var(--p-space-200)",
		"--pc-box-display-md":  "var(--_md) flex",
		"display":              "var(--pc-box-display-md, unset)",
	}
	if got := res.Properties.Strings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Compile() = %v, want %v", got, want)
	}
	if got := res.Trace.Count("DEFAULT"); got != 2 {
		t.Errorf("Trace DEFAULT count = %d, want 2", got)
	}

	empty := compile(t, c, nil)
	if empty.Properties.Len() != 5 {
		t.Errorf("defaults only: Len() = %d, want 5", empty.Properties.Len())
	}
}

func TestCompileTrace(t *testing.T) {
	res := compile(t, newTestCompiler(t, WithTrace(true)), Props{
		"padding":   Single(Auto("400")),
		"bogusProp": Single(Auto("x")),
	})

	counts := map[string]int{"EXPAND": 1, "UNKNOWN": 1, "WIN": 4, "BIND": 4, "DIAG": 1}
	for op, want := range counts {
		if got := res.Trace.Count(op); got != want {
			t.Errorf("Trace.Count(%s) = %d, want %d", op, got, want)
		}
	}
	text := res.Trace.String()
	for _, s := range []string{"summary:", "EXPAND: padding", "paddingBlockEnd <- padding (1)", "padding-block-end: var(--p-space-400)"} {
		if !strings.Contains(text, s) {
			t.Errorf("Trace.String() does not contain %q:\n%s", s, text)
		}
	}

	untraced := compile(t, newTestCompiler(t), Props{"padding": Single(Auto("400"))})
	if untraced.Trace != nil || untraced.Trace.String() != "" {
		t.Error("trace recorded while disabled")
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	c := newTestCompiler(t)
	props := Props{
		"padding":            PerBreakpoint(map[string]Value{"xs": Auto("100"), "md": Auto("300"), "xl": Auto("500")}),
		"paddingInlineStart": Single(Auto("0")),
		"gap":                Single(Auto("200")),
		"overflow":           Single(Auto("hidden")),
		"borderRadius":       PerBreakpoint(map[string]Value{"sm": Auto("100")}),
		"display":            Single(Auto("grid")),
	}

	first := compile(t, c, props).Properties.Bindings()

	var wg sync.WaitGroup
	results := make([][]Binding, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.Compile(props)
			if err != nil {
				t.Errorf("Compile() error = %v", err)
				return
			}
			results[i] = res.Properties.Bindings()
		}()
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, first) {
			t.Errorf("run %d differs from first run", i)
		}
	}
}
