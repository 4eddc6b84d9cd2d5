package style

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestDefaultTables(t *testing.T) {
	tables, err := NewTables(DefaultDefinition())
	if err != nil {
		t.Fatalf("NewTables() error = %v", err)
	}

	if tables.Namespace() != DefaultNamespace {
		t.Errorf("Namespace() = %q", tables.Namespace())
	}
	if r, ok := tables.Rank("xs"); !ok || r != 0 {
		t.Errorf("Rank(xs) = %d, %v", r, ok)
	}
	if r, ok := tables.Rank("xl"); !ok || r != 4 {
		t.Errorf("Rank(xl) = %d, %v", r, ok)
	}
	if _, ok := tables.Rank("xxl"); ok {
		t.Error("Rank(xxl) found")
	}

	p, ok := tables.Lookup("padding")
	if !ok || !p.IsAlias() || len(p.Targets()) != 4 {
		t.Errorf("Lookup(padding) = %#v, %v", p, ok)
	}
	p, ok = tables.Lookup("paddingInlineStart")
	if !ok || p.IsAlias() {
		t.Errorf("Lookup(paddingInlineStart) = %#v, %v", p, ok)
	}
	if g, ok := tables.TokenGroup("paddingInlineStart"); !ok || g != "space" {
		t.Errorf("TokenGroup(paddingInlineStart) = %q, %v", g, ok)
	}
	if _, ok := tables.TokenGroup("display"); ok {
		t.Error("display must not be tokenized")
	}

	aliases := tables.AliasNames()
	for _, name := range []PropertyName{"padding", "paddingBlock", "gap", "overflow", "borderRadius"} {
		if !contains(aliases, name) {
			t.Errorf("AliasNames() misses %q", name)
		}
	}
	physical := tables.PhysicalNames()
	for _, name := range []PropertyName{"display", "paddingBlockEnd", "rowGap", "borderEndEndRadius"} {
		if !contains(physical, name) {
			t.Errorf("PhysicalNames() misses %q", name)
		}
	}
}

func contains(names []PropertyName, name PropertyName) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func TestTablesAreIsolatedFromDefinition(t *testing.T) {
	def := DefaultDefinition()
	tables := MustTables(def)

	def.Breakpoints[0].Alias = "changed"
	def.TokenGroups["display"] = "display"

	if _, ok := tables.Rank("xs"); !ok {
		t.Error("tables changed together with definition")
	}
	if _, ok := tables.TokenGroup("display"); ok {
		t.Error("tables changed together with definition")
	}

	bps := tables.Breakpoints()
	bps[0].Alias = "changed"
	if !reflect.DeepEqual(tables.Breakpoints(), DefaultBreakpoints()) {
		t.Error("Breakpoints() exposes internal slice")
	}
}

func TestNewTablesValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(d *Definition)
		wantMsg []string
		wantErr error
	}{
		{
			name:    "no namespace",
			modify:  func(d *Definition) { d.Namespace = "" },
			wantMsg: []string{"namespace is required"},
		},
		{
			name:    "no breakpoints",
			modify:  func(d *Definition) { d.Breakpoints = nil },
			wantMsg: []string{"at least one breakpoint is required"},
		},
		{
			name: "duplicate breakpoint",
			modify: func(d *Definition) {
				d.Breakpoints = append(d.Breakpoints, Breakpoint{Alias: "sm", Condition: "(min-width: 1px)"})
			},
			wantMsg: []string{`breakpoint "sm" defined more than once`},
		},
		{
			name: "alias shadows physical",
			modify: func(d *Definition) {
				d.Aliases = append(d.Aliases, AliasEntry{
					Alias:   "display",
					Targets: []Target{{Physical: "order", Specificity: 3}},
				})
			},
			wantMsg: []string{`"display" is both alias and physical property`},
		},
		{
			name: "reserved specificity",
			modify: func(d *Definition) {
				d.Aliases = append(d.Aliases, AliasEntry{
					Alias:   "gutter",
					Targets: []Target{{Physical: "rowGap", Specificity: DirectSpecificity}},
				})
			},
			wantMsg: []string{`alias "gutter" target "rowGap" has specificity`},
		},
		{
			name: "equal specificity across aliases",
			modify: func(d *Definition) {
				d.Aliases = append(d.Aliases, AliasEntry{
					Alias:   "gutter",
					Targets: []Target{{Physical: "rowGap", Specificity: SpecificityAll}},
				})
			},
			wantMsg: []string{`aliases "gap" and "gutter" target "rowGap" with the same specificity 1`},
			wantErr: ErrSpecificityConflict,
		},
		{
			name: "several problems at once",
			modify: func(d *Definition) {
				d.Namespace = ""
				d.Aliases = append(d.Aliases, AliasEntry{Alias: "empty"})
				d.TokenGroups["order"] = ""
			},
			wantMsg: []string{"namespace is required", `alias "empty" has no targets`, `token group for "order" is empty`},
		},
		{
			name: "default for unknown breakpoint",
			modify: func(d *Definition) {
				d.Defaults = Props{"display": PerBreakpoint(map[string]Value{"huge": Auto("flex")})}
			},
			wantMsg: []string{`default for "display" uses unknown breakpoint "huge"`},
		},
		{
			name: "blank defaults",
			modify: func(d *Definition) {
				d.Defaults = Props{
					"display": Single(Auto(" ")),
					"padding": PerBreakpoint(map[string]Value{"sm": Auto("")}),
				}
			},
			wantMsg: []string{`default for "display" is empty`, `default for "padding" is empty at breakpoint "sm"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := DefaultDefinition()
			tt.modify(def)

			tables, err := NewTables(def)
			if tables != nil {
				t.Error("NewTables() returned tables for invalid definition")
			}
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Fatalf("NewTables() error = %v, want ErrInvalidDefinition", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTables() error = %v, want %v", err, tt.wantErr)
			}
			if got := len(multierr.Errors(err)); got != len(tt.wantMsg) {
				t.Errorf("NewTables() returned %d errors, want %d: %v", got, len(tt.wantMsg), err)
			}
			for _, msg := range tt.wantMsg {
				if !strings.Contains(err.Error(), msg) {
					t.Errorf("NewTables() error %q does not mention %q", err, msg)
				}
			}
		})
	}
}

func TestMustTablesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustTables() did not panic")
		}
	}()
	MustTables(&Definition{})
}
