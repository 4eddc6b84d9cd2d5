package css

import (
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestParseRulesAndDeclarations(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))
	sheet := p.Parse([]byte(`
		.box { display: flex; padding: 1rem  2rem; }
		h1, h2 { color: red; }
	`), "inline")

	rules := sheet.Rules()
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d: %+v", len(rules), rules)
	}
	if rules[0].Selector != ".box" {
		t.Errorf("first selector = %q, want .box", rules[0].Selector)
	}
	if v, _ := rules[0].Get("padding"); v != "1rem 2rem" {
		t.Errorf("padding = %q, want %q", v, "1rem 2rem")
	}
	if rules[1].Selector != "h1" || rules[2].Selector != "h2" {
		t.Errorf("grouped selectors not split: %q, %q", rules[1].Selector, rules[2].Selector)
	}
	if v, _ := rules[2].Get("color"); v != "red" {
		t.Errorf("h2 color = %q, want red", v)
	}
}

func TestParseMediaBlocks(t *testing.T) {
	p := NewParser(nil)
	sheet := p.Parse([]byte(`
		@media (min-width: 48em) {
			:root { --p-space-400: 1.25rem; }
		}
	`))

	blocks := sheet.MediaBlocks()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 media block, got %d", len(blocks))
	}
	if blocks[0].Query.Raw != "(min-width: 48em)" {
		t.Errorf("query = %q", blocks[0].Query.Raw)
	}
	if len(blocks[0].Rules) != 1 || blocks[0].Rules[0].Selector != ":root" {
		t.Fatalf("unexpected rules in media block: %+v", blocks[0].Rules)
	}
}

func TestParseMediaQueryText(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "(min-width: 48em)", want: "(min-width: 48em)"},
		{query: "(min-width:48em)", want: "(min-width: 48em)"},
		{query: "screen and (min-width:  30.625em)", want: "screen and (min-width: 30.625em)"},
		{query: "(min-width: 30em),print", want: "(min-width: 30em), print"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			sheet := NewParser(nil).Parse([]byte("@media " + tt.query + " { a { color: red; } }"))
			blocks := sheet.MediaBlocks()
			if len(blocks) != 1 {
				t.Fatalf("expected 1 media block, got %d", len(blocks))
			}
			if got := blocks[0].Query.Raw; got != tt.want {
				t.Errorf("query = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSkipsUnsupportedAtRules(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))
	sheet := p.Parse([]byte(`
		@font-face { font-family: "X"; src: url(x.woff2); }
		@import url("other.css");
		a { color: blue; }
	`))

	if len(sheet.Rules()) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(sheet.Rules()))
	}
	if len(sheet.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", sheet.Warnings)
	}
}

func TestCustomProperties(t *testing.T) {
	p := NewParser(zaptest.NewLogger(t))
	sheet := p.Parse([]byte(`
		:root {
			--p-space-200: 0.5rem;
			--p-space-400: 1rem;
			color: black;
		}
		@media (min-width: 48em) {
			:root { --p-space-400: 1.25rem; }
		}
	`))

	props := sheet.CustomProperties()
	if len(props) != 2 {
		t.Fatalf("expected 2 custom properties, got %v", props)
	}
	if props["p-space-200"] != "0.5rem" {
		t.Errorf("p-space-200 = %q", props["p-space-200"])
	}
	if props["p-space-400"] != "1.25rem" {
		t.Errorf("p-space-400 = %q, want value from media block", props["p-space-400"])
	}
}
