package render

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap/zaptest"
	yaml "gopkg.in/yaml.v3"

	"sprop/common"
	"sprop/style"
)

func compileTest(t *testing.T) (*style.Tables, *style.Result) {
	t.Helper()
	tables := style.MustTables(style.DefaultDefinition())
	res, err := style.NewCompiler(tables, zaptest.NewLogger(t)).Compile(style.Props{
		"display":   style.PerBreakpoint(map[string]style.Value{"sm": style.Auto("grid"), "xl": style.Auto("flex")}),
		"rowGap":    style.Single(style.Auto("400")),
		"bogusProp": style.Single(style.Auto("x")),
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return tables, res
}

func render(t *testing.T, format common.OutputFormat, opts Options, res *style.Result) string {
	t.Helper()
	r, err := New(format, opts, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, res); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

const wantStyle = "--pc-box-display-sm: var(--_sm) grid; " +
	"--pc-box-display-xl: var(--_xl) flex; " +
	"display: var(--pc-box-display-xl, var(--pc-box-display-sm, unset)); " +
	"row-gap: var(--p-space-400);"

func TestRenderStyle(t *testing.T) {
	_, res := compileTest(t)
	if got := render(t, common.OutputFormatStyle, Options{}, res); got != wantStyle+"\n" {
		t.Errorf("Render() = %q, want %q", got, wantStyle+"\n")
	}
}

type document struct {
	Properties  map[string]string `json:"properties" yaml:"properties"`
	Diagnostics []Problem         `json:"diagnostics" yaml:"diagnostics"`
}

func wantDocument() document {
	return document{
		Properties: map[string]string{
			"--pc-box-display-sm": "var(--_sm) grid",
			"--pc-box-display-xl": "var(--_xl) flex",
			"display":             "var(--pc-box-display-xl, var(--pc-box-display-sm, unset))",
			"row-gap":             "var(--p-space-400)",
		},
		Diagnostics: []Problem{{
			Kind:     "unknownProperty",
			Property: "bogusProp",
			Value:    "x",
			Message:  "bogusProp: unknown property",
		}},
	}
}

func TestRenderYAML(t *testing.T) {
	_, res := compileTest(t)
	out := render(t, common.OutputFormatYaml, Options{}, res)

	var got document
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, out)
	}
	if !reflect.DeepEqual(got, wantDocument()) {
		t.Errorf("Render() =\n%s", out)
	}
	if !strings.HasPrefix(out, "properties:\n  --pc-box-display-sm: ") {
		t.Errorf("Render() does not keep binding order:\n%s", out)
	}
}

func TestRenderJSON(t *testing.T) {
	_, res := compileTest(t)
	out := render(t, common.OutputFormatJson, Options{}, res)

	var got document
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v\n%s", err, out)
	}
	if !reflect.DeepEqual(got, wantDocument()) {
		t.Errorf("Render() =\n%s", out)
	}
	sm := strings.Index(out, `"--pc-box-display-sm"`)
	gap := strings.Index(out, `"row-gap"`)
	if sm < 0 || gap < 0 || sm > gap {
		t.Errorf("Render() does not keep binding order:\n%s", out)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	res, err := style.NewCompiler(style.MustTables(style.DefaultDefinition()), nil).Compile(nil)
	if err != nil {
		t.Fatal(err)
	}
	out := render(t, common.OutputFormatJson, Options{}, res)
	if out != "{\n  \"properties\": {}\n}\n" {
		t.Errorf("Render() = %q", out)
	}
}

func TestRenderHTML(t *testing.T) {
	tables, res := compileTest(t)
	out := render(t, common.OutputFormatHtml, Options{Element: "section", Sheet: tables.BreakpointSheet("")}, res)

	doc := etree.NewDocument()
	if err := doc.ReadFromString(out); err != nil {
		t.Fatalf("ReadFromString() error = %v\n%s", err, out)
	}
	elem := doc.FindElement("section")
	if elem == nil {
		t.Fatalf("no section element:\n%s", out)
	}
	if got := elem.SelectAttrValue("style", ""); got != wantStyle {
		t.Errorf("style = %q, want %q", got, wantStyle)
	}
	sheet := elem.FindElement("style")
	if sheet == nil || !strings.Contains(sheet.Text(), "@media (min-width: 90em)") {
		t.Errorf("style element missing or incomplete:\n%s", out)
	}
	if !strings.Contains(out, "<!-- unknownProperty: bogusProp: unknown property -->") {
		t.Errorf("diagnostic comment missing:\n%s", out)
	}
}

func TestRenderHTMLTokenDiagnostic(t *testing.T) {
	tables := style.MustTables(style.DefaultDefinition())
	res, err := style.NewCompiler(tables, zaptest.NewLogger(t), style.WithKnownTokens("p-space-400")).Compile(style.Props{
		"rowGap": style.Single(style.Auto("999")),
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	out := render(t, common.OutputFormatHtml, Options{Element: "div"}, res)

	doc := etree.NewDocument()
	if err := doc.ReadFromString(out); err != nil {
		t.Fatalf("ReadFromString() error = %v\n%s", err, out)
	}
	var comments []string
	for _, tok := range doc.FindElement("div").Child {
		if c, ok := tok.(*etree.Comment); ok {
			comments = append(comments, c.Data)
		}
	}
	if len(comments) != 1 {
		t.Fatalf("comments = %q, want 1\n%s", comments, out)
	}
	if strings.Contains(comments[0], "--") || !strings.Contains(comments[0], "p-space-999") {
		t.Errorf("comment = %q", comments[0])
	}
}

func TestCommentText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: " plain "},
		{in: "--p-space-999", want: " - -p-space-999 "},
		{in: "a---b", want: " a- - -b "},
	}
	for _, tt := range tests {
		if got := commentText(tt.in); got != tt.want {
			t.Errorf("commentText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderTemplate(t *testing.T) {
	_, res := compileTest(t)
	tmpl := `{{ range .Properties }}{{ if not .Breakpoint }}{{ .Key | upper }}={{ .Value }}
{{ end }}{{ end }}{{ len .Diagnostics }} problem(s), gap {{ index .Map "row-gap" | quote }}`

	got := render(t, common.OutputFormatTemplate, Options{Template: tmpl}, res)
	want := "DISPLAY=var(--pc-box-display-xl, var(--pc-box-display-sm, unset))\n" +
		"ROW-GAP=var(--p-space-400)\n" +
		`1 problem(s), gap "var(--p-space-400)"`
	if got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(common.OutputFormatTemplate, Options{}, nil); err == nil {
		t.Error("New() without template succeeded")
	}
	if _, err := New(common.OutputFormat(42), Options{}, nil); err == nil {
		t.Error("New() with bad format succeeded")
	}

	r, err := New(common.OutputFormatTemplate, Options{Template: "{{ .Missing "}, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, res := compileTest(t)
	if err := r.Render(&bytes.Buffer{}, res); err == nil || !strings.Contains(err.Error(), "unable to parse output template") {
		t.Errorf("Render() error = %v", err)
	}
}
