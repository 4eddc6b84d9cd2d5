package render

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"sprop/style"
)

// Values is the data available to output templates.
type Values struct {
	Style       string            // inline style attribute value
	Properties  []Entry           // bindings in order
	Map         map[string]string // bindings by key
	Diagnostics []Problem
	Sheet       string // breakpoint stylesheet, empty when not requested
}

func writeTemplate(w io.Writer, res *style.Result, opts Options) error {
	tmpl, err := template.New("output").Funcs(sprig.FuncMap()).Parse(opts.Template)
	if err != nil {
		return fmt.Errorf("unable to parse output template: %w", err)
	}

	values := Values{
		Style:       res.Properties.InlineStyle(),
		Properties:  Entries(res),
		Map:         res.Properties.Strings(),
		Diagnostics: Problems(res),
	}
	if opts.Sheet != nil {
		values.Sheet = opts.Sheet.String()
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}
