// Package render hands compiled style props to the outside world: inline
// style attribute, structured documents (YAML, JSON), HTML element or user
// supplied text template.
package render

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"sprop/common"
	"sprop/css"
	"sprop/style"
)

// Options tune output. Zero value is usable.
type Options struct {
	Element  string          // html: element name, "div" when empty
	Sheet    *css.Stylesheet // html, template: companion breakpoint stylesheet, optional
	Template string          // template: text/template source
}

// Entry is a single formatted binding.
type Entry struct {
	Key        string `json:"key" yaml:"key"`
	Value      string `json:"value" yaml:"value"`
	Property   string `json:"property" yaml:"property"`
	Breakpoint string `json:"breakpoint,omitempty" yaml:"breakpoint,omitempty"`
}

// Problem is a formatted diagnostic.
type Problem struct {
	Kind       string `json:"kind" yaml:"kind"`
	Property   string `json:"property" yaml:"property"`
	Breakpoint string `json:"breakpoint,omitempty" yaml:"breakpoint,omitempty"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	Message    string `json:"message" yaml:"message"`
}

// Renderer writes compilation results in one of supported formats.
type Renderer struct {
	format common.OutputFormat
	opts   Options
	log    *zap.Logger
}

// New creates renderer for format.
func New(format common.OutputFormat, opts Options, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported output format %d", format)
	}
	if format == common.OutputFormatTemplate && opts.Template == "" {
		return nil, fmt.Errorf("output format %s requires template", format)
	}
	if opts.Element == "" {
		opts.Element = "div"
	}
	return &Renderer{format: format, opts: opts, log: log.Named("render")}, nil
}

// Format returns output format of renderer.
func (r *Renderer) Format() common.OutputFormat {
	return r.format
}

// Render writes result to w.
func (r *Renderer) Render(w io.Writer, res *style.Result) error {
	var err error
	switch r.format {
	case common.OutputFormatStyle:
		_, err = fmt.Fprintln(w, res.Properties.InlineStyle())
	case common.OutputFormatYaml:
		err = writeYAML(w, res)
	case common.OutputFormatJson:
		err = writeJSON(w, res)
	case common.OutputFormatHtml:
		err = writeHTML(w, res, r.opts)
	case common.OutputFormatTemplate:
		err = writeTemplate(w, res, r.opts)
	}
	if err != nil {
		return fmt.Errorf("unable to render %s output: %w", r.format, err)
	}
	r.log.Debug("Output rendered", zap.Stringer("format", r.format), zap.Int("bindings", res.Properties.Len()))
	return nil
}

// Entries formats all bindings of the result in order.
func Entries(res *style.Result) []Entry {
	bindings := res.Properties.Bindings()
	entries := make([]Entry, 0, len(bindings))
	for _, b := range bindings {
		entries = append(entries, Entry{
			Key:        b.Key,
			Value:      style.FormatExpr(b.Expr),
			Property:   string(b.Property),
			Breakpoint: b.Breakpoint,
		})
	}
	return entries
}

// Problems formats all diagnostics of the result.
func Problems(res *style.Result) []Problem {
	problems := make([]Problem, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		problems = append(problems, Problem{
			Kind:       d.Kind.String(),
			Property:   string(d.Property),
			Breakpoint: d.Breakpoint,
			Value:      d.Value,
			Message:    d.Err.Error(),
		})
	}
	return problems
}
