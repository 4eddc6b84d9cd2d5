package render

import (
	"io"
	"strings"

	"github.com/beevik/etree"

	"sprop/style"
)

// writeHTML writes element carrying compiled props in its style attribute.
// Breakpoint sheet, when given, goes into nested <style> element.
func writeHTML(w io.Writer, res *style.Result, opts Options) error {
	doc := etree.NewDocument()

	elem := doc.CreateElement(opts.Element)
	if res.Properties.Len() > 0 {
		elem.CreateAttr("style", res.Properties.InlineStyle())
	}
	if opts.Sheet != nil && len(opts.Sheet.Items) > 0 {
		sheet := elem.CreateElement("style")
		sheet.SetText("\n" + opts.Sheet.String())
	}
	for _, d := range res.Diagnostics {
		elem.CreateComment(commentText(d.String()))
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

// commentText makes text usable as HTML comment, which may not contain "--".
func commentText(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	return " " + s + " "
}
