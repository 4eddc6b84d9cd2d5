// Package css is a small CSS model used around style-prop compilation.
//
// It is not a general purpose CSS toolkit. Two jobs are supported:
//
//   - generation of companion stylesheets (plain rules and @media blocks with
//     ordered declarations), for example breakpoint activation toggles;
//   - reading token stylesheets to learn which custom properties are
//     declared, so references to undeclared tokens could be reported.
//
// # Usage
//
//	parser := css.NewParser(logger)
//	sheet := parser.Parse(cssBytes, "tokens.css")
//	known := sheet.CustomProperties()
//
//	var out css.Stylesheet
//	out.AddRule(css.Rule{Selector: ":root", Declarations: decls})
//	out.WriteTo(os.Stdout)
package css
