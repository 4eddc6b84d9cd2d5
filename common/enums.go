// Enums shared by configuration, engine and command line. Kept separate so
// the engine does not have to import configuration package.
package common

//go:generate go tool go-enum -f=$GOFILE --marshal --names

// What to do with props which are neither physical properties nor known
// aliases.
// ENUM(drop, fail)
type UnknownPolicy int

// Strict reports whether unknown properties abort compilation.
func (p UnknownPolicy) Strict() bool {
	return p == UnknownPolicyFail
}

// Representation of resolved property map handed to the caller.
// ENUM(style, yaml, json, html, template)
type OutputFormat int

// Ext returns file extension suitable for the format.
func (o OutputFormat) Ext() string {
	switch o {
	case OutputFormatStyle:
		return ".css"
	case OutputFormatYaml:
		return ".yaml"
	case OutputFormatJson:
		return ".json"
	case OutputFormatHtml:
		return ".html"
	case OutputFormatTemplate:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported output format requested")
	}
}

// Kind of non-fatal problem reported during compilation.
// ENUM(unknownProperty, invalidResponsiveValue, unknownToken)
type DiagnosticKind int
