// Package style compiles responsive, aliased style props into flat map of
// CSS properties and custom properties.
//
// Compilation runs in stages: aliases are expanded into physical properties
// ranked by specificity, the highest rank wins per physical property, scale
// steps are turned into token references and per breakpoint values become
// chains of breakpoint scoped custom properties. All static knowledge lives
// in Tables which are built once and shared.
package style
