package style

import (
	"errors"
	"fmt"

	"sprop/common"
)

var (
	// ErrUnknownProperty is reported for props which are neither physical
	// properties nor known aliases.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrSpecificityConflict means two sources target the same physical
	// property with the same rank. Tables are corrupted, always fatal.
	ErrSpecificityConflict = fmt.Errorf("%w: specificity conflict", ErrInvalidDefinition)
	// ErrInvalidResponsiveValue is reported for prop values or responsive
	// entries which cannot produce a binding.
	ErrInvalidResponsiveValue = errors.New("invalid responsive value")
	// ErrEmptyValue accompanies ErrInvalidResponsiveValue for blank values.
	ErrEmptyValue = errors.New("empty value")
	// ErrUnknownToken is reported when token reference does not match any
	// known token (only when known tokens were supplied).
	ErrUnknownToken = errors.New("unknown token")
	// ErrInvalidDefinition is returned when static tables cannot be built.
	ErrInvalidDefinition = errors.New("invalid definition")
	// ErrBindingCollision means two bindings were assembled under the same key.
	ErrBindingCollision = errors.New("binding collision")
)

// PropertyError ties resolution failure to the property it happened on.
type PropertyError struct {
	Property   PropertyName
	Breakpoint string
	Err        error
}

func (e *PropertyError) Error() string {
	if e.Breakpoint != "" {
		return fmt.Sprintf("%s [%s]: %v", e.Property, e.Breakpoint, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Property, e.Err)
}

func (e *PropertyError) Unwrap() error {
	return e.Err
}

// Diagnostic is a non-fatal problem found during compilation. Offending
// input is dropped, the rest of compilation continues.
type Diagnostic struct {
	Kind       common.DiagnosticKind
	Property   PropertyName
	Breakpoint string
	Value      string
	Err        error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %v", d.Kind, d.Err)
}

func newDiagnostic(kind common.DiagnosticKind, prop PropertyName, bp, value string, err error) Diagnostic {
	return Diagnostic{
		Kind:       kind,
		Property:   prop,
		Breakpoint: bp,
		Value:      value,
		Err:        &PropertyError{Property: prop, Breakpoint: bp, Err: err},
	}
}
