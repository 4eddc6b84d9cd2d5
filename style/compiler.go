package style

import (
	"maps"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sprop/common"
)

// Compiler turns props into resolved map running them through alias
// expansion, precedence merge, token resolution, responsive compilation and
// assembly. Compiler holds only immutable state and may be used from many
// goroutines at once.
type Compiler struct {
	tables *Tables
	log    *zap.Logger
	policy common.UnknownPolicy
	known  map[string]bool // nil when token names are not checked
	trace  bool
}

// Option configures Compiler.
type Option func(*Compiler)

// WithPolicy sets what happens to unknown properties.
func WithPolicy(policy common.UnknownPolicy) Option {
	return func(c *Compiler) {
		c.policy = policy
	}
}

// WithKnownTokens enables checking token references against set of defined
// token custom properties (names without leading "--"). References to
// undefined tokens are still emitted but reported.
func WithKnownTokens(names ...string) Option {
	return func(c *Compiler) {
		c.known = make(map[string]bool, len(names))
		for _, name := range names {
			c.known[name] = true
		}
	}
}

// WithTrace makes every compilation record its trace.
func WithTrace(enabled bool) Option {
	return func(c *Compiler) {
		c.trace = enabled
	}
}

// NewCompiler creates compiler working against tables.
func NewCompiler(tables *Tables, log *zap.Logger, opts ...Option) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	c := &Compiler{
		tables: tables,
		log:    log.Named("compiler"),
		policy: common.UnknownPolicyDrop,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tables returns tables compiler works against.
func (c *Compiler) Tables() *Tables {
	return c.tables
}

// Policy returns unknown property policy.
func (c *Compiler) Policy() common.UnknownPolicy {
	return c.policy
}

// Result is the outcome of a single compilation.
type Result struct {
	Properties  *ResolvedMap
	Diagnostics []Diagnostic
	Trace       *Trace // nil unless tracing is enabled
}

// Compile resolves props. Problems local to a single prop or breakpoint
// entry are reported as diagnostics and do not stop compilation, except for
// unknown properties under strict policy. Specificity conflicts are always
// fatal.
func (c *Compiler) Compile(props Props) (*Result, error) {
	res := &Result{}
	if c.trace {
		res.Trace = newTrace()
	}

	var triples []Triple
	var unknown []error
	for _, name := range props.Names() {
		value := props[name]
		if _, known := c.tables.Lookup(name); known {
			// unusable values must not compete for precedence
			var (
				diags  []Diagnostic
				usable bool
			)
			value, diags, usable = c.tables.Sanitize(name, value)
			for _, d := range diags {
				res.addDiagnostic(d)
			}
			if !usable {
				continue
			}
		}
		expanded, err := c.tables.Expand(name, value)
		if err != nil {
			unknown = append(unknown, err)
			res.Trace.traceUnknown(err)
			continue
		}
		res.Trace.traceExpand(name, value, expanded)
		triples = append(triples, expanded...)
	}

	if len(unknown) > 0 {
		if c.policy.Strict() {
			return nil, multierr.Combine(unknown...)
		}
		for _, err := range unknown {
			name := err.(*PropertyError).Property
			res.addDiagnostic(newDiagnostic(common.DiagnosticKindUnknownProperty, name, "", props[name].String(), ErrUnknownProperty))
		}
	}

	winners, err := Merge(triples)
	if err != nil {
		return nil, err
	}
	if err := c.applyDefaults(winners, res.Trace); err != nil {
		return nil, err
	}

	groups := make(map[PropertyName][]Binding, len(winners))
	for _, name := range slices.Sorted(maps.Keys(winners)) {
		win := winners[name]
		res.Trace.traceWinner(win)

		bindings, diags := c.tables.CompileResponsive(name, win.Value)
		diags = append(diags, tokenDiagnostics(bindings, c.known)...)
		for _, d := range diags {
			res.addDiagnostic(d)
		}
		if len(bindings) == 0 {
			continue
		}
		res.Trace.traceBindings(name, bindings)
		groups[name] = bindings
	}

	if res.Properties, err = assemble(groups); err != nil {
		return nil, err
	}

	for _, d := range res.Diagnostics {
		c.log.Warn("Style prop dropped or degraded",
			zap.Stringer("kind", d.Kind),
			zap.String("property", string(d.Property)),
			zap.String("breakpoint", d.Breakpoint),
			zap.String("value", d.Value),
			zap.Error(d.Err))
	}
	c.log.Debug("Props compiled",
		zap.Int("props", len(props)),
		zap.Int("triples", len(triples)),
		zap.Int("bindings", res.Properties.Len()),
		zap.Int("diagnostics", len(res.Diagnostics)))

	return res, nil
}

// applyDefaults fills physical properties left without value. Defaults go
// through the same expansion and merge as caller props, but any caller value
// for a physical property beats any default for it.
func (c *Compiler) applyDefaults(winners map[PropertyName]Triple, trace *Trace) error {
	if len(c.tables.defaults) == 0 {
		return nil
	}
	var triples []Triple
	for _, name := range c.tables.defaults.Names() {
		expanded, err := c.tables.Expand(name, c.tables.defaults[name])
		if err != nil {
			// defaults are checked when tables are built
			return err
		}
		triples = append(triples, expanded...)
	}
	defaults, err := Merge(triples)
	if err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(defaults)) {
		if _, ok := winners[name]; ok {
			continue
		}
		winners[name] = defaults[name]
		trace.traceDefault(defaults[name])
	}
	return nil
}

func (r *Result) addDiagnostic(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	r.Trace.traceDiagnostic(d)
}
