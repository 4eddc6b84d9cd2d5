package state

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.uber.org/zap"

	"sprop/css"
	"sprop/style"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
	}
}

// PrepareEngine builds property tables and compiler from engine
// configuration. When token stylesheet is configured its custom properties
// become the set of known tokens. Tracing is always on when debug report is
// being collected.
func (e *LocalEnv) PrepareEngine() error {
	if e.Cfg == nil {
		return errors.New("configuration is not loaded")
	}

	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("engine")

	conf := &e.Cfg.Engine

	def, err := conf.Definition()
	if err != nil {
		return fmt.Errorf("unable to load property tables definition: %w", err)
	}
	if conf.DefinitionPath != "" {
		e.Rpt.Store("engine/definition-"+filepath.Base(conf.DefinitionPath), conf.DefinitionPath)
	}

	tables, err := style.NewTables(def)
	if err != nil {
		return fmt.Errorf("unable to build property tables: %w", err)
	}

	opts := []style.Option{
		style.WithPolicy(conf.UnknownProperty),
		style.WithTrace(conf.Trace || e.Rpt != nil),
	}

	e.KnownTokens = nil
	if conf.TokensPath != "" {
		tokens, err := loadTokens(conf.TokensPath, log)
		if err != nil {
			return err
		}
		e.Rpt.Store("engine/tokens-"+filepath.Base(conf.TokensPath), conf.TokensPath)
		e.KnownTokens = tokens
		opts = append(opts, style.WithKnownTokens(tokens...))
	}

	e.Tables = tables
	e.Compiler = style.NewCompiler(tables, e.Log, opts...)

	log.Debug("Engine prepared",
		zap.String("namespace", tables.Namespace()),
		zap.String("token_prefix", tables.TokenPrefix()),
		zap.Int("breakpoints", len(tables.Breakpoints())),
		zap.Int("aliases", len(tables.AliasNames())),
		zap.Int("tokens", len(e.KnownTokens)),
		zap.Stringer("unknown_property", conf.UnknownProperty))
	return nil
}

// loadTokens returns names of custom properties defined by token stylesheet,
// sorted.
func loadTokens(path string, log *zap.Logger) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read token stylesheet from %q: %w", path, err)
	}
	sheet := css.NewParser(log).Parse(data, path)
	for _, w := range sheet.Warnings {
		log.Warn("Token stylesheet problem", zap.String("file", path), zap.String("warning", w))
	}
	tokens := slices.Sorted(maps.Keys(sheet.CustomProperties()))
	if len(tokens) == 0 {
		log.Warn("Token stylesheet defines no custom properties, every token reference will be reported", zap.String("file", path))
	}
	return tokens, nil
}
