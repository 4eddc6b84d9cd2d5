package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/gosimple/slug"
	"github.com/rupor-github/gencfg"

	"sprop/common"
	"sprop/style"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	BreakpointConfig struct {
		Alias     string `yaml:"alias" validate:"required,alphanum"`
		Condition string `yaml:"condition" validate:"required"`
	}

	EngineConfig struct {
		Namespace       string               `yaml:"namespace" validate:"omitempty,max=64"`
		TokenPrefix     string               `yaml:"token_prefix" validate:"omitempty,max=64"`
		UnknownProperty common.UnknownPolicy `yaml:"unknown_property" validate:"gte=0"`
		DefinitionPath  string               `yaml:"definition_path" sanitize:"assure_file_access"`
		TokensPath      string               `yaml:"tokens_css" sanitize:"assure_file_access"`
		Breakpoints     []BreakpointConfig   `yaml:"breakpoints" validate:"omitempty,unique=Alias,dive"`
		Trace           bool                 `yaml:"trace"`
	}

	OutputConfig struct {
		Format        common.OutputFormat `yaml:"format" validate:"gte=0"`
		Element       string              `yaml:"element" validate:"omitempty,alphanum"`
		IncludeSheet  bool                `yaml:"include_sheet"`
		SheetSelector string              `yaml:"sheet_selector"`
		Template      string              `yaml:"template" validate:"required_if=Format 4"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Engine    EngineConfig   `yaml:"engine"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputTemplateFieldName TemplateFieldName = "template"
	SheetSelectorFieldName  TemplateFieldName = "sheet_selector"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(SheetSelectorFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// Definition returns property tables definition: built-in one or loaded from
// definition_path, with namespace, token prefix and breakpoints overridden
// when configured. Namespace is normalized to be usable in custom property
// names.
func (conf *EngineConfig) Definition() (*style.Definition, error) {
	var (
		def *style.Definition
		err error
	)
	if conf.DefinitionPath != "" {
		if def, err = style.LoadDefinition(conf.DefinitionPath); err != nil {
			return nil, err
		}
	} else {
		def = style.DefaultDefinition()
	}

	if conf.Namespace != "" {
		def.Namespace = slug.Make(conf.Namespace)
	}
	if conf.TokenPrefix != "" {
		def.TokenPrefix = slug.Make(conf.TokenPrefix)
	}
	if len(conf.Breakpoints) > 0 {
		def.Breakpoints = make([]style.Breakpoint, 0, len(conf.Breakpoints))
		for _, bp := range conf.Breakpoints {
			def.Breakpoints = append(def.Breakpoints, style.Breakpoint{Alias: bp.Alias, Condition: bp.Condition})
		}
	}
	return def, nil
}
