package glow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	default:
		return "yaml"
	}
}

// Config holds the parser settings that can be changed without rebuilding:
// resolution tracing and the kinds tried in each context, by production name.
type Config struct {
	Trace    bool           `yaml:"trace" toml:"trace"`
	Contexts ContextsConfig `yaml:"contexts" toml:"contexts"`
}

// ContextsConfig lists the kinds of each context in priority order. An empty
// list keeps the default context; an empty call_args list is the expression
// list followed by CommaOp.
type ContextsConfig struct {
	Root       []string `yaml:"root" toml:"root"`
	Expression []string `yaml:"expression" toml:"expression"`
	CallArgs   []string `yaml:"call_args" toml:"call_args"`
}

// LoadConfig reads a YAML or TOML configuration file, picking the format from
// the file extension.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return ParseConfig(content, detectFormat(path))
}

// ParseConfig decodes a configuration and checks that every kind it names
// exists.
func ParseConfig(content []byte, format Format) (*Config, error) {
	cfg := &Config{}
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, cfg)
	default:
		err = yaml.Unmarshal(content, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", format, err)
	}
	if _, err := cfg.Grammar(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Grammar builds the contexts described by cfg on top of DefaultGrammar.
func (cfg *Config) Grammar() (*Grammar, error) {
	grammar := DefaultGrammar()
	var err error
	if len(cfg.Contexts.Root) > 0 {
		if grammar.Root, err = contextFromNames("root", cfg.Contexts.Root, false); err != nil {
			return nil, err
		}
	}
	if len(cfg.Contexts.Expression) > 0 {
		if grammar.Expression, err = contextFromNames("expression", cfg.Contexts.Expression, false); err != nil {
			return nil, err
		}
	}
	if len(cfg.Contexts.CallArgs) > 0 {
		if grammar.CallArgs, err = contextFromNames("call-args", cfg.Contexts.CallArgs, true); err != nil {
			return nil, err
		}
	} else {
		grammar.CallArgs = grammar.Expression.Compose("call-args", NewContext("comma", KindComma))
	}
	return grammar, nil
}

// contextFromNames builds a context out of production names. CommaOp is
// flattened away only inside argument lists, so it is refused elsewhere.
func contextFromNames(name string, names []string, allowComma bool) (Context, error) {
	kinds := make([]Kind, 0, len(names))
	for _, n := range names {
		kind, ok := KindByName(n)
		if !ok {
			return Context{}, fmt.Errorf("context %s: unknown node kind %q", name, n)
		}
		if kind == KindComma && !allowComma {
			return Context{}, fmt.Errorf("context %s: %s is only allowed in call_args", name, kind)
		}
		kinds = append(kinds, kind)
	}
	return NewContext(name, kinds...), nil
}
