// Package config loads the graphval command configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hidal-go/graphval/codec"
	"github.com/hidal-go/graphval/factory"
	"github.com/hidal-go/graphval/values"
)

// EnvPrefix is a prefix of environment variables that override the configuration.
// Nested keys are separated by a double underscore, e.g. GRAPHVAL_LOG__LEVEL.
const EnvPrefix = "GRAPHVAL_"

type Config struct {
	// Decoder is the name of the default text decoder: "noop", "url" or "query".
	Decoder string `json:"decoder"`
	// Namespaces maps prefixes to namespace URIs for names and paths.
	Namespaces map[string]string `json:"namespaces"`
	Log        LogConfig         `json:"log"`
}

// Load reads the configuration file, if path is set, and applies environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults applies defaults to unset fields.
func (c *Config) SetDefaults() {
	if c.Decoder == "" {
		c.Decoder = "noop"
	}
	c.Log.SetDefaults()
}

// Validate checks that the decoder and the logging settings are known.
func (c Config) Validate() error {
	if _, err := codec.ByName(c.Decoder); err != nil {
		return err
	}
	for prefix, uri := range c.Namespaces {
		if uri == "" {
			return fmt.Errorf("empty namespace URI for prefix %q", prefix)
		}
	}
	return c.Log.Validate()
}

// FactoryOptions converts the configuration to factory registry options.
func (c Config) FactoryOptions() (factory.Options, error) {
	dec, err := codec.ByName(c.Decoder)
	if err != nil {
		return factory.Options{}, err
	}
	opts := factory.Options{Decoder: dec}
	if len(c.Namespaces) != 0 {
		opts.Namespaces = make(values.Namespaces, len(c.Namespaces))
		for p, uri := range c.Namespaces {
			opts.Namespaces[p] = uri
		}
	}
	return opts, nil
}
