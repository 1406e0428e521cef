// Package config loads and persists resolvr's configuration. Settings are
// layered: built-in defaults, then the user's resolvr.toml, then RESOLVR_*
// environment variables. Pattern rules from the file are compiled into a
// handler table at load time, so a bad regex surfaces immediately instead
// of at first use.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/resolvr/pkg/errors"
	"github.com/arthur-debert/resolvr/pkg/handler"
	"github.com/arthur-debert/resolvr/pkg/logging"
)

const envPrefix = "RESOLVR_"

// Config is resolvr's configuration. The exported fields mirror
// resolvr.toml; Save writes them back in the same shape.
type Config struct {
	// EnableSelector turns on the interactive chooser when several
	// applications claim a MIME type and none is the default.
	EnableSelector bool `koanf:"enable_selector" toml:"enable_selector" yaml:"enableSelector" json:"enableSelector"`

	// Selector is the external chooser command, run through the shell
	// with candidates piped on stdin.
	Selector string `koanf:"selector" toml:"selector" yaml:"selector" json:"selector"`

	// TermCmd launches terminal applications when resolvr itself is not
	// attached to one, e.g. "xterm -e".
	TermCmd string `koanf:"term_command" toml:"term_command" yaml:"termCommand" json:"termCommand"`

	// Handlers are the pattern rules, matched in order before any MIME
	// lookup happens.
	Handlers []handler.PatternRule `koanf:"handlers" toml:"handlers,omitempty" yaml:"handlers,omitempty" json:"handlers,omitempty"`

	path  string
	table handler.Table
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"enable_selector": false,
		"selector":        "rofi -dmenu -i -p 'Open with'",
		"term_command":    "xterm -e",
	}
}

// DefaultPath returns the user config location,
// $XDG_CONFIG_HOME/resolvr/resolvr.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "resolvr", "resolvr.toml")
}

// Load reads the configuration from the default path.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the configuration from an explicit path. A missing file
// is not an error: defaults and environment variables still apply, and
// Save will create the file.
func LoadFrom(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot load defaults")
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else {
		logger.Debug().Str("path", path).Msg("No config file, using defaults")
	}

	// Keys are flat, so RESOLVR_TERM_COMMAND maps to term_command with a
	// plain lowercase of the suffix.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot load environment")
	}

	cfg := &Config{path: path}
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot decode configuration")
	}

	table, err := handler.CompileTable(cfg.Handlers)
	if err != nil {
		return nil, err
	}
	cfg.table = table

	logger.Debug().
		Int("rules", table.Len()).
		Bool("selector", cfg.EnableSelector).
		Msg("Configuration ready")

	return cfg, nil
}

// Save writes the configuration back to its path in TOML form, creating
// parent directories as needed.
func (c *Config) Save() error {
	data, err := gotoml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "cannot encode configuration")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "cannot create %s", filepath.Dir(c.path))
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "cannot write %s", c.path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().Str("path", c.path).Msg("Saved configuration")
	return nil
}

// Table returns the pattern handler table compiled at load time.
func (c *Config) Table() handler.Table { return c.table }

// TerminalCommand returns TermCmd split into argv form.
func (c *Config) TerminalCommand() []string { return strings.Fields(c.TermCmd) }

// Path returns where the configuration was loaded from and saves to.
func (c *Config) Path() string { return c.path }
