package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/bmatcuk/doublestar/v4"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides, e.g. PREPSITE_OUTPUT_DIR.
const EnvPrefix = "PREPSITE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PREPSITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps PREPSITE_OUTPUT_DIR to output_dir and PREPSITE_SERVE_PORT
// to serve.port.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "serve_"); ok {
		return "serve." + rest
	}
	return key
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Serve.Port < 1 || c.Serve.Port > 65535 {
		return fmt.Errorf("invalid serve.port %d: must be between 1 and 65535", c.Serve.Port)
	}

	if c.HighlightStyle != "" {
		if _, ok := styles.Registry[c.HighlightStyle]; !ok {
			return fmt.Errorf("unknown highlight_style %q", c.HighlightStyle)
		}
	}

	if c.TerminalStyle != "" && !knownTerminalStyle(c.TerminalStyle) {
		return fmt.Errorf("unknown terminal_style %q: must be one of %s",
			c.TerminalStyle, strings.Join(TerminalStyles(), ", "))
	}

	if c.CatalogPattern != "" && !doublestar.ValidatePattern(c.CatalogPattern) {
		return fmt.Errorf("invalid catalog_pattern %q", c.CatalogPattern)
	}

	return nil
}

// TerminalStyles lists the glamour styles terminal_style accepts, sorted.
func TerminalStyles() []string {
	names := make([]string, 0, len(glamourstyles.DefaultStyles))
	for name := range glamourstyles.DefaultStyles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func knownTerminalStyle(name string) bool {
	_, ok := glamourstyles.DefaultStyles[name]
	return ok
}
