package config

// DefaultConfigFile is where init writes and commands read by default.
const DefaultConfigFile = ".prepsite.yml"

// DefaultConfig returns a Config with sensible defaults. An empty
// CatalogDir means the built-in catalog, and an empty SiteTitle or Tagline
// keeps the catalog's own.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:      "site",
		CatalogPattern: "*.yaml",
		HighlightStyle: "github",
		TerminalStyle:  "dark",
		Serve: ServeConfig{
			Port:       8080,
			LiveReload: true,
		},
	}
}
