package config

// Config is the top-level prepsite configuration, corresponding to .prepsite.yml.
type Config struct {
	SiteTitle      string      `yaml:"site_title" koanf:"site_title"`
	Tagline        string      `yaml:"tagline" koanf:"tagline"`
	OutputDir      string      `yaml:"output_dir" koanf:"output_dir"`
	CatalogDir     string      `yaml:"catalog_dir" koanf:"catalog_dir"`
	CatalogPattern string      `yaml:"catalog_pattern" koanf:"catalog_pattern"`
	HighlightStyle string      `yaml:"highlight_style" koanf:"highlight_style"`
	TerminalStyle  string      `yaml:"terminal_style" koanf:"terminal_style"`
	Serve          ServeConfig `yaml:"serve" koanf:"serve"`
}

// ServeConfig holds preview server settings.
type ServeConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	Open            bool `yaml:"open" koanf:"open"`
	LiveReload      bool `yaml:"live_reload" koanf:"live_reload"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
