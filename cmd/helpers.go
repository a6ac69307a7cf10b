package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ziadkadry99/prepsite/internal/catalog"
	"github.com/ziadkadry99/prepsite/internal/config"
	"github.com/ziadkadry99/prepsite/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `prepsite init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadCatalog reads catalog_dir when set, otherwise the built-in catalog.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogDir == "" {
		c, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("loading built-in catalog: %w", err)
		}
		return c, nil
	}
	c, err := catalog.LoadDir(cfg.CatalogDir, cfg.CatalogPattern)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}

// newGenerator configures a site generator from cfg.
func newGenerator(cfg *config.Config, c *catalog.Catalog, outputDir string) *site.SiteGenerator {
	g := site.NewSiteGenerator(c, outputDir)
	g.Title = cfg.SiteTitle
	g.Tagline = cfg.Tagline
	if cfg.HighlightStyle != "" {
		g.Style = cfg.HighlightStyle
	}
	return g
}

// printDiagnostics writes catalog findings, one per line.
func printDiagnostics(w io.Writer, ds []catalog.Diagnostic) {
	for _, d := range ds {
		fmt.Fprintln(w, d.String())
	}
}

// warnDiagnostics prints warnings to stderr, or every finding with --verbose.
func warnDiagnostics(c *catalog.Catalog) {
	ds := catalog.Check(c)
	if !verbose {
		ds = catalog.Warnings(ds)
	}
	for _, d := range ds {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", d)
	}
}
