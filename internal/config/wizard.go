package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// catalogDirCandidates are directories checked for an existing catalog.
var catalogDirCandidates = []string{"catalog", "content", "topics"}

// detectCatalogDir returns the first candidate directory that exists.
func detectCatalogDir() string {
	for _, dir := range catalogDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .prepsite.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to prepsite! Let's configure your study site.")
	fmt.Println()

	cfg := DefaultConfig()

	detected := detectCatalogDir()
	if detected != "" {
		fmt.Printf("Found catalog directory: %s\n\n", detected)
	}

	// 1. Site header.
	titlePrompt := promptui.Prompt{
		Label: "Site title (blank keeps the catalog title)",
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = strings.TrimSpace(title)

	// 2. Catalog source.
	catalogPrompt := promptui.Prompt{
		Label:   "Catalog directory (blank uses the built-in catalog)",
		Default: detected,
	}
	catalogDir, err := catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog dir: %w", err)
	}
	cfg.CatalogDir = strings.TrimSpace(catalogDir)

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: cfg.OutputDir,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("output directory is required")
			}
			return nil
		},
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	// 4. Terminal style.
	termStyles := TerminalStyles()
	stylePrompt := promptui.Select{
		Label:     "Terminal browser style",
		Items:     termStyles,
		CursorPos: max(indexOf(termStyles, cfg.TerminalStyle), 0),
	}
	_, termStyle, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("terminal style: %w", err)
	}
	cfg.TerminalStyle = termStyle

	// 5. Preview port.
	portPrompt := promptui.Prompt{
		Label:   "Preview server port",
		Default: strconv.Itoa(cfg.Serve.Port),
		Validate: func(s string) error {
			_, err := parsePort(s)
			return err
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Serve.Port, _ = parsePort(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}

// parsePort parses a TCP port in 1..65535.
func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("port must be a number between 1 and 65535")
	}
	return port, nil
}

func indexOf(items []string, s string) int {
	for i, it := range items {
		if it == s {
			return i
		}
	}
	return -1
}
