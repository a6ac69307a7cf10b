package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prepsite/internal/nav"
	"github.com/ziadkadry99/prepsite/internal/render"
	"github.com/ziadkadry99/prepsite/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the study guide in the terminal",
	Long: `Opens the catalog in a full-screen terminal browser. Number keys jump to
sections, tab moves between them and the bar at the bottom tracks reading
progress.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("topic", "", "open at this topic instead of the top")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	if verbose {
		warnDiagnostics(c)
	}

	topic, _ := cmd.Flags().GetString("topic")
	if topic != "" && c.Topic(topic) == nil {
		return fmt.Errorf("unknown topic %q (available: %v)", topic, c.Keys())
	}

	r := &render.Renderer{}
	doc := r.Page(c, nav.ForCatalog(c, nav.Default))
	if cfg.SiteTitle != "" {
		doc.Title = cfg.SiteTitle
	}

	m := tui.New(doc, tui.Options{Style: cfg.TerminalStyle, StartAt: topic})
	return tui.Run(m)
}
