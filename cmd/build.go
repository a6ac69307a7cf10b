package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prepsite/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static study site",
	Long:  `Renders the catalog into a single page with its stylesheet, script and a JSON export of the catalog.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	buildCmd.Flags().Bool("serve", false, "start a local preview server after building")
	buildCmd.Flags().Int("port", 0, "port for the preview server (defaults to serve.port)")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Serve.Port = port
	}
	if cmd.Flags().Changed("open") {
		cfg.Serve.Open, _ = cmd.Flags().GetBool("open")
	}

	serve, _ := cmd.Flags().GetBool("serve")
	if serve {
		return runPreview(cmd.Context(), cfg, false)
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	warnDiagnostics(c)

	g := newGenerator(cfg, c, cfg.OutputDir)
	g.BuildID = uuid.NewString()
	g.Reporter = progress.NewReporter()
	res, err := g.Generate()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	fmt.Printf("Site built: %s (%d topics, %d entries)\n", cfg.OutputDir, res.Topics, res.Entries)
	return nil
}
