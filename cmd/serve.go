package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/prepsite/internal/config"
	"github.com/ziadkadry99/prepsite/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and preview it with live reload",
	Long: `Builds the site, serves it locally and, when catalog_dir is set, rebuilds
on every change to the catalog. Open pages reload after each rebuild.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.Serve.Port = port
		}
		if cmd.Flags().Changed("open") {
			cfg.Serve.Open, _ = cmd.Flags().GetBool("open")
		}
		return runPreview(cmd.Context(), cfg, true)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port for the preview server (defaults to serve.port)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

// runPreview builds the site and serves it until interrupted. With watch
// set and a catalog directory configured, catalog changes trigger a
// rebuild and a reload.
func runPreview(parent context.Context, cfg *config.Config, watch bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := site.NewServer(site.ServerConfig{
		Port:     cfg.Serve.Port,
		Dir:      cfg.OutputDir,
		AllowAll: cfg.Serve.AllowAllOrigins,
	})

	var mu sync.Mutex
	rebuild := func() error {
		mu.Lock()
		defer mu.Unlock()

		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		warnDiagnostics(c)

		g := newGenerator(cfg, c, cfg.OutputDir)
		g.BuildID = uuid.NewString()
		g.LiveReload = cfg.Serve.LiveReload
		res, err := g.Generate()
		if err != nil {
			return fmt.Errorf("building site: %w", err)
		}
		srv.Reload(res.BuildID)
		fmt.Printf("Site built: %s (%d topics, %d entries, build %s)\n",
			cfg.OutputDir, res.Topics, res.Entries, res.BuildID)
		return nil
	}

	if err := rebuild(); err != nil {
		return err
	}

	errCh := make(chan error, 2)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("serving site: %w", err)
		}
	}()

	if watch && cfg.CatalogDir != "" && cfg.Serve.LiveReload {
		fmt.Printf("Watching %s for changes\n", cfg.CatalogDir)
		go func() {
			if err := site.Watch(ctx, []string{cfg.CatalogDir}, rebuild); err != nil {
				errCh <- fmt.Errorf("watching catalog: %w", err)
			}
		}()
	}

	fmt.Printf("Serving at %s (press Ctrl+C to stop)\n", srv.URL())
	if cfg.Serve.Open {
		site.OpenBrowser(srv.URL())
	}

	var runErr error
	select {
	case <-ctx.Done():
		fmt.Println("\nShutting down...")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("shutting down server: %w", err)
	}
	return runErr
}
