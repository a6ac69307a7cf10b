package site

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ServerConfig holds preview server settings.
type ServerConfig struct {
	Port     int
	Dir      string // built site to serve
	AllowAll bool   // allow all CORS origins
}

// Server serves a built site for local preview and pushes reload
// notices to open pages.
type Server struct {
	cfg        ServerConfig
	router     chi.Router
	reload     *reloadHub
	httpServer *http.Server
}

// NewServer creates a preview server for cfg.Dir.
func NewServer(cfg ServerConfig) *Server {
	s := &Server{cfg: cfg, reload: newReloadHub()}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// The websocket outlives any request timeout.
	r.Get("/livereload", s.reload.handle)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Handle("/*", s.staticHandler())
	})

	return r
}

// staticHandler serves the output directory without caching and without
// directory listings.
func (s *Server) staticHandler() http.Handler {
	fs := http.FileServer(http.Dir(s.cfg.Dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") && r.URL.Path != "/" {
			if _, err := os.Stat(filepath.Join(s.cfg.Dir, filepath.FromSlash(r.URL.Path), IndexFile)); err != nil {
				http.NotFound(w, r)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		fs.ServeHTTP(w, r)
	})
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Reload records buildID as current and tells every open page about it.
func (s *Server) Reload(buildID string) { s.reload.broadcast(buildID) }

// URL is the address pages are served at.
func (s *Server) URL() string { return fmt.Sprintf("http://localhost:%d", s.cfg.Port) }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("prepsite preview listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown closes reload connections and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.reload.close()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
