package preview

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arbor-dev/arbor"
	"github.com/arbor-dev/arbor/internal/config"
	"github.com/arbor-dev/arbor/pkg/instrument"
	"github.com/arbor-dev/arbor/pkg/tree"
)

// Server is the development preview server. It renders the configured
// entry page on every request and live-reloads connected browsers when
// watched files change.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	reload   *ReloadServer
	profiler *instrument.Profiler
	registry *prometheus.Registry
	http     *http.Server
}

// NewServer creates a preview server for the given project config.
func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	metrics := instrument.NewMetrics(instrument.WithRegistry(registry))

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		reload:   NewReloadServer(),
		profiler: instrument.NewProfiler(metrics, instrument.WithTracing()),
		registry: registry,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/", s.handlePage)
	r.Get("/_arbor/reload", s.reload.HandleWebSocket)
	r.Get("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP)
	r.Get("/static/*", s.handleStatic)

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Run starts the watcher and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	watcher, err := NewWatcher(s.cfg.WatchPaths(), s.onFileChange, s.logger)
	if err != nil {
		return err
	}
	go watcher.Run(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.reload.Close()
		s.http.Shutdown(shutdownCtx)
	}()

	s.logger.Info("preview server listening",
		"addr", "http://"+s.http.Addr,
		"entry", s.cfg.Entry)

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// onFileChange pushes a reload to all connected browsers.
func (s *Server) onFileChange(path string) {
	s.logger.Info("change detected", "path", path, "clients", s.reload.ClientCount())
	s.reload.NotifyReload(filepath.Base(path))
}

// handlePage renders the entry page description and serves it with the
// live-reload client script injected.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	html, err := s.renderEntry(r.Context())
	if err != nil {
		s.logger.Error("render failed", "error", err)
		s.reload.NotifyError(err.Error())
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, errorPage, arbor.Escape(err.Error()), reloadClientScript)
		return
	}
	s.reload.ClearError()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, injectReloadScript(html))

	s.logger.Debug("page served",
		"bytes", len(html),
		"duration", time.Since(start))
}

// renderEntry loads the entry JSON file and renders it.
func (s *Server) renderEntry(ctx context.Context) (string, error) {
	entryPath := filepath.Join(s.cfg.Dir(), s.cfg.Entry)
	data, err := os.ReadFile(entryPath)
	if err != nil {
		return "", fmt.Errorf("read entry %s: %w", s.cfg.Entry, err)
	}

	var desc any
	if err := json.Unmarshal(data, &desc); err != nil {
		return "", fmt.Errorf("parse entry %s: %w", s.cfg.Entry, err)
	}

	node := tree.FromAny(desc)
	mode := instrument.ModePlain
	opts := []arbor.Option{}
	if s.cfg.Strict {
		opts = append(opts, arbor.Strict())
	}
	if s.cfg.Scoped {
		mode = instrument.ModeScoped
		opts = append(opts, arbor.Scoped())
	}

	return s.profiler.Render(ctx, node, mode, func() (string, error) {
		return arbor.Render(node, opts...)
	})
}

// handleStatic serves files from the project's static/ directory.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	root := http.Dir(filepath.Join(s.cfg.Dir(), "static"))
	http.StripPrefix("/static/", http.FileServer(root)).ServeHTTP(w, r)
}

// injectReloadScript inserts the reload client before </body>, or appends
// it when the page has no body element.
func injectReloadScript(html string) string {
	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		return html[:i] + reloadClientScript + html[i:]
	}
	return html + reloadClientScript
}

// errorPage is shown when the entry page fails to render.
const errorPage = `<!DOCTYPE html>
<html>
<head><title>Arbor render error</title></head>
<body style="font-family: monospace; background: #1e1e1e; color: #f48771; padding: 2rem;">
<h1>Render error</h1>
<pre>%s</pre>
%s
</body>
</html>
`
