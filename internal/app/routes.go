package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/shopadmin/internal/domain"
	"github.com/simp-lee/shopadmin/internal/pkg"
	"github.com/simp-lee/shopadmin/internal/router"
	"github.com/simp-lee/shopadmin/web"
)

// Pinger reports whether a backend dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Table   *router.Table
	Modules []Module
	Pinger  Pinger // products API; nil reports the component as unconfigured
	Mode    string // "debug" or "release"
}

// RegisterRoutes registers all application routes on the given gin.Engine.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if deps.Table == nil || deps.Table.Len() == 0 {
		return errors.New("route table is empty")
	}

	// Static assets
	if err := registerStaticRoutes(r, deps.Mode); err != nil {
		return fmt.Errorf("register static routes: %w", err)
	}

	r.GET("/health", healthHandler(deps.Pinger))

	// Page routes, one per table entry.
	nav := navItems(deps.Table)
	for _, route := range deps.Table.Routes() {
		r.GET(route.Path, pageHandler(route, nav))
	}

	api := r.Group("/api/v1")
	api.GET("/routes", listRoutesHandler(nav))
	api.GET("/routes/resolve", resolveRouteHandler(deps.Table))

	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(api)
	}

	r.NoRoute(noRouteHandler())

	return nil
}

// healthHandler returns a handler that probes the products API and reports status.
func healthHandler(products Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiStatus := "ok"
		status := "ok"
		code := http.StatusOK

		if products == nil {
			apiStatus = "unconfigured"
			status = "degraded"
			code = http.StatusServiceUnavailable
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			defer cancel()
			if err := products.Ping(ctx); err != nil {
				slog.WarnContext(ctx, "health: products api unreachable", slog.Any("error", err))
				apiStatus = "error"
				status = "degraded"
				code = http.StatusServiceUnavailable
			}
		}

		c.JSON(code, gin.H{
			"status": status,
			"components": gin.H{
				"products_api": apiStatus,
			},
		})
	}
}

// noRouteHandler renders the 404 page for browsers or a JSON envelope for
// API paths and API clients.
func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			pkg.Error(c, domain.ErrNotFound)
			return
		}
		renderError(c, http.StatusNotFound, domain.ErrNotFound.Message)
	}
}

func registerStaticRoutes(r *gin.Engine, mode string) error {
	if mode == gin.DebugMode {
		debugStaticFS, err := resolveDebugStaticFS()
		if err != nil {
			return fmt.Errorf("resolve debug static filesystem: %w", err)
		}
		fileServer := http.StripPrefix("/static", http.FileServer(http.FS(debugStaticFS)))
		r.GET("/static/*filepath", func(c *gin.Context) {
			fileServer.ServeHTTP(c.Writer, c.Request)
		})
		return nil
	}

	// Release mode: serve from embed.FS with cache headers.
	staticFS, err := fs.Sub(web.EmbeddedFS, "static")
	if err != nil {
		return fmt.Errorf("create sub filesystem for static assets: %w", err)
	}
	r.GET("/static/*filepath", cacheStaticHandler(http.FS(staticFS)))
	return nil
}

func resolveDebugStaticFS() (fs.FS, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return nil, errors.New("resolve current file path")
	}

	projectRoot := filepath.Clean(filepath.Join(filepath.Dir(currentFile), "..", ".."))
	staticDir := filepath.Join(projectRoot, "web", "static")
	if _, err := os.Stat(staticDir); err != nil {
		return nil, fmt.Errorf("stat static directory %q: %w", staticDir, err)
	}

	return os.DirFS(staticDir), nil
}

// cacheStaticHandler serves release mode static assets with a one-day
// Cache-Control header.
func cacheStaticHandler(fsys http.FileSystem) gin.HandlerFunc {
	fileServer := http.StripPrefix("/static", http.FileServer(fsys))
	return func(c *gin.Context) {
		c.Header("Cache-Control", "public, max-age=86400")
		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
