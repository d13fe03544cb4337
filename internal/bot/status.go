package bot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusServer serves health and module status over HTTP.
type StatusServer struct {
	engine *gin.Engine
	server *http.Server
}

// NewStatusServer creates a StatusServer listening on addr.
// Modules implementing StatusReporter are listed under /status.
func NewStatusServer(addr string, modules []Module) *StatusServer {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/status", func(c *gin.Context) {
		statuses := gin.H{}
		for _, mod := range modules {
			if reporter, ok := mod.(StatusReporter); ok {
				statuses[mod.Name()] = reporter.Status()
			}
		}
		c.JSON(http.StatusOK, gin.H{"modules": statuses})
	})

	return &StatusServer{
		engine: engine,
		server: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the HTTP handler.
func (s *StatusServer) Handler() http.Handler {
	return s.engine
}

// Start serves in a background goroutine.
func (s *StatusServer) Start() {
	go func() {
		slog.Info("started status server", "address", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to serve status", "error", err)
		}
	}()
}

// Shutdown stops the server, waiting for in-flight requests until ctx is done.
func (s *StatusServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
