// Package api exposes domain lookups over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/MSKWKR/dns-query-tool-refactor/internal/apperr"
	"github.com/MSKWKR/dns-query-tool-refactor/internal/record"
)

// Fetcher is the lookup chain behind the API. Satisfied by
// fetcher.Fetcher.
type Fetcher interface {
	GetSnapshot(ctx context.Context, raw string, withSRV bool) (*record.Snapshot, error)
}

// Server serves the lookup routes on a gin engine.
type Server struct {
	router  *gin.Engine
	fetcher Fetcher
	logger  *slog.Logger
}

// New builds the server and registers its routes.
func New(f Fetcher, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		router:  gin.New(),
		fetcher: f,
		logger:  logger,
	}
	s.router.Use(gin.Recovery(), cors.Default(), s.requestLog())
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.GET("/", s.handleRoot)
	s.router.GET("/results/:domain", s.handleResults)
}

// Handler exposes the router for tests and custom server setups.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("api listening", "addr", addr)
	return s.router.Run(addr)
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "domain lookup service", "results": "/results/{domain}"})
}

// handleResults returns the full snapshot for a domain. Lookup failures
// inside the snapshot degrade to empty fields upstream, so the only error
// responses here are for unusable input.
func (s *Server) handleResults(c *gin.Context) {
	withSRV, _ := strconv.ParseBool(c.DefaultQuery("srv", "false"))

	snap, err := s.fetcher.GetSnapshot(c.Request.Context(), c.Param("domain"), withSRV)
	if err != nil {
		if errors.Is(err, apperr.ErrRejected) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.logger.Error("snapshot failed", "domain", c.Param("domain"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status())
	}
}
