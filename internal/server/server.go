// Package server wires the HTTP stack together.
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/api"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/cache"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/config"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/service"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/store"
)

// Server is the HTTP server and its owned resources.
type Server struct {
	router *gin.Engine
	store  *store.Store
	svc    *service.Service
}

// NewServer builds the full stack from configuration. The metadata store is
// optional: a failure to open it degrades to no import history.
func NewServer(cfg *config.AppConfig, log zerolog.Logger) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	var st *store.Store
	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("data directory unavailable, import history disabled")
	} else {
		st, err = store.New(config.DatabasePath(dataDir))
		if err != nil {
			log.Warn().Err(err).Msg("metadata store unavailable, import history disabled")
			st = nil
		}
	}

	refCache, err := cache.New(cfg.Data.ReferenceCacheSize)
	if err != nil {
		return nil, fmt.Errorf("build reference cache: %w", err)
	}

	svc := service.New(log, refCache, st, cfg.Report.DefaultYear)
	handler := api.NewHandler(svc, cfg)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log), corsMiddleware())

	apiGroup := router.Group("/api")
	handler.RegisterRoutes(apiGroup)

	return &Server{router: router, store: st, svc: svc}, nil
}

// Service exposes the application core, for tests.
func (s *Server) Service() *service.Service {
	return s.svc
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases owned resources.
func (s *Server) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request")
	}
}
