// Package server exposes the codec over HTTP for address-book tooling.
package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/danmuck/cardctl/internal/config"
	"github.com/danmuck/cardctl/internal/logging"
	"github.com/danmuck/cardctl/internal/observability"
	"github.com/danmuck/cardctl/internal/store"
)

// Server owns the HTTP surface: parse/normalize endpoints and the
// file-backed address book.
type Server struct {
	cfg      config.ServerConfig
	router   *gin.Engine
	book     store.Store
	logger   zerolog.Logger
	appeared time.Time
}

func New(cfg config.ServerConfig) *Server {
	gin.SetMode(gin.ReleaseMode)
	logger := logging.Logger().With().Str("app", cfg.Name).Logger()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger(logger))
	router.Use(observability.RequestMetricsMiddleware(cfg.Name))
	if len(cfg.CorsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CorsOrigins
		router.Use(cors.New(corsCfg))
	}

	s := &Server{
		cfg:      cfg,
		router:   router,
		book:     store.New(cfg.StoreRoot),
		logger:   logger,
		appeared: time.Now(),
	}
	s.registerRoutes()
	return s
}

// Run blocks serving on the configured address.
func (s *Server) Run() error {
	s.logger.Info().Str("addr", s.cfg.Addr).Msg("serving")
	return s.router.Run(s.cfg.Addr)
}

// Router exposes the handler for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
