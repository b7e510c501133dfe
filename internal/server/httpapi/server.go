// Package httpapi exposes the registration and login endpoints over HTTP
// with JSON request and response bodies.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/apsihub/apsi-auth/internal/logging"
	"github.com/apsihub/apsi-auth/internal/server/users"
)

// Pinger reports storage liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	address        string
	allowedOrigins string
	users          *users.Service
	store          Pinger
	logger         logging.Logger
}

func NewServer(address, allowedOrigins string, l logging.Logger, us *users.Service, store Pinger) *Server {
	return &Server{
		address:        address,
		allowedOrigins: allowedOrigins,
		users:          us,
		store:          store,
		logger:         l.With("module", "http_server"),
	}
}

func (s *Server) router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(s.logger))
	router.Use(cors.New(s.corsConfig()))

	router.POST("/register", s.handleRegister)
	router.POST("/login", s.handleLogin)
	router.GET("/health", s.handleHealth)

	return router
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if s.allowedOrigins == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = strings.Split(s.allowedOrigins, ",")
	return cfg
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
