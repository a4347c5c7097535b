package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"chat-api/internal/config"
	"chat-api/internal/interfaces/httpserver/middlewares"
	chatroutes "chat-api/internal/interfaces/httpserver/routes/v1/chat"
)

// HTTPServer wires middleware and routes onto a gin engine.
type HTTPServer struct {
	config    *config.Config
	logger    zerolog.Logger
	engine    *gin.Engine
	chatRoute *chatroutes.ChatRoute
	srv       *http.Server
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(
	cfg *config.Config,
	logger zerolog.Logger,
	chatRoute *chatroutes.ChatRoute,
) *HTTPServer {
	if !config.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.TracingMiddleware(cfg.ServiceName))
	engine.Use(middlewares.LoggingMiddleware(logger))
	engine.Use(middlewares.CORSMiddleware())
	engine.Use(middlewares.MetricsMiddleware())
	engine.Use(gin.Recovery())

	server := &HTTPServer{
		config:    cfg,
		logger:    logger,
		engine:    engine,
		chatRoute: chatRoute,
	}
	server.registerRoutes()
	return server
}

func (s *HTTPServer) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": config.Version})
	})
	s.engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	api := s.engine.Group("/api")
	s.chatRoute.RegisterRouter(api)
}

// Start runs the HTTP server until the context is cancelled.
func (s *HTTPServer) Start(ctx context.Context) error {
	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.HTTPPort),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Int("port", s.config.HTTPPort).Msg("http server listening")
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}

// Engine exposes the underlying router, used by tests.
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}
