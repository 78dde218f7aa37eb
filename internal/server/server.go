package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"route-descriptor/internal/database"
	"route-descriptor/internal/handlers"
	"route-descriptor/internal/models"
)

// Server wraps the HTTP server and all dependencies
type Server struct {
	httpServer *http.Server
	graph      database.GraphStore
	listener   net.Listener
	addr       string
	log        *zap.Logger
}

// Config holds server configuration
type Config struct {
	Addr          string // e.g., "127.0.0.1:8080" or "127.0.0.1:0" for random port
	Descriptor    models.DescriptorConfig
	TransactionID string
	// Release switches gin to release mode
	Release bool
}

// New creates and initializes a new server (does not start it).
// The server takes ownership of graph and closes it on Shutdown.
func New(cfg Config, graph database.GraphStore, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	handler := &handlers.Handler{
		Graph:         graph,
		Defaults:      cfg.Descriptor,
		TransactionID: cfg.TransactionID,
		Logger:        log,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(handler, log, cfg.Release),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		graph:      graph,
		addr:       cfg.Addr,
		log:        log,
	}
}

func newRouter(handler *handlers.Handler, log *zap.Logger, release bool) *gin.Engine {
	if release {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	handler.RegisterRoutes(&router.RouterGroup)
	return router
}

// Handler returns the HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server and returns the actual address (useful for random port)
func (s *Server) Start() (string, error) {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen: %w", err)
	}

	s.listener = listener
	actualAddr := listener.Addr().String()
	s.log.Info("starting server", zap.String("addr", actualAddr))

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("server error", zap.Error(err))
		}
	}()

	return actualAddr, nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	return s.graph.Close()
}
