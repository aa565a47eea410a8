package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Yxf-20160325/gomoku/util"
	"github.com/Yxf-20160325/gomoku/ws"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	config    *util.Config
	logger    *zap.Logger
	wsManager *ws.Manager
	router    *gin.Engine
}

func NewServer(config *util.Config, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), util.RequestLogger(logger))

	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	server := &Server{
		config:    config,
		logger:    logger,
		wsManager: ws.NewManager(logger),
		router:    router,
	}

	router.GET("/api/rooms", server.ListRooms)
	router.Any("/ws", gin.WrapF(server.wsManager.ServeWS))
	router.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.StaticFile("/", filepath.Join(config.PublicDir, "index.html"))
	router.Static("/public", config.PublicDir)

	return server
}

// Start serves on every interface until a shutdown signal arrives, then
// drains in-flight requests.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%v", s.config.Port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("server listening", zap.String("port", s.config.Port))

	for _, ip := range util.LocalIPs() {
		s.logger.Info("reachable at", zap.String("url", fmt.Sprintf("http://%s:%s", ip, s.config.Port)))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		s.logger.Info("shutdown signal received", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(ctx)
	}
}
