package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"hackhub/internal/config"
	"hackhub/internal/database"
	"hackhub/internal/handlers"
	"hackhub/internal/websocket"

	"github.com/gin-gonic/gin"
)

const AppVersion = "1.0.0"

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	logger.Info(fmt.Sprintf("Hackhub Server v%s", AppVersion))

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	hub := websocket.NewHub()
	go hub.Run()

	h := handlers.New(db, hub, cfg)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.SetupRouter(h, slogGinLogger(logger))

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("HTTP server starting", "port", cfg.HTTPPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
