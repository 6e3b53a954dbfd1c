package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/api"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/auth"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/config"
	"github.com/Wolihts/Group-7-Healthy-Habit-Tracker/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	repos, err := storage.NewRepositories(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL, logger)
	app := api.NewApp(logger, sessions, repos)
	r := api.NewRouter(app)

	logger.Infof("server listening on %s (storage=%s)", cfg.Addr, cfg.StorageType)
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
