package main

import (
	"net/http"
	"os"
	"time"

	"bayshore/server/config"
	"bayshore/server/internal/api"
	"bayshore/server/internal/notify"
	"bayshore/server/internal/queue"
	"bayshore/server/internal/reviews"
	"bayshore/server/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if cfg.AdminAPIKey == "" {
		logger.Warn("ADMIN_API_KEY is not set; admin endpoints will reject all requests")
	}

	// The store is process memory only; every start re-seeds the content set
	store := storage.NewStore()
	store.Seed()
	logger.Info("Seeded in-memory store")

	// Lead notification pipeline
	leadQueue := queue.NewLeadQueue(100, logger)
	notifier := notify.NewTelegramNotifier(logger, cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if notifier.Enabled() {
		leadQueue.Subscribe(notifier.NotifyNewLead)
		logger.Info("Telegram lead notifications enabled")
	}
	leadQueue.Start()
	defer leadQueue.Close()

	reviewsClient := reviews.NewClient(logger, cfg.Reviews.URL,
		time.Duration(cfg.Reviews.TimeoutSeconds)*time.Second)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		logger.WithField("panic", recovered).Error("Recovered from panic in handler")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}))

	handler := api.NewHandler(store, cfg, logger, leadQueue, reviewsClient)
	api.SetupRoutes(router, handler, cfg, logger)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
