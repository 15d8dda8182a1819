package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"lugmatic-admin/internal/config"
	apihttp "lugmatic-admin/internal/http"
	"lugmatic-admin/internal/platform"
	"lugmatic-admin/internal/service"
	"lugmatic-admin/internal/session"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var tokenStore session.TokenStore
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			tokenStore = session.NewRedisTokenStore(redisClient)
		}
		cancel()
	}
	if tokenStore == nil {
		sqliteStore, err := session.NewSQLiteTokenStore(cfg.TokenDBPath, cfg.TokenSecret)
		if err != nil {
			logger.Warn("sqlite token store init failed", zap.Error(err))
			tokenStore = session.NewMemoryTokenStore()
		} else {
			defer sqliteStore.Close()
			tokenStore = sqliteStore
		}
	}
	if cfg.TokenSecret == "" {
		logger.Warn("token secret not configured, tokens stored in plaintext")
	}

	platformClient := platform.NewClient(
		cfg.PlatformBaseURL,
		time.Duration(cfg.PlatformTimeoutMS)*time.Millisecond,
		tokenStore.AccessToken,
		logger,
	)

	manager := session.NewManager(logger, platformClient, tokenStore)
	manager.Initialize(ctx)

	statsSvc := service.NewStatsService(logger, platformClient)
	sessionHandler := apihttp.NewSessionHandler(logger, manager)
	catalogHandler := apihttp.NewCatalogHandler(logger, platformClient)
	statsHandler := apihttp.NewStatsHandler(logger, statsSvc)
	router := apihttp.NewRouter(logger, manager, sessionHandler, catalogHandler, statsHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
