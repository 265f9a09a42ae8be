package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/goutelas/content-api/configs"
	"github.com/goutelas/content-api/internal/application/services"
	"github.com/goutelas/content-api/internal/core/ports"
	"github.com/goutelas/content-api/internal/infrastructure/health"
	"github.com/goutelas/content-api/internal/infrastructure/httpserver"
	"github.com/goutelas/content-api/internal/infrastructure/memcache"
	"github.com/goutelas/content-api/internal/infrastructure/redis"
	"github.com/goutelas/content-api/internal/infrastructure/wordpress"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting Goutelas content API...")

	// Content source client
	wpClient := wordpress.NewClient(&wordpress.Config{
		BaseURL:        cfg.WordPress.BaseURL,
		RequestTimeout: cfg.WordPress.RequestTimeout,
		PerPage:        cfg.WordPress.PerPage,
	}, logger)

	// Select the cache backend
	var cache ports.Cache
	healthCheckers := []ports.HealthChecker{health.NewWordPressHealthChecker(wpClient)}
	if cfg.Cache.Backend == config.CacheBackendRedis {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		logger.Info("Connected to Redis successfully")
		cache = redis.NewRedisCache(redisClient, "content")
		healthCheckers = append(healthCheckers, health.NewRedisHealthChecker(redisClient))
	} else {
		cache = memcache.New()
	}

	contentService := services.NewContentService(wpClient, cache, &services.Config{
		TTL:            cfg.Cache.TTL,
		CoalesceErrors: cfg.Cache.CoalesceErrors,
	}, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		TLSCertFile:  cfg.Server.TLSCertFile,
		TLSKeyFile:   cfg.Server.TLSKeyFile,
	}

	deps := httpserver.ServerDeps{
		ContentService: contentService,
		HealthCheckers: healthCheckers,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
