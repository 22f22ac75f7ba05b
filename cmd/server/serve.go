package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fairlead/compliance-engine/internal/audit"
	"github.com/fairlead/compliance-engine/internal/compliance"
	"github.com/fairlead/compliance-engine/internal/config"
	"github.com/fairlead/compliance-engine/internal/events"
	"github.com/fairlead/compliance-engine/internal/export"
	"github.com/fairlead/compliance-engine/internal/handlers"
	"github.com/fairlead/compliance-engine/internal/knowledge"
	"github.com/fairlead/compliance-engine/internal/metrics"
	"github.com/fairlead/compliance-engine/internal/store"
)

func runServe() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := cfg.InitLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Starting compliance engine",
		zap.String("service", serviceName),
		zap.String("version", version),
		zap.String("environment", cfg.Environment))

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)

	// Knowledge base: static corpus, optionally behind a redis cache,
	// always instrumented.
	var searcher knowledge.RequirementSearcher = knowledge.NewStaticSearcher()
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})
		defer redisClient.Close()
		searcher = knowledge.NewCachingSearcher(searcher, redisClient, cfg.Redis.CacheTTL, logger)
		logger.Info("Knowledge cache enabled", zap.String("redis", cfg.RedisAddr()))
	}
	searcher = metrics.NewInstrumentedSearcher(searcher, collector)

	generator := compliance.NewGenerator(searcher, logger,
		compliance.WithSearchWorkers(cfg.Knowledge.SearchWorkers))
	reportStore := store.NewReportStore(logger)
	trail := audit.NewTrail(cfg.Audit.RingSize, logger)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Error("Failed to close Kafka publisher", zap.Error(err))
			}
		}()
		publisher = kafkaPublisher
		logger.Info("Report event publishing enabled", zap.String("topic", cfg.Kafka.Topic))
	}

	janitor := store.NewJanitor(reportStore, cfg.Store.SweepSchedule, logger)
	if err := janitor.Start(); err != nil {
		return fmt.Errorf("failed to start report janitor: %w", err)
	}
	defer janitor.Stop()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	handler := handlers.NewReportHandler(generator, reportStore, export.NewRenderer(),
		publisher, trail, collector, logger, cfg.Server.RequestTimeout)
	handler.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.Server.RequestTimeout,
		WriteTimeout: cfg.Server.RequestTimeout,
		IdleTimeout:  120 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.Error("HTTP server failed", zap.Error(err))
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down HTTP server gracefully", zap.Error(err))
		return err
	}

	logger.Info("Service shutdown complete")
	return nil
}
