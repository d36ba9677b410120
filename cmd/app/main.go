package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/aerolinea/config"
	"github.com/Domenick1991/aerolinea/internal/bootstrap"
	"github.com/Domenick1991/aerolinea/internal/cache"
	"github.com/Domenick1991/aerolinea/internal/kafka"
	"github.com/Domenick1991/aerolinea/internal/service/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := bootstrap.NewDatasetRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer closeRepo()

	var opts []store.Option
	if cfg.Redis.Enabled() {
		redisCache := cache.NewRedisCache(cfg.Redis, cfg.Storage.Dataset, cfg.Store.CacheTTL())
		defer redisCache.Close()
		opts = append(opts, store.WithCache(redisCache, cfg.Store.LockTTL(), cfg.Store.LockWait()))
	}
	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		if err := producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: kafka unreachable, events will be dropped: %v", err)
		}
		opts = append(opts, store.WithProducer(producer, cfg.Kafka.EventsTopic, cfg.Kafka.NotificationsTopic))
	}

	service := store.NewStore(repo, opts...)

	if err := bootstrap.Run(ctx, cfg, service); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
