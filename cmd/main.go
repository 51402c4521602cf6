package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/marketplace-connector/docs"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/app"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/config"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/connector"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/handler"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/service"
	"github.com/SergeyBogomolovv/marketplace-connector/pkg/cache"

	"github.com/joho/godotenv"
)

// version задаётся при сборке через -ldflags "-X main.version=..."
var version = "dev"

// @title           Marketplace Connector API
// @version         1.0
// @description     Единый HTTP-контракт коннектора маркетплейсов
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	client, err := connector.New(logger, conf.Client)
	panicIfErr("failed to create marketplace client", err)

	resultCache := newResultCache(logger, conf.Cache)
	marketplaceService := service.NewMarketplaceService(logger, client, resultCache, conf.Retry)

	httpHandler := handler.NewHTTPHandler(logger, marketplaceService, handler.HTTPOptions{
		AuthToken: conf.AuthToken,
		Mode:      conf.Client.Mode,
		Version:   version,
	})

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(resultCache)

	if conf.Kafka.Enabled {
		handler.RegisterMetrics()
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, marketplaceService))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

type startableCache interface {
	service.Cache
	app.Starter
}

func newResultCache(logger *slog.Logger, cfg config.Cache) startableCache {
	if cfg.Backend == "redis" {
		logger.Info("using redis result cache", slog.String("addr", cfg.Redis.Addr))
		return cache.NewRedisCache(logger, cache.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.TTL,
		})
	}
	return cache.NewLRUCache(cfg.Capacity, cfg.TTL)
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
