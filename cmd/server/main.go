package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/Andydrums87/bookabash-sub001/internal/config"
	"github.com/Andydrums87/bookabash-sub001/internal/domain"
	"github.com/Andydrums87/bookabash-sub001/internal/http"
	"github.com/Andydrums87/bookabash-sub001/internal/http/middleware"
	"github.com/Andydrums87/bookabash-sub001/internal/observability"
	"github.com/Andydrums87/bookabash-sub001/internal/store/redis"
)

// ErrUnknownStoreBackend indicates STORE_BACKEND names no supported store.
var ErrUnknownStoreBackend = errors.New("unknown store backend")

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout())
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})
	if err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func(logger *zap.Logger) domain.EventPublisher {
		return observability.NewEventBus(logger)
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Offering Store
	if err := container.Provide(provideOfferingStore); err != nil {
		log.Fatalf("Failed to provide offering store: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewQuoteService); err != nil {
		log.Fatalf("Failed to provide quote service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

func provideOfferingStore(storeCfg *config.StoreConfig, redisCfg *config.RedisConfig) (domain.OfferingStore, error) {
	switch storeCfg.Backend {
	case config.StoreBackendMemory, "":
		return domain.NewInMemoryOfferingStore(), nil
	case config.StoreBackendRedis:
		client, err := redis.NewClient(redisCfg)
		if err != nil {
			return nil, err
		}
		return redis.NewOfferingStore(client, redisCfg.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStoreBackend, storeCfg.Backend)
	}
}

var (
	_ domain.OfferingStore = (*domain.InMemoryOfferingStore)(nil)
	_ domain.OfferingStore = (*redis.OfferingStore)(nil)
)
