package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/account"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/auth"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/clients"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/config"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/db"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/httpapi"
	"github.com/KARINGU-RAVI/Nxt-trendz-app/internal/kv"
)

func main() {
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	cfg := config.Load()

	blobs, cleanup, err := newBlobStore(cfg, logger)
	if err != nil {
		logger.Fatalf("init blob store: %v", err)
	}
	defer cleanup()

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	authClient := clients.NewAuthClient(
		clients.NewClient("auth", cfg.AuthURL, httpClient),
		cfg.AuthUsername, cfg.AuthPassword,
	)
	catalogClient := clients.NewCatalogClient(clients.NewClient("catalog", cfg.CatalogURL, httpClient))

	flow := auth.NewFlow(account.NewStore(blobs), authClient)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:  logger,
		Cfg:     cfg,
		Blobs:   blobs,
		Flow:    flow,
		Catalog: catalogClient,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront listening on :%s (kv backend %s)", cfg.Port, cfg.KVBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}

func newBlobStore(cfg config.Config, logger *log.Logger) (kv.Store, func(), error) {
	switch cfg.KVBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return kv.NewRedis(client), func() { _ = client.Close() }, nil

	case "postgres":
		if err := db.RunMigrations(cfg.PostgresDSN, logger); err != nil {
			return nil, nil, err
		}
		pool, err := db.NewPool(context.Background(), cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewPostgres(pool), pool.Close, nil

	default:
		return kv.NewMemory(), func() {}, nil
	}
}
