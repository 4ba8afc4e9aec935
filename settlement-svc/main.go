package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-booking/config"
	"restaurant-booking/logging"
	httpapi "restaurant-booking/settlement-svc/internal/api/http"
	"restaurant-booking/settlement-svc/internal/service"
	"restaurant-booking/settlement-svc/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.New(os.Stdout, "settlement-svc", logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	ledger := storage.NewLedger(db)
	if err := ledger.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}
	cache := storage.NewRedisRevenueCache(rdb)

	consumer := service.NewConsumer(reader, ledger, cache, logger)
	go consumer.Start(ctx)

	handler := httpapi.NewHandler(service.NewRevenueService(ledger, cache, logger, nil), logger)
	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      httpapi.NewRouter(handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	if err := httpapi.StartServer(server, logger); err != nil {
		log.Fatal("Settlement Service stopped:", err)
	}
}
