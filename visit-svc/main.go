package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-booking/config"
	"restaurant-booking/logging"
	httpapi "restaurant-booking/visit-svc/internal/api/http"
	"restaurant-booking/visit-svc/internal/service"
	"restaurant-booking/visit-svc/internal/storage"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.New(os.Stdout, "visit-svc", logging.Config{
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

	kafkaWriter := config.NewKafkaWriter(cfg.Kafka)
	defer kafkaWriter.Close()

	repository := storage.NewPostgresRepository(db)
	if err := repository.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	locker := storage.NewRedisPaymentLock(rdb, cfg.PaymentLockTTL)
	publisher := storage.NewKafkaSettlementPublisher(kafkaWriter)
	allocator := service.NewTableAllocator(repository, cfg.MinReservationDuration)

	visits := service.NewVisitService(service.VisitDeps{
		Tx:          repository,
		Restaurants: repository,
		Visits:      repository,
		Orders:      repository,
		Allocator:   allocator,
		Wallet:      repository,
		Access:      repository,
		Locker:      locker,
		Settlement:  publisher,
		QR:          service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL},
		Logger:      logger,
	})
	payments := service.NewPaymentGate(repository, repository, repository, locker, publisher, logger)
	orders := service.NewOrderService(service.OrderDeps{
		Tx:         repository,
		Visits:     repository,
		Orders:     repository,
		Menu:       repository,
		Wallet:     repository,
		Employment: repository,
		Access:     repository,
		Settlement: publisher,
		Logger:     logger,
	})

	handler := httpapi.NewHandler(visits, payments, orders, httpapi.NewJWTValidator(cfg.JWTSecret), logger)
	server := httpapi.NewServer(cfg.HTTP.Addr, httpapi.NewRouter(handler), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	if err := httpapi.StartServer(server, logger); err != nil {
		log.Fatal("Visit Service stopped:", err)
	}
}
