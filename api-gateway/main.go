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

	"restaurant-booking/api-gateway/internal/gateway"
	"restaurant-booking/config"
	"restaurant-booking/logging"

	"github.com/rs/cors"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.New(os.Stdout, "api-gateway", logging.Config{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
	})

	gw := gateway.NewGateway(gateway.Config{
		VisitSvcURL:      cfg.Upstreams.VisitSvcURL,
		SettlementSvcURL: cfg.Upstreams.SettlementSvcURL,
	}, &http.Client{Timeout: 30 * time.Second}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      c.Handler(gw.SetupRoutes()),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	logger.Info("API Gateway starting", slog.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("API Gateway stopped:", err)
	}
}
