package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/catalog"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/checkout"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/display"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/server"
)

type Config struct {
	HTTPPort        string
	KafkaBrokers    string
	OrdersTopic     string
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("POS_HTTP_PORT", "8080"),
		KafkaBrokers:    getEnv("POS_KAFKA_BROKERS", ""),
		OrdersTopic:     getEnv("POS_ORDERS_TOPIC", "pos.orders"),
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	store, customer := catalog.SeedDemo()

	sinks := display.Multi{display.NewConsole(os.Stdout)}
	if brokers := display.ParseBrokers(cfg.KafkaBrokers); len(brokers) > 0 {
		kafkaSink := display.NewKafkaSink(brokers, cfg.OrdersTopic)
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
		log.Printf("Publishing order events to %v topic %s", brokers, cfg.OrdersTopic)
	}

	svc := checkout.NewService(sinks)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      server.New(store, customer, svc).Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("POS server listening on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down POS server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
