package main

// @title           Social Media API
// @version         1.0
// @description     A RESTful API for user accounts, friend requests, posts and a friend-scoped activity feed
// @host            localhost:3000
// @BasePath        /api
// @schemes         http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"

	"github.com/pkjaknap/social-media-API/internal/adapters/kafka"
	"github.com/pkjaknap/social-media-API/internal/api/routes"
	"github.com/pkjaknap/social-media-API/internal/config"
	"github.com/pkjaknap/social-media-API/internal/database"
	"github.com/pkjaknap/social-media-API/internal/repositories/mongodb"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting social media server")

	// Initialize MongoDB connection
	mongoDB, err := database.NewMongoConnection(cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoDB.Close(ctx); err != nil {
			slog.Error("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongodb.EnsureIndexes(ctx, mongoDB.DB); err != nil {
		cancel()
		slog.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}
	cancel()

	// Initialize Redis connection
	redisClient, err := database.NewRedisConnection(cfg.Redis.URL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// Initialize Kafka producer; publishing is off when no brokers are
	// configured.
	var producer sarama.SyncProducer
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err = kafka.InitKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			slog.Error("Failed to connect to Kafka", "error", err)
			os.Exit(1)
		}
		defer producer.Close()
	} else {
		slog.Info("Kafka brokers not configured, event publishing disabled")
	}

	// Initialize router with all dependencies
	router := routes.NewRouter(mongoDB.DB, redisClient, producer, cfg)
	router.SetupRoutes()

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.GetEngine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
