package main

import (
	"context"
	"fmt"
	"net/http"

	credentialapp "github.com/adindapuspa/storesync/application/credential"
	productapp "github.com/adindapuspa/storesync/application/product"
	syncapp "github.com/adindapuspa/storesync/application/sync"
	"github.com/adindapuspa/storesync/cmd/config"
	redisclient "github.com/adindapuspa/storesync/cmd/redis"
	_ "github.com/adindapuspa/storesync/docs"
	productRepo "github.com/adindapuspa/storesync/repository/product"
	redisRepo "github.com/adindapuspa/storesync/repository/redis"
	txRepo "github.com/adindapuspa/storesync/repository/tx"
	"github.com/adindapuspa/storesync/thirdparty/etsy"
	"github.com/adindapuspa/storesync/thirdparty/rabbitmq"
	"github.com/adindapuspa/storesync/transport"
	"github.com/adindapuspa/storesync/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title STORESYNC API
// @version 1.0
// @description Etsy storefront sync service API Documentation
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize Etsy client
	EtsyClient := etsy.NewClient(cfg.Etsy)

	// Initialize RabbitMQ publisher for sync result events. The service
	// still runs without a broker, it just stops emitting events.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq publisher", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize application layers
	CredentialApp := credentialapp.NewCredentialApp(cfg, RedisRepo, EtsyClient)
	SyncApp := syncapp.NewSyncApp(cfg, TxRepo, ProductRepo, RedisRepo, EtsyClient, CredentialApp, publisher)
	ProductApp := productapp.NewProductApp(cfg, ProductRepo, RedisRepo)

	// Start the schedule consumer that triggers pulls on broker messages
	apiURL := fmt.Sprintf("http://localhost:%s", cfg.Server.Port)
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, apiURL, cfg.Sync.CronSecret)
	if err != nil {
		logger.Warn("err connect rabbitmq consumer", zap.Error(err))
	} else {
		if err := consumer.Start(context.Background()); err != nil {
			logger.Warn("err start schedule consumer", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()
	}

	httpTransport := transport.NewTransport(ProductApp, SyncApp, CredentialApp, cfg.Sync.CronSecret)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
