package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	addressapp "github.com/hoangtm/restaurant-ordering/application/address"
	orderapp "github.com/hoangtm/restaurant-ordering/application/order"
	userapp "github.com/hoangtm/restaurant-ordering/application/user"
	"github.com/hoangtm/restaurant-ordering/cmd/config"
	redisclient "github.com/hoangtm/restaurant-ordering/cmd/redis"
	"github.com/hoangtm/restaurant-ordering/constant"
	cartRepo "github.com/hoangtm/restaurant-ordering/repository/cart"
	catalogRepo "github.com/hoangtm/restaurant-ordering/repository/catalog"
	orderRepo "github.com/hoangtm/restaurant-ordering/repository/order"
	sequenceRepo "github.com/hoangtm/restaurant-ordering/repository/sequence"
	sessionRepo "github.com/hoangtm/restaurant-ordering/repository/session"
	txRepo "github.com/hoangtm/restaurant-ordering/repository/tx"
	userRepo "github.com/hoangtm/restaurant-ordering/repository/user"
	"github.com/hoangtm/restaurant-ordering/thirdparty/directory"
	"github.com/hoangtm/restaurant-ordering/thirdparty/rabbitmq"
	"github.com/hoangtm/restaurant-ordering/transport"
	"github.com/hoangtm/restaurant-ordering/utils/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

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
	TxRepo := txRepo.NewTxRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	SequenceRepo := sequenceRepo.NewSequenceRepository(db)
	CatalogRepo := catalogRepo.NewCatalogRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	CartRepo := cartRepo.NewCartRepository()
	SessionRepo := sessionRepo.NewSessionRepository()

	// Re-seed the order counter only after a data wipe
	resetSequenceIfEmpty(db, SequenceRepo)

	// RabbitMQ is optional; order creation proceeds without the event stream
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Host != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Warn("rabbitmq unavailable, order events disabled", zap.Error(err))
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize application layers
	DirectoryClient := directory.NewHTTPClient(cfg)
	AddressResolver := addressapp.NewResolver(DirectoryClient)
	ItemClassifier := orderapp.NewItemClassifier(CatalogRepo)
	UserApp := userapp.NewUserApp(cfg, UserRepo, SessionRepo)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, SequenceRepo, CatalogRepo, CartRepo, AddressResolver, ItemClassifier, publisher)

	httpTransport := transport.NewTransport(cfg, UserApp, OrderApp)

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

// resetSequenceIfEmpty zeroes the order counter when the order table is
// empty, so codes restart at 1 after a data wipe instead of drifting.
func resetSequenceIfEmpty(db *sqlx.DB, seq sequenceRepo.SequenceRepository) {
	ctx := context.Background()
	var count int64
	if err := db.QueryRowxContext(ctx, "SELECT COUNT(*) FROM `order`").Scan(&count); err != nil {
		logger.Warn("order count check failed, keeping sequence", zap.Error(err))
		return
	}
	if count == 0 {
		if err := seq.Reset(ctx, constant.SequenceOrder); err != nil {
			logger.Warn("order sequence reset failed", zap.Error(err))
		}
	}
}
