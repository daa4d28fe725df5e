package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hoangtm/restaurant-ordering/cmd/config"
	"github.com/hoangtm/restaurant-ordering/thirdparty/rabbitmq"
	"github.com/hoangtm/restaurant-ordering/utils/logger"
	"go.uber.org/zap"
)

// Drains order_created events and forwards each to the kitchen-notification
// endpoint. Runs as its own process so a slow kitchen callback never blocks
// order intake.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.RabbitMQ.Host == "" {
		logger.Fatal("RABBITMQ_HOST is required for the consumer")
	}

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
		cfg.Internal.BaseURL, cfg.Internal.APIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("order_created consumer running")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("consumer shutting down")
}
