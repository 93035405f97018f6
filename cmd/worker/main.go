package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"flightdesk/config"
	"flightdesk/internal/email"
	"flightdesk/internal/kafka"
	"flightdesk/internal/notify"
	"flightdesk/pkg/logger"

	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
)

// The worker drains the notifications topic and turns each event into an
// outbound mail. The API never waits for it; a stopped worker only delays
// mail, never requests.
func main() {
	_ = godotenv.Load()

	log := logger.NewLogger()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal("load config", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(log)

	log.Info("starting notification worker", "topic", cfg.Kafka.NotificationsTopic)
	err = consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event notify.Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Warn("decode event failed", "error", err)
			return nil
		}
		return sender.Send(ctx, event)
	})
	if err != nil && ctx.Err() == nil {
		log.Fatal("consumer stopped", "error", err)
	}
	log.Info("worker shut down")
}
