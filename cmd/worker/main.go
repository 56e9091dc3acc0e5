package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/youapp/youapp-api/internal/application/service"
	"github.com/youapp/youapp-api/internal/config"
	"github.com/youapp/youapp-api/pkg/logger"
)

// The worker drains the notify topic and hands each event to whatever push
// transport is configured. Delivery receipts (delivered/read transitions)
// are out of scope; right now dispatch means a structured log line the
// mobile gateway tails.
func main() {

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting YouApp notification worker...")

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.Kafka.NotifyTopic,
		GroupID:  "notification-dispatcher-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", cfg.Kafka.NotifyTopic))

	ctx := context.Background()
	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to fetch message from Kafka", err)
			continue
		}

		var ev service.NotificationEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			appLogger.Error("Failed to unmarshal notification event, skipping", err,
				zap.String("key", string(msg.Key)))
			commitMessage(consumer, msg, appLogger)
			continue
		}

		dispatch(ev, appLogger)
		commitMessage(consumer, msg, appLogger)
	}
}

func dispatch(ev service.NotificationEvent, log logger.Logger) {
	log.Info("Dispatching notification",
		zap.String("type", ev.Type),
		zap.String("message_id", ev.MessageID),
		zap.String("to", ev.To),
	)
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
