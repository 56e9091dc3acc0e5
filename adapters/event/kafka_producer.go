package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/youapp/youapp-api/internal/application/service"
	"github.com/youapp/youapp-api/internal/config"
	"github.com/youapp/youapp-api/pkg/logger"
)

const (
	connectMaxAttempts = 10
	connectBackoffStep = time.Second
)

// NotificationProducer publishes notification events to the notify topic.
// Connecting to the broker happens in the background with bounded linear
// backoff; until it succeeds, Publish is a logged no-op so a slow or absent
// broker never takes the API down with it.
type NotificationProducer struct {
	writer *kafka.Writer
	ready  atomic.Bool
	logger logger.Logger
}

func NewNotificationProducer(cfg config.Config, log logger.Logger) (*NotificationProducer, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.Kafka.NotifyTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	p := &NotificationProducer{
		writer: writer,
		logger: log,
	}
	go p.connect(brokers[0])

	return p, nil
}

func (p *NotificationProducer) connect(broker string) {
	for attempt := 1; attempt <= connectMaxAttempts; attempt++ {
		conn, err := kafka.Dial("tcp", broker)
		if err == nil {
			conn.Close()
			p.ready.Store(true)
			p.logger.Info("Kafka ready", zap.String("broker", broker))
			return
		}

		p.logger.Warn("Kafka connect failed",
			zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(time.Duration(attempt) * connectBackoffStep)
	}

	p.logger.Error("Kafka not ready after retries, notifications will be dropped", nil)
}

// Ready reports whether the startup connection check has succeeded.
func (p *NotificationProducer) Ready() bool {
	return p.ready.Load()
}

func (p *NotificationProducer) Publish(ctx context.Context, e service.NotificationEvent) error {
	if !p.ready.Load() {
		p.logger.Warn("Notification publish skipped: broker not ready",
			zap.String("message_id", e.MessageID))
		return nil
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cannot marshal notification event: %w", err)
	}

	// Key by recipient so one consumer partition sees a user's
	// notifications in order.
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.To),
		Value: payload,
	})
}

func (p *NotificationProducer) Close() {
	if p.writer != nil {
		p.writer.Close()
	}
	p.logger.Info("Closed Kafka producer")
}
