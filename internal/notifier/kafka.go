package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/atelier-commerce/order-service/internal/config"
	"github.com/atelier-commerce/order-service/internal/entities"

	"github.com/segmentio/kafka-go"
)

// kafkaNotifier publishes order status changes for downstream consumers
// (fulfilment mailer, admin dashboard). Messages are keyed by session id
// so changes for one order stay in partition order.
type kafkaNotifier struct {
	logger *slog.Logger
	writer *kafka.Writer
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("notifier", "kafka")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

type statusChangeMessage struct {
	OrderID    int64     `json:"order_id"`
	SessionID  string    `json:"session_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (n *kafkaNotifier) OrderStatusChanged(ctx context.Context, change entities.OrderStatusChange) error {
	value, err := json.Marshal(statusChangeMessage{
		OrderID:    change.OrderID,
		SessionID:  change.SessionID,
		Status:     string(change.Status),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal status change: %w", err)
	}

	// The library already retries transient broker errors.
	if err := n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(change.SessionID),
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to write status change: %w", err)
	}

	n.logger.DebugContext(ctx, "status change published",
		slog.Int64("order_id", change.OrderID),
		slog.String("status", string(change.Status)),
	)
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}
