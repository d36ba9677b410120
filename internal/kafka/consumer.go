package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Domenick1991/aerolinea/config"
)

// EventHandler receives events decoded from the notifications topic.
type EventHandler func(ctx context.Context, event Event) error

// Consumer reads store events from the notifications topic as part of the
// configured consumer group.
type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(cfg config.KafkaConfig) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           cfg.Brokers,
			GroupID:           cfg.GroupID,
			Topic:             cfg.NotificationsTopic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume hands each event to handle until ctx ends or handle fails.
func (c *Consumer) Consume(ctx context.Context, handle EventHandler) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}
		if err := dispatch(ctx, msg, handle); err != nil {
			return fmt.Errorf("handle message at offset %d: %w", msg.Offset, err)
		}
	}
}

// dispatch skips payloads that are not events so one bad message does not
// stall the group.
func dispatch(ctx context.Context, msg kafka.Message, handle EventHandler) error {
	var event Event
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Printf("decode event error at offset %d: %v", msg.Offset, err)
		return nil
	}
	switch event.Type {
	case EventPaymentCreated, EventTicketIssued:
		return handle(ctx, event)
	default:
		log.Printf("skipping event %q at offset %d", event.Type, msg.Offset)
		return nil
	}
}
