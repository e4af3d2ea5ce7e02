package events

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/wcoetsee/pricescout/internal/config"
	"github.com/wcoetsee/pricescout/internal/pkg/logger"
)

// EventHandler processes a decoded event payload
type EventHandler func(event map[string]any)

// Consumer subscribes to price event subjects over core NATS
type Consumer struct {
	conn   *nats.Conn
	logger *logger.Logger
	subs   []*nats.Subscription
}

// NewConsumer connects to the NATS server and returns a consumer
func NewConsumer(cfg *config.Config, log *logger.Logger) (*Consumer, error) {
	conn, err := nats.Connect(cfg.NATS.URL,
		nats.Name("pricescout-consumer"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.WithFields(map[string]any{
		"url": cfg.NATS.URL,
	}).Info("Connected to NATS server")

	return &Consumer{
		conn:   conn,
		logger: log,
	}, nil
}

// Subscribe registers a handler for the given subject
func (c *Consumer) Subscribe(subject string, handler EventHandler) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		var event map[string]any
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			c.logger.WithFields(map[string]any{
				"subject": msg.Subject,
			}).Error("Failed to unmarshal event", err)
			return
		}
		handler(event)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	c.subs = append(c.subs, sub)
	c.logger.WithFields(map[string]any{
		"subject": subject,
	}).Info("Subscribed to subject")

	return nil
}

// Close drains all subscriptions and closes the connection
func (c *Consumer) Close() {
	for _, sub := range c.subs {
		if err := sub.Drain(); err != nil {
			c.logger.WithFields(map[string]any{
				"subject": sub.Subject,
			}).Error("Failed to drain subscription", err)
		}
	}
	c.conn.Close()
	c.logger.Info("NATS consumer closed")
}

// LoggingHandler returns a handler that logs every received event
func LoggingHandler(log *logger.Logger) EventHandler {
	return func(event map[string]any) {
		log.WithFields(map[string]any{
			"event_type": event["event_type"],
			"product_id": event["product_id"],
			"timestamp":  event["timestamp"],
		}).Info("Received price event")
	}
}
