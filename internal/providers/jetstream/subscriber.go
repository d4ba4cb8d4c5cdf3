package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/logger"
	"github.com/commercekit/event-delivery/internal/messaging"
)

// SubscriberConfig holds the configuration for a durable JetStream consumer
type SubscriberConfig struct {
	Config

	ConsumerName   string
	AckWaitTimeout time.Duration
	MaxDeliver     int
}

type subscriber struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	json   adapter.JSON
	config SubscriberConfig
}

// NewSubscriber creates a new NATS JetStream subscriber
func NewSubscriber(cfg SubscriberConfig, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Subscriber, error) {
	nc, js, err := connect(cfg.URL, cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait, natsJS)
	if err != nil {
		return nil, err
	}

	return &subscriber{
		nc:     nc,
		js:     js,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// Subscribe consumes domain events until ctx is cancelled
func (s *subscriber) Subscribe(ctx context.Context, handler messaging.EventHandler) error {
	logger.Info("Starting event subscription",
		zap.String("stream", s.config.StreamName),
		zap.String("consumer", s.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       s.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       s.config.AckWaitTimeout,
		MaxDeliver:    s.config.MaxDeliver,
		FilterSubject: "events.>",
	}

	consumer, err := s.js.CreateOrUpdateConsumer(ctx, s.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	// Messages on one consumer are processed sequentially so redeliveries of
	// the same event cannot race each other
	sub, err := consumer.Consume(func(msg adapter.Message) {
		s.handleMessage(ctx, handler, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	<-ctx.Done()
	logger.Info("Shutting down event subscription")
	return ctx.Err()
}

// handleMessage processes a single NATS message. Unparseable messages are
// terminated, handler failures are NAKed for redelivery, everything else is
// ACKed.
func (s *subscriber) handleMessage(ctx context.Context, handler messaging.EventHandler, msg adapter.Message) {
	metadata, _ := msg.Metadata()

	var event domain.DomainEvent
	if err := s.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	deliveryCount := uint64(1)
	if metadata != nil {
		deliveryCount = metadata.NumDelivered
	}
	logger.Info("Received event",
		zap.String("eventID", event.EventID),
		zap.String("eventType", string(event.EventType)),
		zap.Uint64("deliveryCount", deliveryCount),
	)

	if err := handler(ctx, &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to process event"))
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// Close closes the NATS connection
func (s *subscriber) Close() {
	if s.nc == nil {
		return
	}

	s.nc.Close()
}
