package messaging

import (
	"context"

	"github.com/commercekit/event-delivery/internal/domain"
)

// EventHandler is called once per received domain event. Returning an error
// requeues the message for redelivery.
type EventHandler func(ctx context.Context, event *domain.DomainEvent) error

// Subscriber defines the interface for consuming domain events from the
// event stream
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// Subscribe consumes events until ctx is cancelled, invoking handler for
	// each received event
	Subscribe(ctx context.Context, handler EventHandler) error

	// Close closes the connection and cleans up resources
	Close()
}
