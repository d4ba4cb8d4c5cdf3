package domain

import (
	"encoding/json"
	"time"
)

// Requestor identifies the user or app on whose behalf a domain event was
// produced. It is carried into subscription payload meta fields.
type Requestor struct {
	// ID is the user or app identifier
	ID string `json:"id"`
	// Type is either "user" or "app"
	Type string `json:"type"`
	// Email is set for user requestors only
	Email string `json:"email,omitempty"`
}

// RenderContext is the immutable execution context for subscription payload
// rendering. For sync events one context is built lazily per coordinator
// invocation and shared across every webhook call in that invocation; it must
// never be mutated after construction.
type RenderContext struct {
	// Requestor is the identity that produced the event, if known
	Requestor *Requestor
	// Sync is true when the context serves a sync event call chain
	Sync bool
	// IssuedAt is the time the context was built
	IssuedAt time.Time
}

// NewRenderContext builds a render context for the given requestor.
func NewRenderContext(requestor *Requestor, sync bool, issuedAt time.Time) *RenderContext {
	return &RenderContext{
		Requestor: requestor,
		Sync:      sync,
		IssuedAt:  issuedAt,
	}
}

// DomainEvent is the envelope the commerce platform publishes to the event
// stream when a business event fires. The subsystem treats Object as opaque:
// it is only ever projected by subscription queries or passed through to
// fixed-schema payload generators.
type DomainEvent struct {
	// EventID is a ULID assigned by the publisher, unique and time-sortable
	EventID string `json:"event_id"`
	// EventType is the domain event type that fired
	EventType EventType `json:"event_type"`
	// Object is the JSON document of the subscribable object at event time
	Object json.RawMessage `json:"object,omitempty"`
	// Data is an optional prebuilt legacy payload; when present it is used
	// verbatim for webhooks without a subscription query
	Data json.RawMessage `json:"data,omitempty"`
	// Requestor is the identity that triggered the event, if any
	Requestor *Requestor `json:"requestor,omitempty"`
	// OccurredAt is when the event fired
	OccurredAt time.Time `json:"occurred_at"`
}
