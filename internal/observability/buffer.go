// Package observability collects diagnostic events about delivery attempts
// and periodically flushes them to webhooks subscribed to the observability
// event type. The buffer is bounded and lossy: reporting must never block or
// slow the delivery path.
package observability

import (
	"sync"
	"time"
)

// AttemptEvent is one diagnostic record describing a delivery attempt
type AttemptEvent struct {
	// DeliveryID is the delivery the attempt served
	DeliveryID uint64 `json:"delivery_id"`
	// AttemptID is the attempt row
	AttemptID uint64 `json:"attempt_id"`
	// WebhookID is the target webhook
	WebhookID uint64 `json:"webhook_id"`
	// EventType is the domain event type being delivered
	EventType string `json:"event_type"`
	// Status is the attempt outcome, success or failed
	Status string `json:"status"`
	// StatusCode is the HTTP status code, when one was received
	StatusCode *int `json:"status_code,omitempty"`
	// Duration is the transport call duration in seconds
	Duration float64 `json:"duration"`
	// TaskID is the background task that ran the attempt, if any
	TaskID *string `json:"task_id,omitempty"`
	// NextRetry is when the next attempt may start; nil when the delivery
	// reached a terminal state
	NextRetry *time.Time `json:"next_retry,omitempty"`
	// OccurredAt is when the attempt finished
	OccurredAt time.Time `json:"occurred_at"`
}

// Buffer is a bounded FIFO ring of attempt events. When full, offering a new
// event evicts the oldest one and counts the eviction.
type Buffer struct {
	mu      sync.Mutex
	events  []AttemptEvent
	head    int
	size    int
	dropped int64
}

// NewBuffer creates a buffer holding at most capacity events
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1
	}
	return &Buffer{events: make([]AttemptEvent, capacity)}
}

// Put offers an event to the buffer. It reports whether an older event was
// evicted to make room.
func (b *Buffer) Put(event AttemptEvent) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	tail := (b.head + b.size) % len(b.events)
	b.events[tail] = event

	if b.size == len(b.events) {
		// Full: the slot we just wrote was the oldest event
		b.head = (b.head + 1) % len(b.events)
		b.dropped++
		return true
	}

	b.size++
	return false
}

// PopBatch removes and returns up to n events in arrival order
func (b *Buffer) PopBatch(n int) []AttemptEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n > b.size {
		n = b.size
	}
	if n <= 0 {
		return nil
	}

	batch := make([]AttemptEvent, n)
	for i := 0; i < n; i++ {
		batch[i] = b.events[(b.head+i)%len(b.events)]
	}
	b.head = (b.head + n) % len(b.events)
	b.size -= n

	return batch
}

// Len returns the number of buffered events
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// TakeDropped returns the eviction count since the last call and resets it
func (b *Buffer) TakeDropped() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	dropped := b.dropped
	b.dropped = 0
	return dropped
}
