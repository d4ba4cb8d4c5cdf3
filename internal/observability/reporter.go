package observability

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/commercekit/event-delivery/internal/logger"
	"github.com/commercekit/event-delivery/internal/store/schema"
)

// Reporter normalizes recorded attempts into diagnostic events and offers
// them to the buffer. It implements delivery.AttemptObserver and never blocks.
type Reporter struct {
	buffer *Buffer
}

// NewReporter creates a reporter over the given buffer
func NewReporter(buffer *Buffer) *Reporter {
	return &Reporter{buffer: buffer}
}

// ObserveAttempt records one delivery attempt as a diagnostic event
func (r *Reporter) ObserveAttempt(ctx context.Context, d *schema.EventDelivery, attempt *schema.DeliveryAttempt, nextRetry *time.Time) {
	if d == nil || attempt == nil {
		return
	}

	event := AttemptEvent{
		DeliveryID: d.ID,
		AttemptID:  attempt.ID,
		WebhookID:  d.WebhookID,
		EventType:  d.EventType,
		Status:     string(attempt.Status),
		StatusCode: attempt.ResponseStatusCode,
		Duration:   attempt.Duration,
		TaskID:     attempt.TaskID,
		NextRetry:  nextRetry,
		OccurredAt: attempt.CreatedAt,
	}

	if r.buffer.Put(event) {
		logger.DebugCtx(ctx, "Observability buffer full, dropped oldest event",
			zap.Uint64("deliveryID", d.ID))
	}
}
