package observability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/logger"
	"github.com/commercekit/event-delivery/internal/store"
	"github.com/commercekit/event-delivery/internal/store/schema"
	"github.com/commercekit/event-delivery/internal/transport"
	"github.com/commercekit/event-delivery/internal/webhook"
)

// FlusherConfig holds the flush cadence and fan-out bounds
type FlusherConfig struct {
	// FlushPeriod is how often the buffer is drained
	FlushPeriod time.Duration
	// BatchSize is the maximum number of events drained per flush
	BatchSize int
	// MaxWorkers bounds the per-webhook fan-out concurrency
	MaxWorkers int

	// PlatformDomain and APIURL identify this installation to receivers
	PlatformDomain string
	APIURL         string
}

// Flusher periodically drains the buffer and sends the drained events to
// every webhook subscribed to the observability event type. HTTP targets get
// the batch through client, which retries rate limiting and network errors
// with backoff; queue targets go through the dispatcher one event at a time.
type Flusher struct {
	buffer     *Buffer
	store      store.Store
	dispatcher *transport.Dispatcher
	client     adapter.HTTPClient
	pool       pond.Pool
	config     FlusherConfig
}

// NewFlusher creates a flusher. Zero config values fall back to defaults:
// 20s period, batches of 100, 8 workers.
func NewFlusher(
	buffer *Buffer,
	st store.Store,
	dispatcher *transport.Dispatcher,
	client adapter.HTTPClient,
	config FlusherConfig,
) *Flusher {
	if config.FlushPeriod == 0 {
		config.FlushPeriod = 20 * time.Second
	}
	if config.BatchSize == 0 {
		config.BatchSize = 100
	}
	if config.MaxWorkers == 0 {
		config.MaxWorkers = 8
	}

	return &Flusher{
		buffer:     buffer,
		store:      st,
		dispatcher: dispatcher,
		client:     client,
		pool:       pond.NewPool(config.MaxWorkers),
		config:     config,
	}
}

// Run flushes on the configured period until ctx is cancelled. The final
// flush on shutdown drains whatever the buffer still holds.
func (f *Flusher) Run(ctx context.Context) error {
	logger.Info("Starting observability flusher",
		zap.Duration("period", f.config.FlushPeriod),
		zap.Int("batchSize", f.config.BatchSize))

	ticker := time.NewTicker(f.config.FlushPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.Flush(context.WithoutCancel(ctx))
			f.pool.StopAndWait()
			return ctx.Err()
		case <-ticker.C:
			f.Flush(ctx)
		}
	}
}

// Flush drains one batch and fans it out to observability webhooks
func (f *Flusher) Flush(ctx context.Context) {
	if dropped := f.buffer.TakeDropped(); dropped > 0 {
		logger.WarnCtx(ctx, "Observability events dropped since last flush",
			zap.Int64("dropped", dropped))
	}

	batch := f.buffer.PopBatch(f.config.BatchSize)
	if len(batch) == 0 {
		return
	}

	webhooks, err := f.store.GetWebhooksForEvent(ctx, domain.EventTypeObservability)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to look up observability webhooks: %w", err))
		return
	}
	if len(webhooks) == 0 {
		logger.DebugCtx(ctx, "No observability webhooks registered, discarding batch",
			zap.Int("events", len(batch)))
		return
	}

	group := f.pool.NewGroup()
	for _, wh := range webhooks {
		wh := wh
		group.Submit(func() {
			f.sendToWebhook(ctx, wh, batch)
		})
	}
	group.Wait()
}

// sendToWebhook delivers one drained batch to one webhook. HTTP-like targets
// receive the whole batch in a single request; queue-like targets receive one
// message per event. Failed events are counted as dropped for that webhook.
func (f *Flusher) sendToWebhook(ctx context.Context, wh *schema.Webhook, batch []AttemptEvent) {
	target, err := url.Parse(wh.TargetURL)
	if err != nil {
		logger.WarnCtx(ctx, "Skipping observability webhook with invalid target",
			zap.Uint64("webhookID", wh.ID), zap.Error(err))
		return
	}

	var failed int
	switch target.Scheme {
	case webhook.SchemeHTTP, webhook.SchemeHTTPS:
		body, err := json.Marshal(batch)
		if err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to marshal observability batch: %w", err))
			return
		}
		if !f.postBatch(ctx, wh, body) {
			failed = len(batch)
		}
	default:
		for _, event := range batch {
			body, err := json.Marshal(event)
			if err != nil {
				failed++
				continue
			}
			if !f.send(ctx, wh, body) {
				failed++
			}
		}
	}

	if failed > 0 {
		logger.WarnCtx(ctx, "Observability events dropped for webhook",
			zap.Uint64("webhookID", wh.ID),
			zap.Int("dropped", failed))
	}
}

// postBatch sends one marshaled batch to an HTTP webhook. Diagnostic batches
// leave no attempt rows, so the client may retry transient failures freely.
func (f *Flusher) postBatch(ctx context.Context, wh *schema.Webhook, body []byte) bool {
	headers := webhook.SignedHeaders(body, wh.SecretKey,
		domain.EventTypeObservability.String(), f.config.PlatformDomain, f.config.APIURL)

	if _, err := f.client.Post(ctx, wh.TargetURL, headers, body); err != nil {
		logger.WarnCtx(ctx, "Observability batch post failed",
			zap.Uint64("webhookID", wh.ID), zap.Error(err))
		return false
	}

	return true
}

// send delivers one event to a queue-like webhook via the transport dispatcher
func (f *Flusher) send(ctx context.Context, wh *schema.Webhook, body []byte) bool {
	resp, err := f.dispatcher.Dispatch(ctx, transport.Request{
		TargetURL: wh.TargetURL,
		EventType: domain.EventTypeObservability,
		Payload:   body,
		Secret:    wh.SecretKey,
		Domain:    f.config.PlatformDomain,
		APIURL:    f.config.APIURL,
	})
	if err != nil {
		logger.WarnCtx(ctx, "Observability dispatch failed",
			zap.Uint64("webhookID", wh.ID), zap.Error(err))
		return false
	}

	return resp.Status == webhook.ResponseStatusSuccess
}
