package payload

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/domain"
)

func testRenderContext() *domain.RenderContext {
	return domain.NewRenderContext(&domain.Requestor{
		ID:    "VXNlcjox",
		Type:  "user",
		Email: "admin@example.com",
	}, false, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestRenderFixed(t *testing.T) {
	r := NewRenderer(adapter.NewJCS())

	event := &domain.DomainEvent{
		EventID:   "01HXYZ",
		EventType: domain.EventTypeOrderCreated,
		Data:      json.RawMessage(`{"id":"T3JkZXI6MQ==","number":"1"}`),
	}

	payload, err := r.RenderFixed(event, testRenderContext())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &doc))
	assert.Equal(t, "T3JkZXI6MQ==", doc["id"])

	meta, ok := doc["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2024-01-01T00:00:00Z", meta["issued_at"])
	principal, ok := meta["issuing_principal"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "user", principal["type"])
}

func TestRenderFixedDeterministic(t *testing.T) {
	r := NewRenderer(adapter.NewJCS())
	rc := testRenderContext()

	event := &domain.DomainEvent{
		EventType: domain.EventTypeOrderCreated,
		Data:      json.RawMessage(`{"b":2,"a":1,"c":{"z":true,"y":false}}`),
	}

	first, err := r.RenderFixed(event, rc)
	require.NoError(t, err)
	second, err := r.RenderFixed(event, rc)
	require.NoError(t, err)

	// Canonicalization makes rendered bytes stable across renders
	assert.Equal(t, first, second)
}

func TestRenderFixedListPayload(t *testing.T) {
	r := NewRenderer(adapter.NewJCS())

	event := &domain.DomainEvent{
		EventType: domain.EventTypeOrderCreated,
		Data:      json.RawMessage(`[{"id":"1"},{"id":"2"}]`),
	}

	payload, err := r.RenderFixed(event, testRenderContext())
	require.NoError(t, err)

	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &docs))
	require.Len(t, docs, 2)
	for _, doc := range docs {
		assert.Contains(t, doc, "meta")
	}
}

func TestRenderFixedUnknownEventType(t *testing.T) {
	r := NewRenderer(adapter.NewJCS())

	event := &domain.DomainEvent{
		EventType: domain.EventType("never_registered"),
		Data:      json.RawMessage(`{}`),
	}

	_, err := r.RenderFixed(event, testRenderContext())
	assert.ErrorIs(t, err, domain.ErrUnknownPayloadGenerator)
}

func TestRenderSubscription(t *testing.T) {
	r := NewRenderer(adapter.NewJCS())

	event := &domain.DomainEvent{
		EventType: domain.EventTypeOrderCreated,
		Object:    json.RawMessage(`{"order":{"id":"T3JkZXI6MQ==","number":"1","total":"100.00"}}`),
	}

	payload, err := r.RenderSubscription(`
		subscription {
			event {
				issuedAt
				... on OrderCreated {
					order { number }
				}
			}
		}`, event, testRenderContext())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &doc))
	assert.Equal(t, "2024-01-01T00:00:00Z", doc["issuedAt"])
	order, ok := doc["order"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1", order["number"])
	assert.NotContains(t, order, "total")
}

func TestRenderSubscriptionEmptyProjection(t *testing.T) {
	r := NewRenderer(adapter.NewJCS())

	event := &domain.DomainEvent{
		EventType: domain.EventTypeOrderCreated,
		Object:    json.RawMessage(`{"order":{"id":"1"}}`),
	}

	payload, err := r.RenderSubscription(`
		subscription {
			event {
				... on ProductCreated {
					product { id }
				}
			}
		}`, event, testRenderContext())
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestRenderSubscriptionInvalidQuery(t *testing.T) {
	r := NewRenderer(adapter.NewJCS())

	event := &domain.DomainEvent{EventType: domain.EventTypeOrderCreated}

	_, err := r.RenderSubscription(`query { event { issuedAt } }`, event, testRenderContext())
	assert.Error(t, err)
}
