// Package payload renders the bytes actually delivered to webhooks. Two
// rendering modes exist: fixed-schema payloads built by a per-event-type
// generator registry, and subscription payloads projected from the event
// document by the webhook's stored subscription query. Rendered bytes are
// canonicalized (RFC 8785) so a payload is byte-stable across renders and
// signatures over it are reproducible.
package payload

import (
	"encoding/json"
	"fmt"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/subscription"
)

// SchemaVersion is reported in payload metadata
const SchemaVersion = "1.0"

// Generator builds the fixed-schema payload document for one event type
type Generator func(event *domain.DomainEvent, rc *domain.RenderContext) (interface{}, error)

// Renderer renders delivery payloads
type Renderer struct {
	jcs        adapter.JCS
	generators map[domain.EventType]Generator
}

// NewRenderer creates a renderer with the default generator registry. The
// registry is closed after construction: rendering an event type without a
// registered generator is an error, never a silently empty payload.
func NewRenderer(jcs adapter.JCS) *Renderer {
	r := &Renderer{
		jcs:        jcs,
		generators: map[domain.EventType]Generator{},
	}

	for _, eventType := range domain.AsyncEventTypes {
		if eventType == domain.EventTypeAny {
			continue
		}
		r.generators[eventType] = defaultGenerator
	}
	for _, eventType := range domain.SyncEventTypes {
		r.generators[eventType] = defaultGenerator
	}

	return r
}

// RenderFixed renders the fixed-schema payload for an event
func (r *Renderer) RenderFixed(event *domain.DomainEvent, rc *domain.RenderContext) ([]byte, error) {
	gen, ok := r.generators[event.EventType]
	if !ok {
		return nil, fmt.Errorf("event type %s: %w", event.EventType, domain.ErrUnknownPayloadGenerator)
	}

	doc, err := gen(event, rc)
	if err != nil {
		return nil, fmt.Errorf("failed to generate payload for %s: %w", event.EventType, err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	canonical, err := r.jcs.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize payload: %w", err)
	}

	return canonical, nil
}

// RenderSubscription renders a webhook's subscription payload for an event.
// Returns nil bytes with no error when the query projects nothing for the
// event type; callers decide whether that is fatal.
func (r *Renderer) RenderSubscription(query string, event *domain.DomainEvent, rc *domain.RenderContext) ([]byte, error) {
	parsed, err := subscription.Parse(query)
	if err != nil {
		return nil, err
	}

	document, err := eventDocument(event, rc)
	if err != nil {
		return nil, err
	}

	result, err := parsed.Project(event.EventType, document)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal subscription payload: %w", err)
	}

	canonical, err := r.jcs.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize subscription payload: %w", err)
	}

	return canonical, nil
}

// eventDocument builds the queryable document for a subscription: the event
// object keys merged with the shared event metadata fields.
func eventDocument(event *domain.DomainEvent, rc *domain.RenderContext) (map[string]interface{}, error) {
	document := map[string]interface{}{}
	if len(event.Object) > 0 {
		if err := json.Unmarshal(event.Object, &document); err != nil {
			return nil, fmt.Errorf("failed to decode event object: %w", err)
		}
	}

	document["issuedAt"] = rc.IssuedAt.Format("2006-01-02T15:04:05Z07:00")
	document["version"] = SchemaVersion
	if rc.Requestor != nil {
		document["issuingPrincipal"] = map[string]interface{}{
			"id":    rc.Requestor.ID,
			"type":  rc.Requestor.Type,
			"email": rc.Requestor.Email,
		}
	} else {
		document["issuingPrincipal"] = nil
	}

	return document, nil
}

// defaultGenerator wraps the producer-supplied fixed payload with the shared
// metadata block. List payloads get the metadata attached per element.
func defaultGenerator(event *domain.DomainEvent, rc *domain.RenderContext) (interface{}, error) {
	meta := map[string]interface{}{
		"issued_at": rc.IssuedAt.Format("2006-01-02T15:04:05Z07:00"),
		"version":   SchemaVersion,
	}
	if rc.Requestor != nil {
		meta["issuing_principal"] = map[string]interface{}{
			"id":   rc.Requestor.ID,
			"type": rc.Requestor.Type,
		}
	} else {
		meta["issuing_principal"] = nil
	}

	if len(event.Data) == 0 {
		return map[string]interface{}{"meta": meta}, nil
	}

	var doc interface{}
	if err := json.Unmarshal(event.Data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode event data: %w", err)
	}

	switch node := doc.(type) {
	case map[string]interface{}:
		node["meta"] = meta
		return node, nil
	case []interface{}:
		for _, item := range node {
			if obj, ok := item.(map[string]interface{}); ok {
				obj["meta"] = meta
			}
		}
		return node, nil
	default:
		return map[string]interface{}{"data": doc, "meta": meta}, nil
	}
}
