package domain

import "errors"

var (
	// ErrUnknownWebhookScheme is returned when a webhook target URL carries a
	// scheme with no registered transport. This is a configuration error and
	// is never retried.
	ErrUnknownWebhookScheme = errors.New("unknown webhook scheme")

	// ErrNoWebhook is returned by the single-webhook sync trigger when the
	// caller supplied no webhook for the event type
	ErrNoWebhook = errors.New("no webhook found for event")

	// ErrEmptySubscriptionPayload is returned when a subscription query
	// produced no data for a sync event that requires an authoritative answer
	ErrEmptySubscriptionPayload = errors.New("no payload was generated with subscription query")

	// ErrEventNotSubscribable is returned when an event type has no entry in
	// the subscribable-event-type map
	ErrEventNotSubscribable = errors.New("event type is not subscribable")

	// ErrDeliveryNotFound is returned when a scheduled delivery row no longer
	// exists; callers treat it as a soft failure and do not requeue
	ErrDeliveryNotFound = errors.New("event delivery not found")

	// ErrMissingPayload is returned when a delivery row has no payload attached
	ErrMissingPayload = errors.New("event delivery has no payload")

	// ErrUnknownPayloadGenerator is returned by the fixed-schema renderer when
	// no generator is registered for the event type
	ErrUnknownPayloadGenerator = errors.New("no payload generator registered for event type")
)
