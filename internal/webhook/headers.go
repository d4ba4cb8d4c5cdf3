package webhook

import "strings"

// HTTP header names carried on every webhook POST. The X- prefixed forms are
// deprecated but still emitted so receivers built against the old header set
// keep working; new receivers should read the unprefixed forms.
const (
	HeaderEventType = "Saleor-Event"
	HeaderDomain    = "Saleor-Domain"
	HeaderSignature = "Saleor-Signature"
	HeaderAPIURL    = "Saleor-Api-Url"

	DeprecatedHeaderEventType = "X-Saleor-Event"
	DeprecatedHeaderDomain    = "X-Saleor-Domain"
	DeprecatedHeaderSignature = "X-Saleor-Signature"
)

// SignedHeaders builds the header set carried on a webhook POST: content
// type, event identification and, when secret is non-empty, the payload
// signature. Both the current and the deprecated X- prefixed forms go out so
// receivers can migrate at their own pace.
func SignedHeaders(payload []byte, secret, eventType, domain, apiURL string) map[string]string {
	eventType = strings.ToLower(eventType)
	headers := map[string]string{
		"Content-Type":            "application/json",
		HeaderEventType:           eventType,
		HeaderDomain:              domain,
		HeaderAPIURL:              apiURL,
		DeprecatedHeaderEventType: eventType,
		DeprecatedHeaderDomain:    domain,
	}
	if signature := SignPayload(payload, secret); signature != "" {
		headers[HeaderSignature] = signature
		headers[DeprecatedHeaderSignature] = signature
	}
	return headers
}

// SQS message attribute names.
const (
	SQSAttrDomain    = "SaleorDomain"
	SQSAttrAPIURL    = "SaleorApiUrl"
	SQSAttrEventType = "EventType"
	SQSAttrSignature = "Signature"
)

// Pub/Sub publish attribute names.
const (
	PubSubAttrDomain    = "saleorDomain"
	PubSubAttrAPIURL    = "saleorApiUrl"
	PubSubAttrEventType = "eventType"
	PubSubAttrSignature = "signature"
)
