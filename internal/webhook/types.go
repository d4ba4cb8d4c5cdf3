package webhook

import "time"

// Scheme constants for webhook target URLs. The URL scheme selects the
// transport used for delivery.
const (
	SchemeHTTP   = "http"
	SchemeHTTPS  = "https"
	SchemeAWSSQS = "awssqs"
	SchemePubSub = "gcpubsub"
)

// ResponseStatus is the outcome of a single transport call.
type ResponseStatus string

const (
	// ResponseStatusSuccess marks a transport call that was accepted by the receiver
	ResponseStatusSuccess ResponseStatus = "success"
	// ResponseStatusFailed marks a transport call that failed at any level
	ResponseStatusFailed ResponseStatus = "failed"
)

// Response is the normalized outcome of one transport attempt. It is
// transient: the delivery attempt row copies its fields, the value itself is
// never persisted.
type Response struct {
	// Content is the response body, the broker acknowledgement, or the error
	// text when the call failed before a response was received
	Content string
	// RequestHeaders are the headers sent with the request (HTTP only)
	RequestHeaders map[string]string
	// ResponseHeaders are the headers returned by the receiver (HTTP only)
	ResponseHeaders map[string]string
	// StatusCode is the HTTP status code, when one was received
	StatusCode *int
	// Duration is wall-clock time around the transport call only
	Duration time.Duration
	// Status is success or failed
	Status ResponseStatus
}

// FailedResponse builds a failed Response carrying the given error text.
func FailedResponse(content string) Response {
	return Response{Content: content, Status: ResponseStatusFailed}
}
