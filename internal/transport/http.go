package transport

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/commercekit/event-delivery/internal/adapter"
	"github.com/commercekit/event-delivery/internal/webhook"
)

// httpTransport delivers payloads as signed JSON POSTs
type httpTransport struct {
	client adapter.HTTPClient
}

// NewHTTPTransport creates the http/https transport
func NewHTTPTransport(client adapter.HTTPClient) Transport {
	return &httpTransport{client: client}
}

func (t *httpTransport) Send(ctx context.Context, target *url.URL, req Request) webhook.Response {
	headers := webhook.SignedHeaders(req.Payload, req.Secret, req.EventType.String(), req.Domain, req.APIURL)

	resp, err := t.client.Do(ctx, http.MethodPost, target.String(), headers, req.Payload)
	if err != nil {
		failed := webhook.FailedResponse(err.Error())
		failed.RequestHeaders = headers
		return failed
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	statusCode := resp.StatusCode
	result := webhook.Response{
		Content:         string(body),
		RequestHeaders:  headers,
		ResponseHeaders: flattenHeaders(resp.Header),
		StatusCode:      &statusCode,
		Status:          webhook.ResponseStatusFailed,
	}
	if err != nil {
		// Keep the partial body and status code; the read error decides the outcome
		result.Content = err.Error()
		return result
	}

	if statusCode >= 200 && statusCode < 300 {
		result.Status = webhook.ResponseStatusSuccess
	}

	return result
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for key, values := range h {
		out[key] = strings.Join(values, "; ")
	}
	return out
}
