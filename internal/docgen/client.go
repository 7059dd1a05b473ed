package docgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mufiz-dev/invoice-studio/internal/resilience"
)

const maxErrorBodyBytes = 64 << 10

// HTTPGenerator calls the external generation endpoint over HTTP. Requests
// are never retried; a transport failure surfaces immediately to the caller.
type HTTPGenerator struct {
	endpoint string
	client   resilience.HTTPClient
}

// NewHTTPGenerator builds a generator for the given endpoint URL. The breaker
// may be nil when circuit breaking is not wanted.
func NewHTTPGenerator(endpoint string, timeout time.Duration, breaker *resilience.Breaker) *HTTPGenerator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPGenerator{
		endpoint: strings.TrimSpace(endpoint),
		client: resilience.HTTPClient{
			Client:      &http.Client{Timeout: timeout},
			Breaker:     breaker,
			MaxAttempts: 1,
			Timeout:     timeout,
		},
	}
}

// Generate posts the payload and returns the rendered document bytes. Error
// responses with a JSON {"error": "..."} body surface the service's message
// verbatim; anything else maps to the generic failure message.
func (g *HTTPGenerator) Generate(ctx context.Context, payload Payload) (*Result, error) {
	if g.endpoint == "" {
		return nil, fmt.Errorf("docgen: endpoint not configured")
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("docgen: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("docgen: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(ctx, req)
	if err != nil {
		return nil, &Error{StatusCode: 0, Message: GenericFailureMessage}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{StatusCode: resp.StatusCode, Message: errorMessage(resp)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{StatusCode: resp.StatusCode, Message: GenericFailureMessage}
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/pdf"
	}
	return &Result{
		FileName:    FileName(payload.InvoiceNumber, payload.InvoiceDate),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func errorMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil {
		return GenericFailureMessage
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil || strings.TrimSpace(body.Error) == "" {
		return GenericFailureMessage
	}
	return body.Error
}
