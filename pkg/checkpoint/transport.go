package checkpoint

import (
	"context"
	"io"
	"net/http"
	"time"
)

// Response is the minimal shape the normalizer needs out of a completed
// HTTP round trip: the status code and the raw body.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport is the one-method capability L3 depends on: given a URL,
// return a response or a transport-level error. Implementations MUST be
// safe for concurrent use, since the HTTP server shares a single Transport
// across all inbound requests (spec §5).
//
// No retries, no timeouts are mandated by the port itself; the fan-out
// above it imposes none either (spec §9 open question #3 — a known gap).
type Transport interface {
	Get(ctx context.Context, url string) (*Response, error)
}

// HTTPTransport is the real Transport, backed by a shared *http.Client.
// Mirrors the raw GET construction of the ethpandaops/beacon consensus
// client, minus the response-type unmarshalling (the normalizer owns that
// here).
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport returns a Transport using client, or a freshly
// constructed *http.Client with no timeout set (§9: timeouts are a known
// gap the implementer may close; this one doesn't) when client is nil.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = &http.Client{}
	}

	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	rsp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer rsp.Body.Close()

	body, err := io.ReadAll(rsp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: rsp.StatusCode, Body: body}, nil
}

// DefaultHTTPClient returns a plain *http.Client. Split out so callers that
// want a deadline can build one (e.g. http.Client{Timeout: 10*time.Second})
// without this package prescribing one.
func DefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
