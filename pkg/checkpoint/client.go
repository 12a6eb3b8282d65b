package checkpoint

import "context"

// Client fetches and classifies finality checkpoints for a fixed set of
// endpoints. A single Client is shared across all inbound HTTP requests
// (spec §5); its Transport must be safe for concurrent use.
type Client struct {
	transport Transport
	endpoints []string
}

// NewClient builds a Client over endpoints using transport. endpoints is
// captured as-is; callers are expected to have already enforced the
// minimum-endpoints invariant at config-load time (spec §6).
func NewClient(transport Transport, endpoints []string) *Client {
	return &Client{transport: transport, endpoints: endpoints}
}

// Endpoints returns the endpoint list this client queries.
func (c *Client) Endpoints() []string {
	return c.endpoints
}

// FetchFinalityCheckpoints runs the full pipeline for stateID: fan-out,
// normalize, group, classify. It never returns an error of its own —
// per-endpoint failures are captured inside the returned DisplayableResult
// (spec §4.3 "no fan-out-level error is ever produced").
func (c *Client) FetchFinalityCheckpoints(ctx context.Context, stateID StateId) DisplayableResult {
	outcomes := FetchAll(ctx, c.transport, c.endpoints, stateID)
	grouped := Group(outcomes)

	return Classify(grouped)
}
