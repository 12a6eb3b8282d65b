package checkpoint

import "sync"

// Health is a rolling window of recent probe outcomes for a single
// endpoint, adapted from ethpandaops-beacon's per-node Health type to the
// per-endpoint reachability the background probe (L0f) tracks. It is purely
// observational: nothing in FetchFinalityCheckpoints consults it, so a
// flapping endpoint is never silently dropped from the quorum vote.
type Health struct {
	mu sync.Mutex

	responses []bool

	successThreshold int
	failThreshold    int

	healthy bool
}

// NewHealth returns a Health window that requires successThreshold
// consecutive successes (or failThreshold consecutive failures) before
// flipping state.
func NewHealth(successThreshold, failThreshold int) *Health {
	return &Health{
		responses:        make([]bool, 0, failThreshold+successThreshold),
		successThreshold: successThreshold,
		failThreshold:    failThreshold,
	}
}

// RecordSuccess records a successful probe.
func (h *Health) RecordSuccess() {
	h.record(true, h.successThreshold, true)
}

// RecordFailure records a failed probe.
func (h *Health) RecordFailure() {
	h.record(false, h.failThreshold, false)
}

func (h *Health) record(ok bool, window int, target bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.responses = append(h.responses, ok)
	if len(h.responses) > window {
		h.responses = h.responses[len(h.responses)-window:]
	}

	if len(h.responses) < window {
		return
	}

	for _, r := range h.responses {
		if r != ok {
			return
		}
	}

	h.healthy = target
}

// Healthy reports the last-settled health state.
func (h *Health) Healthy() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.healthy
}
