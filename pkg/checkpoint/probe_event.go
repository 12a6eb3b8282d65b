package checkpoint

const (
	topicProbeSucceeded = "probe_succeeded"
	topicProbeFailed    = "probe_failed"
)

// ProbeSucceededEvent is emitted each time a background reachability probe
// against an endpoint succeeds.
type ProbeSucceededEvent struct {
	Endpoint string
}

// ProbeFailedEvent is emitted each time a background reachability probe
// against an endpoint fails.
type ProbeFailedEvent struct {
	Endpoint string
	Err      error
}
