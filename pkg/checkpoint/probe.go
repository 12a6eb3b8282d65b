package checkpoint

import (
	"context"
	"time"

	"github.com/chuckpreslar/emission"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// Prober periodically issues a finality_checkpoints request against every
// configured endpoint purely to track reachability. It never feeds its
// results back into FetchFinalityCheckpoints — the quorum answer is always
// computed fresh, per spec's Non-goal on persistent caching.
type Prober struct {
	log logrus.FieldLogger

	client   *Client
	stateID  StateId
	interval time.Duration

	broker *emission.Emitter

	health map[string]*Health

	scheduler *gocron.Scheduler
}

// NewProber builds a Prober over client, probing at the given interval.
func NewProber(log logrus.FieldLogger, client *Client, interval time.Duration) *Prober {
	health := make(map[string]*Health, len(client.Endpoints()))
	for _, endpoint := range client.Endpoints() {
		health[endpoint] = NewHealth(3, 3)
	}

	return &Prober{
		log:      log.WithField("module", "checkpoint/probe"),
		client:   client,
		stateID:  Finalized(),
		interval: interval,
		broker:   emission.NewEmitter(),
		health:   health,
	}
}

// Start schedules the recurring probe on a gocron scheduler and returns
// immediately; the scheduler runs its own goroutine, decoupled from any
// request-serving goroutine (spec §5).
func (p *Prober) Start(ctx context.Context) error {
	p.scheduler = gocron.NewScheduler(time.Local)

	if _, err := p.scheduler.Every(p.interval.String()).Do(func() {
		p.runOnce(ctx)
	}); err != nil {
		return err
	}

	p.scheduler.StartAsync()

	return nil
}

// Stop halts the scheduler.
func (p *Prober) Stop() {
	if p.scheduler != nil {
		p.scheduler.Stop()
	}
}

// OnProbeSucceeded registers a handler for successful probes.
func (p *Prober) OnProbeSucceeded(handler func(event *ProbeSucceededEvent)) {
	p.broker.On(topicProbeSucceeded, handler)
}

// OnProbeFailed registers a handler for failed probes.
func (p *Prober) OnProbeFailed(handler func(event *ProbeFailedEvent)) {
	p.broker.On(topicProbeFailed, handler)
}

// Snapshot returns the current healthy/unhealthy state per endpoint.
func (p *Prober) Snapshot() map[string]bool {
	out := make(map[string]bool, len(p.health))
	for endpoint, h := range p.health {
		out[endpoint] = h.Healthy()
	}

	return out
}

func (p *Prober) runOnce(ctx context.Context) {
	outcomes := FetchAll(ctx, p.client.transport, p.client.endpoints, p.stateID)

	for _, outcome := range outcomes {
		switch {
		case outcome.Success != nil:
			endpoint := outcome.Success.Endpoint
			p.health[endpoint].RecordSuccess()
			p.broker.Emit(topicProbeSucceeded, &ProbeSucceededEvent{Endpoint: endpoint})
		case outcome.Failure != nil:
			endpoint := outcome.Failure.Endpoint
			p.health[endpoint].RecordFailure()
			p.broker.Emit(topicProbeFailed, &ProbeFailedEvent{Endpoint: endpoint, Err: outcome.Failure.Error})

			p.log.WithField("endpoint", endpoint).WithError(outcome.Failure.Error).Debug("Probe failed")
		}
	}
}
