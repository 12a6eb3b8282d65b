package checkpoint

import (
	"context"
	"fmt"
	"sync"
)

const finalityCheckpointsPath = "/eth/v1/beacon/states/%s/finality_checkpoints"

// FetchAll issues one GET per endpoint concurrently and returns once every
// request has completed, successfully or not. There is no early-exit on
// first success and no cancellation of pending requests on first failure
// (spec §4.3, §5). Order of the returned slice matches the order of
// endpoints.
func FetchAll(ctx context.Context, transport Transport, endpoints []string, stateID StateId) []EndpointOutcome {
	outcomes := make([]EndpointOutcome, len(endpoints))

	var wg sync.WaitGroup

	for i, endpoint := range endpoints {
		wg.Add(1)

		go func(i int, endpoint string) {
			defer wg.Done()

			url := endpoint + fmt.Sprintf(finalityCheckpointsPath, stateID.String())

			rsp, err := transport.Get(ctx, url)

			outcomes[i] = normalize(endpoint, url, rsp, err)
		}(i, endpoint)
	}

	wg.Wait()

	return outcomes
}
