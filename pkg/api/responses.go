package api

import "github.com/ethpandaops/checkpointquorum/pkg/checkpoint"

const (
	blockRootNotFound = "Finalized block root not found"
	epochNotFound     = "Epoch not found"
)

// FinalizedResponse is the JSON body of GET /{network}/finalized. The
// verbose fields are flattened at the top level, not nested under a
// "payload" key (spec §4.8).
type FinalizedResponse struct {
	BlockRoot    string                                `json:"block_root"`
	Epoch        string                                `json:"epoch"`
	Canonical    map[string][]checkpoint.SuccessPayload `json:"canonical,omitempty"`
	NonCanonical map[string][]checkpoint.SuccessPayload `json:"non_canonical,omitempty"`
	Failure      []checkpoint.FailurePayload            `json:"failure,omitempty"`
}

// NewFinalizedResponse projects a DisplayableResult into the API shape.
// verbose controls whether the classifier's sub-results are inlined; they
// are always used to derive block_root/epoch regardless of verbose.
func NewFinalizedResponse(result checkpoint.DisplayableResult, verbose bool) FinalizedResponse {
	rsp := FinalizedResponse{
		BlockRoot: blockRootNotFound,
		Epoch:     epochNotFound,
	}

	if result.Canonical != nil {
		for root, payloads := range result.Canonical {
			rsp.BlockRoot = root

			if len(payloads) > 0 {
				rsp.Epoch = payloads[0].Data.Finalized.Epoch
			}

			break
		}
	}

	if verbose {
		rsp.Canonical = result.Canonical
		rsp.NonCanonical = result.NonCanonical
		rsp.Failure = result.Failure
	}

	return rsp
}

// ClassificationLabel returns the metrics-friendly label for result:
// "canonical", "non_canonical", or "failure".
func ClassificationLabel(result checkpoint.DisplayableResult) string {
	switch {
	case result.Canonical != nil:
		return "canonical"
	case result.NonCanonical != nil:
		return "non_canonical"
	default:
		return "failure"
	}
}
