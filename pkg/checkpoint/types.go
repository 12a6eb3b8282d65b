package checkpoint

import "strconv"

// BlockInfo is an (epoch, root) pair taken verbatim from the upstream
// response. Neither field is parsed by this package.
type BlockInfo struct {
	Epoch string `json:"epoch"`
	Root  string `json:"root"`
}

// Data is the beacon-API finality_checkpoints payload shape. Extra upstream
// fields are ignored, not rejected, by virtue of decoding into this exact
// struct.
type Data struct {
	Finalized         BlockInfo `json:"finalized"`
	CurrentJustified  BlockInfo `json:"current_justified"`
	PreviousJustified BlockInfo `json:"previous_justified"`
}

// CheckpointResponse is the top-level beacon-API envelope.
type CheckpointResponse struct {
	Data Data `json:"data"`
}

// SuccessPayload is emitted when a 2xx response body parses.
type SuccessPayload struct {
	Endpoint string `json:"endpoint"`
	Data     Data   `json:"data"`
}

// FailurePayload is emitted for transport failures, non-2xx responses, or
// body-parse failures.
type FailurePayload struct {
	Endpoint string    `json:"endpoint"`
	Error    *AppError `json:"error"`
}

// EndpointOutcome is the tagged union of SuccessPayload and FailurePayload.
// Exactly one of Success/Failure is non-nil.
type EndpointOutcome struct {
	Success *SuccessPayload
	Failure *FailurePayload
}

// GroupedResult partitions a batch of outcomes into successes (bucketed by
// reported finalized root) and failures.
type GroupedResult struct {
	Success map[string][]SuccessPayload
	Failure []FailurePayload
}

// DisplayableResult is the classifier's output: either a canonical root, a
// set of conflicting roots, or neither, plus the failures passed through
// unchanged.
type DisplayableResult struct {
	Canonical    map[string][]SuccessPayload `json:"canonical,omitempty"`
	NonCanonical map[string][]SuccessPayload `json:"non_canonical,omitempty"`
	Failure      []FailurePayload            `json:"failure"`
}

// StateId is the beacon-API state selector: either the literal "finalized"
// or a specific slot number. 64 bits is ample for beacon-chain slot
// numbers (spec §9 open question #5 resolved in favour of narrowing from
// the original's 128-bit type).
type StateId struct {
	finalized bool
	slot      uint64
}

// Finalized returns the StateId for the literal "finalized" selector.
func Finalized() StateId {
	return StateId{finalized: true}
}

// Slot returns the StateId for a specific slot number.
func Slot(slot uint64) StateId {
	return StateId{slot: slot}
}

// String renders the StateId as the beacon-API expects it in a URL path
// segment: the literal "finalized" or the decimal slot number.
func (s StateId) String() string {
	if s.finalized {
		return "finalized"
	}

	return strconv.FormatUint(s.slot, 10)
}
