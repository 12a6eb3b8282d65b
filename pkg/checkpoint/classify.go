package checkpoint

// Classify turns a GroupedResult into a DisplayableResult under the 2/3
// quorum rule of spec §4.6. This is the core algorithm: a pure function of
// its input, safe to call repeatedly (spec §8 idempotence property).
//
// The threshold is computed from the number of distinct roots rather than
// the total number of successful endpoints, and groups below the
// threshold are dropped once a single group clears it — both are
// preserved verbatim from the upstream design per spec §9 open questions
// #1 and #2; this implementation does not take the "more defensible"
// alternative the spec floats.
func Classify(grouped GroupedResult) DisplayableResult {
	result := DisplayableResult{
		Failure: grouped.Failure,
	}

	if len(grouped.Success) == 0 {
		return result
	}

	if len(grouped.Success) == 1 {
		result.Canonical = grouped.Success

		return result
	}

	numGroups := len(grouped.Success)
	threshold := (2 * numGroups) / 3

	above := make(map[string][]SuccessPayload)
	below := make(map[string][]SuccessPayload)

	for root, payloads := range grouped.Success {
		if len(payloads) > threshold {
			above[root] = payloads
		} else {
			below[root] = payloads
		}
	}

	if len(above) == 1 {
		result.Canonical = above

		return result
	}

	nonCanonical := make(map[string][]SuccessPayload, len(grouped.Success))
	for root, payloads := range above {
		nonCanonical[root] = payloads
	}

	for root, payloads := range below {
		nonCanonical[root] = payloads
	}

	result.NonCanonical = nonCanonical

	return result
}
