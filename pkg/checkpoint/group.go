package checkpoint

// Group partitions outcomes into successes and failures, then buckets the
// successes by their reported finalized root (spec §4.5). The empty string
// is a legal root here — it is grouped like any other key, never filtered.
func Group(outcomes []EndpointOutcome) GroupedResult {
	result := GroupedResult{
		Success: make(map[string][]SuccessPayload),
		Failure: make([]FailurePayload, 0),
	}

	for _, outcome := range outcomes {
		switch {
		case outcome.Success != nil:
			root := outcome.Success.Data.Finalized.Root
			result.Success[root] = append(result.Success[root], *outcome.Success)
		case outcome.Failure != nil:
			result.Failure = append(result.Failure, *outcome.Failure)
		}
	}

	return result
}
