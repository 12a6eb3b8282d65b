package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(endpoint, root string) SuccessPayload {
	return SuccessPayload{
		Endpoint: endpoint,
		Data: Data{
			Finalized: BlockInfo{Epoch: "1", Root: root},
		},
	}
}

func TestClassify_AllAgree(t *testing.T) {
	grouped := GroupedResult{
		Success: map[string][]SuccessPayload{
			"H1": {payload("g1", "H1"), payload("g2", "H1"), payload("g3", "H1")},
		},
		Failure: []FailurePayload{},
	}

	result := Classify(grouped)

	require.NotNil(t, result.Canonical)
	assert.Nil(t, result.NonCanonical)
	assert.Len(t, result.Canonical, 1)
	assert.Len(t, result.Canonical["H1"], 3)
	assert.Empty(t, result.Failure)
}

func TestClassify_ThreeDistinctRoots(t *testing.T) {
	grouped := GroupedResult{
		Success: map[string][]SuccessPayload{
			"H1": {payload("g1", "H1")},
			"H2": {payload("g2", "H2")},
			"H3": {payload("g3", "H3")},
		},
	}

	result := Classify(grouped)

	assert.Nil(t, result.Canonical)
	require.NotNil(t, result.NonCanonical)
	assert.Len(t, result.NonCanonical, 3)
}

func TestClassify_AllFailures(t *testing.T) {
	grouped := GroupedResult{
		Success: map[string][]SuccessPayload{},
		Failure: []FailurePayload{
			{Endpoint: "g1", Error: NewEndpointResponseError("e0")},
			{Endpoint: "g2", Error: NewEndpointResponseError("e1")},
			{Endpoint: "g3", Error: NewEndpointResponseError("e2")},
		},
	}

	result := Classify(grouped)

	assert.Nil(t, result.Canonical)
	assert.Nil(t, result.NonCanonical)
	require.Len(t, result.Failure, 3)
	assert.Contains(t, result.Failure[0].Error.Error(), "Error: e0")
	assert.Contains(t, result.Failure[1].Error.Error(), "Error: e1")
	assert.Contains(t, result.Failure[2].Error.Error(), "Error: e2")
}

func TestClassify_PluralityWithoutSuperMajority(t *testing.T) {
	grouped := GroupedResult{
		Success: map[string][]SuccessPayload{
			"H1": {payload("g1", "H1"), payload("g2", "H1")},
			"H3": {payload("g3", "H3")},
			"H4": {payload("g4", "H4")},
			"H5": {payload("g5", "H5")},
		},
	}

	result := Classify(grouped)

	assert.Nil(t, result.Canonical)
	require.NotNil(t, result.NonCanonical)
	assert.Len(t, result.NonCanonical, 4)

	total := 0
	for _, payloads := range result.NonCanonical {
		total += len(payloads)
	}
	assert.Equal(t, 5, total)
}

func TestClassify_MixedSuccessAndFailure(t *testing.T) {
	grouped := GroupedResult{
		Success: map[string][]SuccessPayload{
			"H1": {payload("g1", "H1"), payload("g2", "H1")},
		},
		Failure: []FailurePayload{
			{Endpoint: "bad", Error: NewEndpointResponseError("oops")},
		},
	}

	result := Classify(grouped)

	require.NotNil(t, result.Canonical)
	assert.Nil(t, result.NonCanonical)
	assert.Len(t, result.Canonical["H1"], 2)
	require.Len(t, result.Failure, 1)
	assert.Equal(t, "bad", result.Failure[0].Endpoint)
}

func TestClassify_Idempotent(t *testing.T) {
	grouped := GroupedResult{
		Success: map[string][]SuccessPayload{
			"H1": {payload("g1", "H1")},
			"H2": {payload("g2", "H2")},
		},
	}

	first := Classify(grouped)
	second := Classify(grouped)

	assert.Equal(t, first, second)
}
