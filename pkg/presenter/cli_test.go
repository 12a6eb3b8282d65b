package presenter

import (
	"bytes"
	"testing"

	"github.com/ethpandaops/checkpointquorum/pkg/checkpoint"
	"github.com/stretchr/testify/assert"
)

func TestRenderPlain_Canonical(t *testing.T) {
	result := checkpoint.DisplayableResult{
		Canonical: map[string][]checkpoint.SuccessPayload{
			"0xroot": {{Endpoint: "e1"}},
		},
	}

	var buf bytes.Buffer
	RenderPlain(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "Block root:")
	assert.Contains(t, out, "0xroot")
	assert.NotContains(t, out, "Conflicting:")
}

func TestRenderPlain_NonCanonicalAndFailure(t *testing.T) {
	result := checkpoint.DisplayableResult{
		NonCanonical: map[string][]checkpoint.SuccessPayload{
			"0xaaa": {{Endpoint: "e1"}},
			"0xbbb": {{Endpoint: "e2"}},
		},
		Failure: []checkpoint.FailurePayload{
			{Endpoint: "e3", Error: checkpoint.NewEndpointResponseError("timed out")},
		},
	}

	var buf bytes.Buffer
	RenderPlain(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "Conflicting:")
	assert.Contains(t, out, "0xaaa")
	assert.Contains(t, out, "0xbbb")
	assert.Contains(t, out, "Errors:")
	assert.Contains(t, out, "e3")
}

func TestRenderVerbose_EmitsPrettyJSON(t *testing.T) {
	result := checkpoint.DisplayableResult{
		Canonical: map[string][]checkpoint.SuccessPayload{
			"0xroot": {{Endpoint: "e1"}},
		},
	}

	var buf bytes.Buffer
	RenderVerbose(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "Block root:")
	assert.Contains(t, out, "\"e1\"")
	assert.Contains(t, out, "{\n")
}

func TestSoleRoot_EmptyMapReturnsEmptyString(t *testing.T) {
	assert.Equal(t, "", soleRoot(nil))
}
