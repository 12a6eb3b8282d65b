package checkpoint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_TransportError(t *testing.T) {
	outcome := normalize("e1", "http://e1/path", nil, errors.New("dial tcp: refused"))

	require.NotNil(t, outcome.Failure)
	assert.Nil(t, outcome.Success)
	assert.Equal(t, "Error: dial tcp: refused", outcome.Failure.Error.Error())
}

func TestNormalize_SuccessBody(t *testing.T) {
	body := []byte(`{"data":{"finalized":{"epoch":"100","root":"0xabc"},"current_justified":{"epoch":"101","root":"0xdef"},"previous_justified":{"epoch":"99","root":"0x123"}}}`)

	outcome := normalize("e1", "http://e1/path", &Response{StatusCode: 200, Body: body}, nil)

	require.NotNil(t, outcome.Success)
	assert.Equal(t, "0xabc", outcome.Success.Data.Finalized.Root)
	assert.Equal(t, "100", outcome.Success.Data.Finalized.Epoch)
}

func TestNormalize_IgnoresExtraFields(t *testing.T) {
	body := []byte(`{"data":{"finalized":{"epoch":"1","root":"0xabc"},"current_justified":{"epoch":"1","root":"x"},"previous_justified":{"epoch":"1","root":"x"},"unexpected_field":"ignored"},"version":"deneb"}`)

	outcome := normalize("e1", "http://e1/path", &Response{StatusCode: 200, Body: body}, nil)

	require.NotNil(t, outcome.Success)
	assert.Equal(t, "0xabc", outcome.Success.Data.Finalized.Root)
}

func TestNormalize_NonTwoXXStatus(t *testing.T) {
	outcome := normalize("e1", "http://e1/path", &Response{StatusCode: 503, Body: []byte("unavailable")}, nil)

	require.NotNil(t, outcome.Failure)
	assert.Equal(t, "Error: Error with calling http://e1/path status code 503", outcome.Failure.Error.Error())
}

func TestNormalize_ParseFailure(t *testing.T) {
	outcome := normalize("e1", "http://e1/path", &Response{StatusCode: 200, Body: []byte("not json")}, nil)

	require.NotNil(t, outcome.Failure)
	assert.Nil(t, outcome.Success)
}
