package checkpoint

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// normalize maps a completed per-endpoint transport result into an
// EndpointOutcome under the decision table of spec §4.4:
//
//	transport error -> Failure(EndpointResponseError(transport message))
//	2xx + parse ok   -> Success(payload, endpoint)
//	2xx + parse fail -> Failure(EndpointResponseError(parse message))
//	non-2xx          -> Failure(EndpointResponseError("Error with calling {url} status code {code}"))
func normalize(endpoint, url string, rsp *Response, transportErr error) EndpointOutcome {
	if transportErr != nil {
		return EndpointOutcome{
			Failure: &FailurePayload{
				Endpoint: endpoint,
				Error:    NewEndpointResponseError(transportErr.Error()),
			},
		}
	}

	if !statusOK(rsp.StatusCode) {
		return EndpointOutcome{
			Failure: &FailurePayload{
				Endpoint: endpoint,
				Error:    NewEndpointResponseError(fmt.Sprintf("Error with calling %s status code %d", url, rsp.StatusCode)),
			},
		}
	}

	var body CheckpointResponse
	if err := json.Unmarshal(rsp.Body, &body); err != nil {
		return EndpointOutcome{
			Failure: &FailurePayload{
				Endpoint: endpoint,
				Error:    NewEndpointResponseError(err.Error()),
			},
		}
	}

	return EndpointOutcome{
		Success: &SuccessPayload{
			Endpoint: endpoint,
			Data:     body.Data,
		},
	}
}

// statusOK reports whether code is a 2xx status. Kept as a named helper so
// the boundary matches http.StatusOK's family rather than a magic range
// scattered across callers.
func statusOK(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
