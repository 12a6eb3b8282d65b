package checkpoint

import (
	"encoding/json"
	"fmt"
)

// Kind is the closed set of error tags this package ever produces.
type Kind int

const (
	// KindEndpointResponse covers transport failure, non-2xx status, and
	// body-parse failure. The distinction between the three is preserved in
	// the detail string but not in the tag.
	KindEndpointResponse Kind = iota
	// KindEndpointsBelowThreshold is raised when a configured network has
	// fewer than the minimum number of endpoints.
	KindEndpointsBelowThreshold
	// KindEndpointsNotFound is raised when a requested network has no
	// configured endpoint list at all.
	KindEndpointsNotFound
)

// AppError is the error type that carries each Kind above. It renders as
// "Error: " + detail, matching
// original_source/src/errors.rs.
type AppError struct {
	Kind   Kind
	Detail string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("Error: %s", e.Detail)
}

// MarshalJSON renders the error as its display string rather than its
// internal Kind/Detail fields, so JSON and log output agree.
func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Error())
}

// NewEndpointResponseError builds a KindEndpointResponse error from a
// detail string already formatted by the caller (transport message, parse
// message, or the "status code" message of §4.4).
func NewEndpointResponseError(detail string) *AppError {
	return &AppError{Kind: KindEndpointResponse, Detail: detail}
}

// NewEndpointsBelowThresholdError builds a KindEndpointsBelowThreshold error.
func NewEndpointsBelowThresholdError(detail string) *AppError {
	return &AppError{Kind: KindEndpointsBelowThreshold, Detail: detail}
}

// NewEndpointsNotFoundError builds a KindEndpointsNotFound error.
func NewEndpointsNotFoundError(detail string) *AppError {
	return &AppError{Kind: KindEndpointsNotFound, Detail: detail}
}
