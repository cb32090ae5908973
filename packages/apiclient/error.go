package apiclient

import (
	"fmt"

	"github.com/AndreaMinato/ApiClient/packages/transport"
)

// RequestError is returned when the transport reports a non-success status.
// It carries the raw response that triggered it.
type RequestError struct {
	StatusCode int
	Status     string
	Response   *transport.Response
}

func newRequestError(raw *transport.Response) *RequestError {
	return &RequestError{
		StatusCode: raw.StatusCode,
		Status:     raw.StatusText(),
		Response:   raw,
	}
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d %s", e.StatusCode, e.Status)
}
