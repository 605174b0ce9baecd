package restclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a transport failure from the upstream backend: a non-2xx
// status or a network error. Status is 0 when the request never got a
// response. Data carries the raw upstream body when one was returned.
type APIError struct {
	Status  int
	Message string
	Data    json.RawMessage
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("backend unreachable: %s", e.Message)
	}
	return fmt.Sprintf("backend error %d: %s", e.Status, e.Message)
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}

// IsRetryable reports whether err is worth one more attempt: network
// failures and 5xx only. Client errors (4xx) never retry.
func IsRetryable(err error) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return false
	}
	return apiErr.Status == 0 || apiErr.Status >= http.StatusInternalServerError
}
