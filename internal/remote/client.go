// Package remote holds HTTP clients for the studio order and message stores.
// Every call carries the caller identity in the X-User-Id header; any non-2xx
// response is reported as an *APIError.
package remote

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// default timeout for store round-trips
const requestTimeout = 5 * time.Second

// APIError is a non-2xx store response. Message carries the optional
// human-readable error text from the body, for display only.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("store returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("store returned %d", e.StatusCode)
}

type errorResponse struct {
	Error string `json:"error"`
}

// newAPIError decodes the optional error body of a failed response
func newAPIError(resp *http.Response) error {
	apiErr := APIError{StatusCode: resp.StatusCode}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Error
	}

	return &apiErr
}

func setIdentity(req *http.Request, userID uint64) {
	req.Header.Set("X-User-Id", strconv.FormatUint(userID, 10))
}
