package azdo

import "fmt"

// RequestError is a non-success response from the Extension Management API.
type RequestError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Status is the full status line, e.g. "409 Conflict".
	Status string
	// Message is the service-supplied description, empty when the response
	// body carried none.
	Message string
}

// Error returns the status line, followed by the service message when present.
func (e *RequestError) Error() string {
	if e.Message == "" {
		return e.Status
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}
