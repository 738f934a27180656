package types

import "fmt"

// APIError is an error carrying the HTTP status it should render with.
// The global fiber error handler unwraps it into the {error, status}
// envelope.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}
