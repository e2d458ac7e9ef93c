package api

import "fmt"

// HTTPError is returned for any non-2xx response from the backend. It
// carries the status so callers can branch on it; nothing here retries.
type HTTPError struct {
	Op     string
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s failed: %d", e.Op, e.Status)
}
