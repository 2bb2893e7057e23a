package imx

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrNotFound = errors.New("not found")

// APIError is returned for non-2xx responses from the Immutable X API.
type APIError struct {
	Message    string
	Status     int
	StatusText string
	Body       any
}

func (e *APIError) Error() string {
	if e == nil {
		return "immutable x request failed"
	}
	if e.Status > 0 {
		return fmt.Sprintf("%s (status=%d %s)", e.Message, e.Status, e.StatusText)
	}
	return e.Message
}

// Is reports 404 responses as ErrNotFound.
func (e *APIError) Is(target error) bool {
	return e != nil && target == ErrNotFound && e.Status == http.StatusNotFound
}
