// Package errorspkg provides common app errors and their HTTP statuses.
package errorspkg

import (
	"errors"
	"net/http"
)

var (
	// ErrInternal indicates internal server error.
	ErrInternal = errors.New("internal")
	// ErrRouteNotFound indicates that no handler serves the requested path.
	ErrRouteNotFound = errors.New("route not found")
)

// Kind pairs an error kind with the HTTP status it is reported with.
type Kind struct {
	Err    error
	Status int
}

// Status returns the status of the first kind err matches with errors.Is.
// Unmatched errors are internal.
func Status(err error, kinds ...Kind) int {
	for _, k := range kinds {
		if errors.Is(err, k.Err) {
			return k.Status
		}
	}

	return http.StatusInternalServerError
}

// Public returns err when its status is a client error and ErrInternal otherwise.
func Public(err error, status int) error {
	if status >= http.StatusInternalServerError {
		return ErrInternal
	}

	return err
}
