package nodeapi

import (
	"errors"
	"fmt"
)

// StatusError reports a round trip that did not return HTTP 200.
type StatusError struct {
	Endpoint string
	Path     string
	Status   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s (path %q) returned status %d", e.Endpoint, e.Path, e.Status)
}

// HTTPStatus returns the status carried by err, or 0 when err is not a StatusError.
func HTTPStatus(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}
