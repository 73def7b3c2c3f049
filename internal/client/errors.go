package client

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// StatusError is returned when the API answers with a non-2xx status or an
// unsuccessful envelope.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var statusErr *StatusError

	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}
