package iiif

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError represents a HTTP error to be shown to the user.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error formats the HTTPError message.
func (e HTTPError) Error() string {
	return fmt.Sprintf("%d (%s) %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// toHTTPError maps any error onto an HTTPError, validation failures are bad requests.
func toHTTPError(err error) HTTPError {
	var he HTTPError
	if errors.As(err, &he) {
		return he
	}

	var ve ValidationError
	if errors.As(err, &ve) {
		return HTTPError{http.StatusBadRequest, ve.Error()}
	}

	return HTTPError{http.StatusInternalServerError, err.Error()}
}

func writeError(w http.ResponseWriter, err error) {
	e := toHTTPError(err)
	debug("%v", e)
	http.Error(w, e.Error(), e.StatusCode)
}
