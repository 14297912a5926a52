package iiif

import (
	"fmt"
	"strconv"
)

// Parameter is one of the five path segments of an IIIF image request.
type Parameter interface {
	IsValid() bool
	CanonicalValue() string
	Validate() error
}

// parameter kinds
const (
	KindRegion   = "region"
	KindSize     = "size"
	KindRotation = "rotation"
	KindQuality  = "quality"
	KindFormat   = "format"
)

// error messages
var parameterError = "IIIF 2.1 `%s` argument is not recognized: %#v"

// ValidationError is returned by Validate when a parameter is invalid.
type ValidationError struct {
	Kind  string
	Value string
}

// Error formats the ValidationError message.
func (e ValidationError) Error() string {
	return fmt.Sprintf(parameterError, e.Kind, e.Value)
}

func validate(p Parameter, kind, value string) error {
	if p.IsValid() {
		return nil
	}
	return ValidationError{kind, value}
}

// formatNumber gives the shortest representation of v that parses back to v,
// without a trailing ".0" on whole numbers.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
