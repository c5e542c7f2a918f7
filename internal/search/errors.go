package search

import (
	"errors"
	"fmt"
)

// ErrEmptyQuery is returned when a search requires a query and none was given.
var ErrEmptyQuery = errors.New("search query is required")

// ErrUnsupported is returned when the corpus lacks the capability an operation needs.
var ErrUnsupported = errors.New("operation not supported by the configured corpus")

// InvalidParamError reports a request parameter with an unusable value.
type InvalidParamError struct {
	Param string
	Value string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Param, e.Value)
}
