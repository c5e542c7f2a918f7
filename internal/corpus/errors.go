package corpus

import "fmt"

// UnknownInteractionError is returned for an interaction with no engagement counter.
type UnknownInteractionError struct {
	Action string
}

func (e *UnknownInteractionError) Error() string {
	return fmt.Sprintf("unknown interaction %q", e.Action)
}

// QueryError wraps a failed backend query with the operation that issued it.
type QueryError struct {
	Op    string
	Cause error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("corpus %s failed: %v", e.Op, e.Cause)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}
