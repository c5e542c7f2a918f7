package parsing

import "fmt"

// ExtractionError reports a query category whose extraction failed. The parser
// logs it and leaves the category empty instead of failing the whole parse.
type ExtractionError struct {
	Category string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %v", e.Category, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s", e.Category)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ParseError represents a failure of the parse as a whole
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
