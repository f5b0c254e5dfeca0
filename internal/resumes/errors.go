package resumes

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no resume exists for the requested id.
var ErrNotFound = errors.New("resume not found")

// ExtractionError wraps a failure to read text out of the uploaded document.
// Not retried; the document itself is unusable.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string { return fmt.Sprintf("extract resume text: %v", e.Err) }
func (e *ExtractionError) Unwrap() error { return e.Err }

// ServiceError wraps a generation-backend failure (network, auth, quota,
// empty reply).
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string { return fmt.Sprintf("generation service: %v", e.Err) }
func (e *ServiceError) Unwrap() error { return e.Err }

// ParseError means the generator's reply could not be interpreted as JSON.
// Raw keeps the full reply for diagnostics; it is logged, never echoed to
// clients.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse generator reply: %v", e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError means the candidate JSON parsed but a field had the wrong
// shape or value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid record: %s", e.Reason)
	}
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}
