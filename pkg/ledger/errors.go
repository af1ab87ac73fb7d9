package ledger

import "fmt"

// ValidationError reports an operation rejected before any write occurred.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
