package storage

import (
	"errors"
	"fmt"
)

// ErrDebtNotFound is returned when a referenced debt does not exist.
var ErrDebtNotFound = errors.New("debt not found")

// ErrAccountNotFound is returned when a referenced account does not exist.
var ErrAccountNotFound = errors.New("account not found")

// ErrVersionConflict is returned when an optimistic version check fails,
// i.e. another writer mutated the record between our read and write.
var ErrVersionConflict = errors.New("record version conflict")

// PartialFailureError reports that a chained write was only partially
// applied: one step succeeded and a later one failed, leaving the ledger
// inconsistent until reconciled. It must be surfaced and logged distinctly
// from a clean failure.
type PartialFailureError struct {
	Completed string
	Failed    string
	Err       error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial failure: %q succeeded but %q failed: %v", e.Completed, e.Failed, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
