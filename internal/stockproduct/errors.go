package stockproduct

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFunction is matched by errors returned for unregistered transaction names.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrNotFound is matched when a key is absent from the world state.
	ErrNotFound = errors.New("stock product not found")
	// ErrLedger is matched by failures of the ledger itself.
	ErrLedger = errors.New("ledger error")
	// ErrValidation is matched by malformed transaction arguments.
	ErrValidation = errors.New("validation error")
)

// UnknownFunctionError carries the transaction name nobody handles.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}

func (e *UnknownFunctionError) Is(target error) bool { return target == ErrUnknownFunction }

// NotFoundError reports a stock product id without a stored record.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// LedgerError wraps an error returned by GetState, PutState or DelState.
type LedgerError struct {
	Op  string
	Key string
	Err error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *LedgerError) Unwrap() error { return e.Err }

func (e *LedgerError) Is(target error) bool { return target == ErrLedger }

// ValidationError describes an argument that could not be accepted.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
