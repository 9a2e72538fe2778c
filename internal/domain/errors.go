package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidConfig     = errors.New("invalid config")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidDateOrder  = errors.New("shipment date is before issue date")
	ErrNoSelection       = errors.New("no record selected")
	ErrNoData            = errors.New("no matching records")
	ErrEmptyDataset      = errors.New("no records to export")
	ErrWriteFailure      = errors.New("write failed")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindInvalidConfig     ErrorKind = "invalid_config"
	KindExecution         ErrorKind = "execution"
	KindInvalidDateFormat ErrorKind = "invalid_date_format"
	KindInvalidDateOrder  ErrorKind = "invalid_date_order"
	KindNoSelection       ErrorKind = "no_selection"
	KindNoData            ErrorKind = "no_data"
	KindEmptyDataset      ErrorKind = "empty_dataset"
	KindWriteFailure      ErrorKind = "write_failure"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in the chain, or
// KindExecution when err carries none.
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return KindExecution
}
