package fieldval

import (
	"errors"
	"fmt"
)

// Configuration errors. These mean a rule is miswired for its field, not
// that a value failed validation; they surface through the error return of
// Evaluate/Validate rather than as a Verdict.
var (
	// ErrNilArgument is returned when a check is constructed with a nil
	// required argument (bound, predicate, candidate set).
	ErrNilArgument = errors.New("nil argument")

	// ErrNegativeBound is returned when a length check is given a
	// negative bound.
	ErrNegativeBound = errors.New("negative length bound")

	// ErrNilAccessor is returned when a chain's field has no value accessor.
	ErrNilAccessor = errors.New("nil value accessor")

	// ErrChainSealed is returned when checks are added to a chain after
	// its first evaluation.
	ErrChainSealed = errors.New("chain is sealed")
)

// UnsupportedTypeError reports that a check cannot interpret the shape of
// the value it received, e.g. a length check wired to a struct field.
type UnsupportedTypeError struct {
	Check string
	Value any
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: unsupported type %T", e.Check, e.Value)
}
