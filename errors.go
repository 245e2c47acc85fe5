package absence

import (
	"errors"
	"fmt"
)

// constError is an immutable error backed by a string constant. Unlike
// errors.New, which returns a pointer stored in a var, constError values can
// be declared const, preventing reassignment. errors.Is matching works
// through the Is methods on the structured error types below.
type constError string

// Error implements the error interface.
func (e constError) Error() string {
	return string(e)
}

const (
	// ErrInvalidOperation matches every OperationError via errors.Is.
	ErrInvalidOperation = constError("absence: operation not valid on a sentinel")

	// ErrNameConflict matches every NameConflictError via errors.Is.
	ErrNameConflict = constError("absence: name already bound in registry")
)

// OperationError reports an attempt to perform an operation that is
// structurally incompatible with sentinel identity. Every serialization hook
// returns one: a deserialized copy would be a distinct object and would
// violate every identity-based predicate downstream.
type OperationError struct {
	// Op names the rejected operation, e.g. "json.Marshal".
	Op string
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return fmt.Sprintf(
		"absence: operation %q is not valid on a sentinel: identity would not survive reconstruction",
		e.Op)
}

// Is reports whether target is ErrInvalidOperation, so
// errors.Is(err, ErrInvalidOperation) matches any OperationError.
func (e *OperationError) Is(target error) bool {
	return target == ErrInvalidOperation
}

// IsOperationError reports whether err is an OperationError.
// Uses errors.As to handle wrapped errors.
func IsOperationError(err error) bool {
	var oe *OperationError
	return errors.As(err, &oe)
}

func errInvalidOp(op string) error {
	return &OperationError{Op: op}
}

// NameConflictError reports a registry installation refused because the
// chosen name is already bound to a different value. Nothing is written when
// a conflict is detected.
type NameConflictError struct {
	// Name is the colliding registry key.
	Name string
}

// Error implements the error interface.
func (e *NameConflictError) Error() string {
	return fmt.Sprintf("absence: name %q is already bound to a different value", e.Name)
}

// Is reports whether target is ErrNameConflict, so
// errors.Is(err, ErrNameConflict) matches any NameConflictError.
func (e *NameConflictError) Is(target error) bool {
	return target == ErrNameConflict
}

// IsNameConflict reports whether err is a NameConflictError.
// Uses errors.As to handle wrapped errors.
func IsNameConflict(err error) bool {
	var ne *NameConflictError
	return errors.As(err, &ne)
}
