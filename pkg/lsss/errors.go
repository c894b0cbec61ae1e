package lsss

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsatisfiedAccessStructure is the single user-facing reconstruction
	// failure. Use ReasonOf to tell the four causes apart.
	ErrUnsatisfiedAccessStructure = errors.New("lsss: unsatisfied access structure")

	// ErrInvalidMatrix indicates a nil, empty or ragged access matrix, or a
	// vector whose length does not match the matrix.
	ErrInvalidMatrix = errors.New("lsss: invalid access matrix")

	// ErrInvalidResolver indicates a missing resolver, or one that returned
	// attributes that were never presented.
	ErrInvalidResolver = errors.New("lsss: invalid minimal subset resolver")

	// ErrFieldFault wraps unexpected failures of the field arithmetic, such as
	// inverting zero. It is never returned for an unsatisfied structure.
	ErrFieldFault = errors.New("lsss: field arithmetic fault")

	// ErrRandomSource indicates that sampling the random vector failed.
	ErrRandomSource = errors.New("lsss: random source failure")

	// ErrMissingShare is returned by Combine when a nonzero coefficient has
	// no matching share.
	ErrMissingShare = errors.New("lsss: missing share")
)

// Reason classifies an unsatisfied reconstruction.
type Reason string

const (
	// ReasonNoAuthorizedSubset: the resolver found no authorized subset.
	ReasonNoAuthorizedSubset Reason = "no_authorized_subset"

	// ReasonDependentRows: column selection found more (or fewer) nonzero
	// columns than selected rows, so the rows are not independent.
	ReasonDependentRows Reason = "dependent_rows"

	// ReasonSingularMatrix: the reduced square matrix has no inverse mod p.
	ReasonSingularMatrix Reason = "singular_matrix"

	// ReasonSecretColumnMissing: column 0 was not among the selected columns.
	ReasonSecretColumnMissing Reason = "secret_column_missing"
)

// UnsatisfiedError reports why reconstruction failed. It matches
// ErrUnsatisfiedAccessStructure under errors.Is.
type UnsatisfiedError struct {
	Reason Reason
	Detail string
}

func (e *UnsatisfiedError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (%s)", ErrUnsatisfiedAccessStructure, e.Reason)
	}
	return fmt.Sprintf("%v (%s): %s", ErrUnsatisfiedAccessStructure, e.Reason, e.Detail)
}

func (e *UnsatisfiedError) Is(target error) bool {
	return target == ErrUnsatisfiedAccessStructure
}

func unsatisfied(reason Reason, format string, args ...any) error {
	return &UnsatisfiedError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

// ReasonOf returns the Reason carried by err, or "" if err is not an
// unsatisfied-structure error.
func ReasonOf(err error) Reason {
	var u *UnsatisfiedError
	if errors.As(err, &u) {
		return u.Reason
	}
	return ""
}

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("lsss.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// errorf creates a new Error
func errorf(op string, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
