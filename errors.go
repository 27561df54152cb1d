package dtotester

import (
	"fmt"
	"reflect"

	"github.com/brick777/DtoTester/pkg/errorkit"
)

const (
	ErrMismatch          errorkit.Error = "dtotester: getter does not return what the setter received"
	ErrAmbiguousAccessor errorkit.Error = "dtotester: accessor methods do not form a getter and setter pair"
	ErrNilInstance       errorkit.Error = "dtotester: the factory did not make a DTO instance"
)

// Reason tells which comparison failed in a MismatchError.
type Reason string

const (
	// TypeMismatch means the getter's result type differs from the setter's parameter type.
	TypeMismatch Reason = "type mismatch"
	// ValueMismatch means a primitive value came back different.
	ValueMismatch Reason = "value mismatch"
	// IdentityMismatch means the getter returned another instance than the one the setter received.
	IdentityMismatch Reason = "identity mismatch"
)

// MismatchError reports the accessor pair that failed the round trip.
// It matches ErrMismatch with errors.Is.
type MismatchError struct {
	Property     string
	Reason       Reason
	Expected     any
	Actual       any
	ExpectedType reflect.Type
	ActualType   reflect.Type
}

func (err MismatchError) Error() string {
	if err.Reason == TypeMismatch {
		return fmt.Sprintf("[%s] %s of %q: expected %s, got %s",
			ErrMismatch, err.Reason, err.Property, err.ExpectedType, err.ActualType)
	}
	return fmt.Sprintf("[%s] %s of %q: expected %#v, got %#v",
		ErrMismatch, err.Reason, err.Property, err.Expected, err.Actual)
}

func (err MismatchError) Is(target error) bool {
	return target == ErrMismatch
}
