// Package errorkit holds the error primitives shared by the verifier packages.
package errorkit

import (
	"errors"
	"fmt"
)

// Error is a sentinel error that can be declared as a constant.
//
//	const ErrNotConstructible errorkit.Error = "sample: type has no default construction"
//
// Callers match it with errors.Is, also after Wrap or F added details to it.
type Error string

func (err Error) Error() string { return string(err) }

// Wrap attaches cause to err.
// The result matches err and cause alike, and a nil cause yields err unchanged.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return detailed{kind: err, cause: cause}
}

// F wraps err with a message formatted by fmt.Errorf, so %w verbs keep their chain.
func (err Error) F(format string, a ...any) error { return err.Wrap(fmt.Errorf(format, a...)) }

// detailed is an Error with the cause that explains the concrete failure.
type detailed struct {
	kind  Error
	cause error
}

func (d detailed) Error() string {
	return fmt.Sprintf("[%s] %s", d.kind, d.cause.Error())
}

func (d detailed) Unwrap() error { return d.cause }

func (d detailed) Is(target error) bool {
	return errors.Is(d.kind, target) || errors.Is(d.cause, target)
}

func (d detailed) As(target any) bool {
	return errors.As(d.kind, target) || errors.As(d.cause, target)
}
