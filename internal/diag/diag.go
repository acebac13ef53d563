// Package diag provides the one kind of error this module ever raises: a
// fatal, unrecoverable assertion failure (a programmer error, never a
// condition the host IR can trigger by construction). Everything else the
// simplifier encounters — depth exceeded, leaf budget exceeded, unsupported
// root, no reduction found — is silent and benign and is represented as a
// plain (value, ok) pair, never an error.
package diag

import (
	"fmt"

	"github.com/pkg/errors"
)

// AssertionError is raised by Assertf when an invariant the caller was
// responsible for upholding does not hold. It carries a stack trace
// (via github.com/pkg/errors) because, unlike every other failure mode in
// this module, it indicates a bug rather than an ordinary "no change".
type AssertionError struct {
	Message string
	cause   error
}

func (e *AssertionError) Error() string {
	return "clc: assertion failed: " + e.Message
}

func (e *AssertionError) Unwrap() error { return e.cause }

// Assertf panics with an *AssertionError if cond is false. format/args
// describe the violated invariant.
func Assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	panic(&AssertionError{
		Message: msg,
		cause:   errors.Errorf("clc: assertion failed: %s", msg),
	})
}
