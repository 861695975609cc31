// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
)

// Recoverable failures of a size expression. They are reported to the user as
// a message and never abort the process.
var (
	ErrInvalidAmount  = stderrors.New("invalid amount")
	ErrNegativeAmount = stderrors.New("negative amount")
	ErrUnknownUnit    = stderrors.New("unknown unit")
)

// TokenError is an error paired with the position and the text of the token
// of the size expression that failed, e.g. position 0 for the amount and 1
// for the unit of "24 mb".
type TokenError struct {
	pos   int
	token string
	err   error
}

// NewTokenError creates an error bound to a token of the expression.
func NewTokenError(pos int, token string, err error) error {
	return &TokenError{pos, token, err}
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("Token(%d %q): %s", e.pos, e.token, e.err.Error())
}

func (e *TokenError) Position() int {
	return e.pos
}

func (e *TokenError) Token() string {
	return e.token
}

func (e *TokenError) Unwrap() error {
	return e.err
}

// Errors is an error that wrap two or more errors. Unwrap only returns the
// first error, but errors.Is matches against any of them. Use the `Errors`
// method to extract all errors.
type Errors struct {
	errs []error
}

func (e *Errors) Error() string {
	buf := new(bytes.Buffer)

	buf.WriteString("Multiple errors: ")
	for i, err := range e.errs {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "(%d){%s}", i+1, err.Error())
	}

	return buf.String()
}

func (e *Errors) Errors() []error {
	return e.errs
}

func (e *Errors) Unwrap() error {
	return e.errs[0]
}

func (e *Errors) Is(target error) bool {
	for _, err := range e.errs {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}

// NewErrors drops nil errors, returns nil if none is left, the error itself if
// only one is left and an *Errors otherwise.
func NewErrors(errs ...error) error {
	var errors []error
	for _, err := range errs {
		if err != nil {
			errors = append(errors, err)
		}
	}

	switch len(errors) {
	case 0:
		return nil
	case 1:
		return errors[0]
	default:
		return &Errors{errors}
	}
}

// UsageError signals that the command itself was invoked incorrectly, as
// opposed to being handed an invalid value. Callers abort on it.
type UsageError struct {
	msg string
}

func NewUsageError(format string, args ...interface{}) error {
	return &UsageError{fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string {
	return "usage: " + e.msg
}

// IsUsage reports whether err, or any error it wraps, is a *UsageError.
func IsUsage(err error) bool {
	var usage *UsageError
	return stderrors.As(err, &usage)
}
