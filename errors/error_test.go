// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockErr struct{}

func (m *mockErr) Error() string {
	return "mockErr"
}

var myErr = new(mockErr)

func TestTokenError(t *testing.T) {
	err := NewTokenError(1, "xyz", myErr)

	var tokErr *TokenError
	assert.ErrorAs(t, err, &tokErr)
	if errors.As(err, &tokErr) {
		assert.Equal(t, 1, tokErr.Position())
		assert.Equal(t, "xyz", tokErr.Token())
		assert.Equal(t, myErr, tokErr.Unwrap())
	}
	assert.Equal(t, `Token(1 "xyz"): mockErr`, err.Error())
}

func TestTokenErrorMatchesSentinel(t *testing.T) {
	err := NewTokenError(0, "abc", fmt.Errorf("%w: %q", ErrInvalidAmount, "abc"))
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.False(t, errors.Is(err, ErrUnknownUnit))
	assert.False(t, IsUsage(err))
}

func TestErrors(t *testing.T) {
	assert.Nil(t, NewErrors(), "NewErrors should return nil on empty array")
	assert.Nil(t, NewErrors(nil, nil), "NewErrors should return nil when errors only contain nils")
	assert.Equal(t, myErr, NewErrors(myErr), "NewErrors should unwrap a single error")

	err := NewErrors(nil, myErr, nil, myErr, nil)
	var errs *Errors
	assert.ErrorAs(t, err, &errs)
	if errors.As(err, &errs) {
		assert.ElementsMatch(t, []error{myErr, myErr}, errs.Errors())
		assert.Equal(t, myErr, errs.Unwrap())
	}
	assert.Equal(t, "Multiple errors: (1){mockErr}, (2){mockErr}", err.Error())
}

func TestErrorsMatchesEverySentinel(t *testing.T) {
	err := NewErrors(
		NewTokenError(0, "abc", ErrInvalidAmount),
		NewTokenError(1, "xyz", ErrUnknownUnit),
	)

	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.ErrorIs(t, err, ErrUnknownUnit)
	assert.False(t, errors.Is(err, ErrNegativeAmount))
}

func TestUsageError(t *testing.T) {
	err := NewUsageError("expected %d tokens, got %d", 2, 3)
	assert.True(t, IsUsage(err))
	assert.True(t, IsUsage(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, "usage: expected 2 tokens, got 3", err.Error())

	assert.False(t, IsUsage(myErr))
	assert.False(t, IsUsage(nil))
}
