// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package size

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/optable/optable-sizeconv/errors"
	"github.com/optable/optable-sizeconv/unit"
)

// Positions of the tokens in a size expression.
const (
	AmountToken = 0
	UnitToken   = 1
)

// Parse builds a Size from an amount and a unit token. The amount accepts
// anything strconv.ParseFloat does, except negative values.
// The unit token is matched case-insensitively.
//
// Failures are returned as *errors.TokenError, or as *errors.Errors when both
// tokens are invalid.
func Parse(amount, unitToken string) (Size, error) {
	value, amountErr := parseAmount(amount)
	u, unitErr := unit.Parse(unitToken)

	err := errors.NewErrors(
		tokenError(AmountToken, amount, amountErr),
		tokenError(UnitToken, unitToken, unitErr),
	)
	if err != nil {
		return nil, err
	}

	return New(value, u), nil
}

// ParseExpression splits expr on whitespace and parses the two resulting
// tokens. Any other number of tokens is a *errors.UsageError since it means
// the command was misused rather than given a bad value.
func ParseExpression(expr string) (Size, error) {
	tokens := strings.Fields(expr)
	if len(tokens) != 2 {
		return nil, errors.NewUsageError("expected \"<amount> <unit>\", got %d token(s) in %q", len(tokens), expr)
	}

	return Parse(tokens[AmountToken], tokens[UnitToken])
}

// parseAmount accepts "inf", "NaN" and out of range amounts such as "1e400"
// (parsed as infinity). The byte count of those saturates or clamps to zero.
func parseAmount(s string) (float64, error) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidAmount, s)
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: %q", errors.ErrNegativeAmount, s)
	}

	return value, nil
}

func tokenError(pos int, token string, err error) error {
	if err == nil {
		return nil
	}
	return errors.NewTokenError(pos, token, err)
}
