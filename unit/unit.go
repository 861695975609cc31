// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"fmt"
	"strings"

	"github.com/optable/optable-sizeconv/errors"
)

// Unit is one of the recognized decimal size units.
type Unit int

const (
	Bytes Unit = iota
	Kilobytes
	Megabytes
	Gigabytes
)

// Units lists every recognized unit, smallest first.
var Units = []Unit{Bytes, Kilobytes, Megabytes, Gigabytes}

var (
	shortTokens = [...]string{"b", "kb", "mb", "gb"}
	longTokens  = [...]string{"bytes", "kilobytes", "megabytes", "gigabytes"}
	factors     = [...]uint64{Byte, Kilobyte, Megabyte, Gigabyte}
)

func (u Unit) valid() bool {
	return u >= Bytes && u <= Gigabytes
}

// String returns the short token, e.g. "mb".
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return shortTokens[u]
}

// Name returns the long token, e.g. "megabytes".
func (u Unit) Name() string {
	if !u.valid() {
		return u.String()
	}
	return longTokens[u]
}

// Factor is the number of bytes in one u.
func (u Unit) Factor() uint64 {
	if !u.valid() {
		return 0
	}
	return factors[u]
}

// Parse matches a unit token case-insensitively against the short and long
// names of every unit. Only exact matches are accepted.
func Parse(token string) (Unit, error) {
	lower := strings.ToLower(token)
	for _, u := range Units {
		if lower == shortTokens[u] || lower == longTokens[u] {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", errors.ErrUnknownUnit, token)
}
