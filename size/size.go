// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.

// Package size parses "<amount> <unit>" expressions into a value tagged with
// its original unit and expands it into the equivalent bytes, kilobytes,
// megabytes and gigabytes.
package size

import (
	"math"
	"strconv"

	"github.com/optable/optable-sizeconv/unit"
)

type (
	// Size is an amount tagged with the unit it was expressed in. The set of
	// implementations is closed: Bytes, Kilobytes, Megabytes and Gigabytes.
	Size interface {
		// Unit is the unit the amount was expressed in.
		Unit() unit.Unit
		// ByteCount converts the amount to bytes, truncating toward zero.
		ByteCount() uint64

		isSize()
	}

	Bytes     uint64
	Kilobytes float64
	Megabytes float64
	Gigabytes float64
)

// New tags amount with u. Bytes amounts are truncated toward zero.
func New(amount float64, u unit.Unit) Size {
	switch u {
	case unit.Kilobytes:
		return Kilobytes(amount)
	case unit.Megabytes:
		return Megabytes(amount)
	case unit.Gigabytes:
		return Gigabytes(amount)
	default:
		return Bytes(truncate(amount))
	}
}

func (b Bytes) Unit() unit.Unit     { return unit.Bytes }
func (k Kilobytes) Unit() unit.Unit { return unit.Kilobytes }
func (m Megabytes) Unit() unit.Unit { return unit.Megabytes }
func (g Gigabytes) Unit() unit.Unit { return unit.Gigabytes }

func (b Bytes) ByteCount() uint64     { return uint64(b) }
func (k Kilobytes) ByteCount() uint64 { return truncate(float64(k) * unit.Kilobyte) }
func (m Megabytes) ByteCount() uint64 { return truncate(float64(m) * unit.Megabyte) }
func (g Gigabytes) ByteCount() uint64 { return truncate(float64(g) * unit.Gigabyte) }

func (b Bytes) String() string     { return strconv.FormatUint(uint64(b), 10) + " " + b.Unit().String() }
func (k Kilobytes) String() string { return format(float64(k), k.Unit()) }
func (m Megabytes) String() string { return format(float64(m), m.Unit()) }
func (g Gigabytes) String() string { return format(float64(g), g.Unit()) }

func (Bytes) isSize()     {}
func (Kilobytes) isSize() {}
func (Megabytes) isSize() {}
func (Gigabytes) isSize() {}

func format(amount float64, u unit.Unit) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + u.String()
}

// 2^64 is exactly representable as a float64, math.MaxUint64 is not.
const uint64Overflow = 1 << 64

// truncate converts v to an uint64 toward zero. Values below zero (and NaN)
// clamp to 0, values that do not fit saturate to math.MaxUint64.
func truncate(v float64) uint64 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= uint64Overflow:
		return math.MaxUint64
	default:
		return uint64(v)
	}
}
