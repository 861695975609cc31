// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package size

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/optable/optable-sizeconv/unit"
)

// Record holds the same size in bytes, kilobytes, megabytes and gigabytes.
// The fractional units are always derived from Bytes, so a fractional amount
// that got truncated to bytes does not round trip.
type Record struct {
	Bytes     uint64  `json:"bytes"`
	Kilobytes float64 `json:"kilobytes"`
	Megabytes float64 `json:"megabytes"`
	Gigabytes float64 `json:"gigabytes"`
}

func NewRecord(s Size) Record {
	bytes := s.ByteCount()
	return Record{
		Bytes:     bytes,
		Kilobytes: float64(bytes) / unit.Kilobyte,
		Megabytes: float64(bytes) / unit.Megabyte,
		Gigabytes: float64(bytes) / unit.Gigabyte,
	}
}

const columnWidth = 15

var tableHeader = []string{"BYTES", "KB", "MB", "GB"}

// Table renders the record as a header row and a data row of left aligned
// columns. There is no trailing newline.
func (r Record) Table() string {
	data := []string{
		strconv.FormatUint(r.Bytes, 10),
		fixed(r.Kilobytes),
		fixed(r.Megabytes),
		fixed(r.Gigabytes),
	}
	return tableRow(tableHeader) + "\n" + tableRow(data)
}

// Summary renders the record on a single line.
func (r Record) Summary() string {
	return fmt.Sprintf(
		`Sizes { bytes: "%d bytes", kilobytes: "%s kilobytes", megabytes: "%s megabytes", gigabytes: "%s gigabytes" }`,
		r.Bytes, fixed(r.Kilobytes), fixed(r.Megabytes), fixed(r.Gigabytes),
	)
}

// JSON renders the record as a json object.
func (r Record) JSON() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed marshaling size record: %w", err)
	}
	return string(b), nil
}

func tableRow(cells []string) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = fmt.Sprintf("%-*s", columnWidth, cell)
	}
	return strings.Join(padded, " ")
}

func fixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
