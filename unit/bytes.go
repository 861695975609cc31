// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

const (
	Byte = 1

	// The decimal (SI) prefix are powers of 1000.
	Kilobyte = Byte * 1000
	Megabyte = Kilobyte * 1000
	Gigabyte = Megabyte * 1000

	KB = Kilobyte
	MB = Megabyte
	GB = Gigabyte
)
