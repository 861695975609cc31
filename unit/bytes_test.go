// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteUnits(t *testing.T) {
	assert.Equal(t, 1, Byte)

	assert.Equal(t, 1000, Kilobyte)
	assert.Equal(t, 1000*1000, Megabyte)
	assert.Equal(t, 1000*1000*1000, Gigabyte)

	assert.Equal(t, KB, Kilobyte)
	assert.Equal(t, MB, Megabyte)
	assert.Equal(t, GB, Gigabyte)
}
