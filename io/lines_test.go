// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineWriter(t *testing.T) {
	buf := new(bytes.Buffer)
	w := NewLineWriter(buf)

	n, err := WriteLines(w, "You entered: 24 mb.", "", "BYTES")
	require.NoError(t, err)
	assert.Equal(t, buf.Len(), n)
	assert.Equal(t, "You entered: 24 mb.\n\nBYTES\n", buf.String())
}

func TestLineRoundTrip(t *testing.T) {
	buf := new(bytes.Buffer)
	expected := []string{"first", "", "  padded  ", "last"}

	_, err := WriteLines(NewLineWriter(buf), expected...)
	require.NoError(t, err)

	actual, err := ReadAllLines(NewLineReader(buf))
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestLineReaderToleratesMissingTerminator(t *testing.T) {
	lines, err := ReadAllLines(NewLineReader(bytes.NewBufferString("a\r\nb")))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)

	lines, err = ReadAllLines(NewLineReader(new(bytes.Buffer)))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriteLinesStopsOnError(t *testing.T) {
	errWrite := errors.New("write failed")
	n, err := WriteLines(NewLineWriter(failingWriter{errWrite}), "a", "b")
	assert.ErrorIs(t, err, errWrite)
	assert.Zero(t, n)
}
