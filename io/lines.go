// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package io

import (
	"bufio"
	"errors"
	"io"
)

// LineWriter writes text one line at a time, terminating each line with a
// `\n`. The line must not contain a newline itself, this is the
// responsibility of the caller.
type LineWriter interface {
	// WriteLine returns the number of bytes written, newline included.
	WriteLine(line string) (int, error)
}

// LineReader reads back lines written by a LineWriter, without their
// terminator. Returns io.EOF when no lines are left.
type LineReader interface {
	ReadLine() (string, error)
}

// NewLineWriter creates a LineWriter on top of w.
func NewLineWriter(w io.Writer) LineWriter {
	return lineWriterFn(func(line string) (int, error) {
		n, err := io.WriteString(w, line)
		if err != nil {
			return n, err
		}

		m, err := w.Write([]byte{'\n'})
		return n + m, err
	})
}

// WriteLines writes every line in order and stops at the first error.
func WriteLines(w LineWriter, lines ...string) (int, error) {
	var total int
	for _, line := range lines {
		n, err := w.WriteLine(line)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// NewLineReader uses a bufio.Scanner underneath, so `\r\n` terminators are
// accepted and a missing final terminator is tolerated.
func NewLineReader(r io.Reader) LineReader {
	scanner := bufio.NewScanner(r)

	return lineReaderFn(func() (string, error) {
		if !scanner.Scan() {
			err := scanner.Err()
			if err == nil {
				err = io.EOF
			}
			return "", err
		}
		return scanner.Text(), nil
	})
}

// ReadAllLines returns every line exposed by a LineReader until io.EOF is
// reached. If an error is encountered, it returns said error with a nil slice.
func ReadAllLines(r LineReader) ([]string, error) {
	var lines []string
	for {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			return lines, nil
		} else if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
}

type lineWriterFn func(string) (int, error)

func (f lineWriterFn) WriteLine(line string) (int, error) {
	return f(line)
}

type lineReaderFn func() (string, error)

func (f lineReaderFn) ReadLine() (string, error) {
	return f()
}
