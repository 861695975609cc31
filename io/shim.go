// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package io

import (
	"bufio"
	"io"
)

const defaultBufSize = 4096

// NewBufferWriteCloserSize wraps an io.Writer in a buffer that is flushed on
// Close. If the writer also implements the io.Closer interface, it is closed
// after the flush. Wrap the writer with NoClose to keep it open.
func NewBufferWriteCloserSize(w io.Writer, size int) io.WriteCloser {
	if size <= 0 {
		size = defaultBufSize
	}

	buf := bufio.NewWriterSize(w, size)

	closers := []io.Closer{CloserFn(buf.Flush)}
	if wc, ok := w.(io.Closer); ok {
		closers = append(closers, wc)
	}

	return NewChainedCloser(buf, closers...)
}

// NewBufferWriteCloser is NewBufferWriteCloserSize with a 4KiB buffer, which
// is plenty for a whole report so it reaches w in a single write.
func NewBufferWriteCloser(w io.Writer) io.WriteCloser {
	return NewBufferWriteCloserSize(w, defaultBufSize)
}

// NewChainedCloser returns an io.WriteCloser that closes cs in order and
// stops at the first error.
func NewChainedCloser(w io.Writer, cs ...io.Closer) io.WriteCloser {
	return &chainedCloser{Writer: w, cs: cs}
}

type chainedCloser struct {
	io.Writer
	cs []io.Closer
}

func (w *chainedCloser) Close() error {
	for _, c := range w.cs {
		if err := c.Close(); err != nil {
			return err
		}
	}

	return nil
}

// NoClose hides the Close method of w, e.g. to flush into os.Stdout without
// closing it.
func NoClose(w io.Writer) io.Writer {
	return struct{ io.Writer }{w}
}

// CloserFn implements the io.Closer interface for closures of the same
// signature.
type CloserFn func() error

func (c CloserFn) Close() error {
	return c()
}
