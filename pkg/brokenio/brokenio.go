// 16 Mar 2026

// Package brokenio wraps an io.ReadCloser and makes it fail on
// command. Readers in this codebase sit on top of files, pipes and
// decompressors, which all fail in the real world; tests use this to
// make sure those failures surface instead of looking like a clean
// end of file.
package brokenio

import (
	"fmt"
	"io"
)

// BrknRdrClsr is a reader that works for a set number of calls and
// then returns an error. With failAfter == 0 the very first read
// fails, which is what reading a vanished file looks like.
type BrknRdrClsr struct {
	rdrOrig   io.ReadCloser
	failAfter int // reads to allow before breaking
	nCalled   int
	closed    bool
}

// NewReader wraps rdr so that read number failAfter+1 fails.
func NewReader(rdr io.ReadCloser, failAfter int) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rdr, failAfter: failAfter}
}

func (b *BrknRdrClsr) Read(p []byte) (int, error) {
	if b.nCalled >= b.failAfter {
		return 0, fmt.Errorf("deliberate breakage after %d reads", b.nCalled)
	}
	b.nCalled++
	return b.rdrOrig.Read(p)
}

// Close closes the wrapped reader. Closing twice is an error, since
// that is a bug worth hearing about in a test.
func (b *BrknRdrClsr) Close() error {
	if b.closed {
		return fmt.Errorf("close of already-closed reader")
	}
	b.closed = true
	return b.rdrOrig.Close()
}
