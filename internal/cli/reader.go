package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// LineReader provides context-aware line input that can be interrupted.
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader creates a line reader over r.
func NewLineReader(r io.Reader) *LineReader {
	if r == nil {
		panic("reader cannot be nil")
	}

	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine reads one line, trimmed of surrounding whitespace, respecting
// context cancellation. A canceled context returns ErrInputCancelled even if
// the underlying read is still pending.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && (res.err != io.EOF || res.value == "") {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}
