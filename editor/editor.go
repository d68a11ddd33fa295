// File: editor/editor.go
// Package editor implements the fd-backed callback line editor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package editor

import (
	"fmt"
	"io"
	"os"

	"github.com/momentics/replfeed/api"
)

// CallbackEditor accumulates bytes from a descriptor and hands completed
// lines to the installed handler. It satisfies api.Backend.
type CallbackEditor struct {
	fd      int
	out     io.Writer
	prompt  string
	handler api.LineHandler
	buf     []byte
}

var _ api.Backend = (*CallbackEditor)(nil)

// Option customizes editor initialization.
type Option func(*CallbackEditor)

// WithOutput redirects prompt rendering. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *CallbackEditor) {
		e.out = w
	}
}

// New builds an editor reading from fd. The descriptor is validated here,
// once, so a broken environment surfaces at startup rather than at the
// first feed.
func New(fd int, opts ...Option) (*CallbackEditor, error) {
	if fd < 0 {
		return nil, fmt.Errorf("editor: invalid descriptor %d: %w", fd, api.ErrNoBackend)
	}
	e := &CallbackEditor{
		fd:  fd,
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Install binds h and renders the prompt.
func (e *CallbackEditor) Install(prompt string, h api.LineHandler) error {
	if h == nil {
		return api.ErrNilHandler
	}
	e.prompt = prompt
	e.handler = h
	fmt.Fprint(e.out, prompt)
	return nil
}

// FeedOne reads one byte from the descriptor. A newline delivers the
// accumulated line without its terminator; a zero-byte read delivers
// end-of-input; anything else just accumulates.
func (e *CallbackEditor) FeedOne() error {
	if e.handler == nil {
		return api.ErrNotInstalled
	}

	var b [1]byte
	n, err := readByte(e.fd, b[:])
	if err != nil {
		return fmt.Errorf("editor: read fd %d: %w", e.fd, err)
	}
	if n == 0 {
		// End of input. A partially accumulated line is abandoned, the
		// same way the wrapped library abandons an unterminated buffer.
		e.buf = e.buf[:0]
		e.handler("", true)
		return nil
	}

	if b[0] != '\n' {
		e.buf = append(e.buf, b[0])
		return nil
	}

	line := string(e.buf)
	e.buf = e.buf[:0]
	e.handler(line, false)

	// The handler may have removed itself; only a surviving binding gets
	// a fresh prompt.
	if e.handler != nil {
		fmt.Fprint(e.out, e.prompt)
	}
	return nil
}

// Remove unbinds the handler. Idempotent.
func (e *CallbackEditor) Remove() error {
	e.handler = nil
	e.buf = e.buf[:0]
	return nil
}
