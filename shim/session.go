// File: shim/session.go
// Package shim implements the interposing Session over a line-editor backend.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package shim

import (
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"

	"github.com/momentics/replfeed/api"
)

// Session interposes on one api.Backend. It holds the single handler binding
// and the line-completion flag, and emits a marker on every transition into
// the "ready for more input" state.
//
// A Session is single-threaded by contract: the readiness loop, the backend,
// and the handler all run on one logical thread of control, so no locking is
// used. The wrapped backend invokes the handler synchronously from within
// FeedOne, never concurrently with it.
type Session struct {
	backend api.Backend
	markers io.Writer
	log     log15.Logger

	// handler is the caller's real handler; non-nil exactly between a
	// successful Install and the next Remove.
	handler api.LineHandler

	// awaiting is true while the session is idle and ready for more input,
	// false while a line is being composed or delivered.
	awaiting bool
}

// New builds a Session over b. A nil backend is a linkage precondition
// violation and yields api.ErrNoBackend.
func New(b api.Backend, opts ...Option) (*Session, error) {
	if b == nil {
		return nil, api.ErrNoBackend
	}
	s := &Session{
		backend: b,
		markers: os.Stdout,
		log:     discardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Install stores h as the session's bound handler and forwards to the
// backend with the tracking wrapper substituted for h. Installing over a
// live binding is rejected with api.ErrHandlerBound; remove first.
//
// A fresh install implies the editor is about to wait for input, so when the
// session is not already in the awaiting state it emits one transition
// marker before forwarding.
func (s *Session) Install(prompt string, h api.LineHandler) error {
	if h == nil {
		return api.ErrNilHandler
	}
	if s.handler != nil {
		return api.ErrHandlerBound
	}

	if !s.awaiting {
		s.emitMarker("install")
		s.awaiting = true
	}
	s.handler = h

	if err := s.backend.Install(prompt, s.deliver); err != nil {
		s.handler = nil
		return fmt.Errorf("install: %w", err)
	}
	s.log.Debug("handler installed", "prompt", prompt)
	return nil
}

// FeedOne forwards one readiness notification to the backend. It mutates no
// session state of its own; all bookkeeping happens inside the wrapper the
// backend calls back into when a line completes.
func (s *Session) FeedOne() error {
	return s.backend.FeedOne()
}

// Remove forwards to the backend and unconditionally clears both the
// binding and the awaiting flag, regardless of prior state.
func (s *Session) Remove() error {
	err := s.backend.Remove()
	s.awaiting = false
	s.handler = nil
	if err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	s.log.Debug("handler removed")
	return nil
}

// Installed reports whether a handler is currently bound.
func (s *Session) Installed() bool {
	return s.handler != nil
}

// Awaiting reports whether the session is idle and ready for more input.
func (s *Session) Awaiting() bool {
	return s.awaiting
}

// deliver is the wrapper callback installed at the backend in place of the
// caller's handler. The backend invokes it with a completed line, or with
// eof set once the input source is exhausted.
func (s *Session) deliver(line string, eof bool) {
	if s.handler == nil {
		// Delivery after Remove or before any Install. The protocol was
		// violated by the consumer; there is no sane way to continue.
		s.log.Crit("line delivered with no handler bound", "op", "deliver")
		panic(fmt.Sprintf("shim: %v", api.ErrNotInstalled))
	}

	s.awaiting = false
	s.handler(line, eof)

	// The handler may have torn down the binding via Remove; in that case
	// the session stays out of the awaiting state and no marker is emitted.
	if s.handler != nil {
		s.emitMarker("handler wrapper")
		s.awaiting = true
	}
}

// emitMarker writes the readiness transition marker. The surrounding blank
// lines keep it recognizable in the middle of echoed editor output.
func (s *Session) emitMarker(site string) {
	fmt.Fprintf(s.markers, "\nFEED ME (%s)\n\n", site)
}

func discardLogger() log15.Logger {
	l := log15.New()
	l.SetHandler(log15.DiscardHandler())
	return l
}
