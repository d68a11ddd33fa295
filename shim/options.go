// File: shim/options.go
// Package shim defines functional options for Session construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package shim

import (
	"io"

	"github.com/inconshreveable/log15"
)

// Option customizes Session initialization.
type Option func(*Session)

// WithMarkerWriter redirects readiness transition markers. Defaults to
// os.Stdout, where the driving process expects to observe them.
func WithMarkerWriter(w io.Writer) Option {
	return func(s *Session) {
		s.markers = w
	}
}

// WithLogger attaches a structured logger for lifecycle diagnostics.
func WithLogger(l log15.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}
