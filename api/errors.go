// Package api
// Author: momentics <momentics@gmail.com>
//
// Sentinel errors shared across replfeed packages.

package api

import "errors"

var (
	// ErrNoBackend reports that no backend implementation could be
	// resolved. This is a deployment precondition, never retried.
	ErrNoBackend = errors.New("no line-editor backend resolved")

	// ErrNilHandler rejects an Install call with a nil callback.
	ErrNilHandler = errors.New("nil line handler")

	// ErrHandlerBound rejects an Install call while a handler is already
	// bound. Remove the existing binding first.
	ErrHandlerBound = errors.New("a line handler is already installed")

	// ErrNotInstalled reports a FeedOne or Remove call with no handler
	// bound at the backend.
	ErrNotInstalled = errors.New("no line handler installed")

	// ErrNotSupported marks readiness mechanisms unavailable on this
	// platform.
	ErrNotSupported = errors.New("readiness mechanism not supported on this platform")

	// ErrUnknownMechanism reports a registry lookup miss.
	ErrUnknownMechanism = errors.New("unknown readiness mechanism")
)
