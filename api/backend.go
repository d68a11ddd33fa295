// File: api/backend.go
// Package api defines the asynchronous line-editor backend contract.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Backend is the asynchronous API of a callback-driven line editor: install
// a handler, feed it one readiness-triggered unit of input, remove the
// handler. Concrete providers are editor.CallbackEditor (reads a real file
// descriptor) and fake.Editor (in-memory, for tests).
//
// FeedOne invokes the installed handler zero or one times: exactly once when
// the fed input completes a line or signals end-of-input, zero times while a
// line is still being accumulated.
type Backend interface {
	// Install binds h and renders the prompt. The previous handler, if any,
	// is the caller's problem; see shim.Session for the enforced
	// single-binding protocol.
	Install(prompt string, h LineHandler) error

	// FeedOne consumes one unit of pending input. Call it only after a
	// readiness notification for the backend's input source.
	FeedOne() error

	// Remove unbinds the current handler. Safe to call from inside the
	// handler itself.
	Remove() error
}
