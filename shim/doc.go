// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package shim interposes on an asynchronous line-editor backend. A Session
// forwards the backend's three calls unchanged while substituting a tracking
// wrapper for the caller's handler, so that every readiness transition of
// the wrapped editor is observable as a marker on the session's output.
package shim
