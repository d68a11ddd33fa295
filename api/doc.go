// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package api defines the public contracts of replfeed: the three-call
// asynchronous line-editor backend, the typed line handler callback, and the
// sentinel errors shared by all implementations.
package api
