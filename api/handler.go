// File: api/handler.go
// Package api defines the LineHandler callback type.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// LineHandler receives each completed line from the backend.
//
// When eof is true the input source is exhausted and line is empty. The
// handler owns the delivered line; the backend never reuses it. The exact
// signature replaces the untyped callback pointer a C line editor would
// accept, so no cast is ever needed.
type LineHandler func(line string, eof bool)
