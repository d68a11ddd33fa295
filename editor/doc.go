// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package editor implements the real line-editor backend: a callback-driven
// reader over a raw file descriptor. Each feed consumes exactly one byte;
// a newline completes the accumulated line, a zero-byte read signals
// end-of-input. Rendering, cursor movement and history stay out of scope.
package editor
