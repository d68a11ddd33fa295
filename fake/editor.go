// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: Apache-2.0

// Package fake provides an in-memory line-editor backend for tests. Input
// is scripted ahead of time; each FeedOne consumes one queued chunk, so a
// test controls exactly how many readiness notifications it takes to
// complete a line.
package fake

import (
	"fmt"
	"strings"

	"github.com/eapache/queue"

	"github.com/momentics/replfeed/api"
)

// chunk is one scripted unit of input: a text fragment or the eof marker.
type chunk struct {
	text string
	eof  bool
}

// Editor is a scriptable api.Backend. The exported counters let tests
// assert exact forwarding: one shim call, one backend call.
type Editor struct {
	Prompt   string // most recently installed prompt
	Installs int
	Feeds    int
	Removes  int

	pending *queue.Queue
	handler api.LineHandler
	buf     []byte
}

var _ api.Backend = (*Editor)(nil)

// NewEditor builds an empty scripted editor.
func NewEditor() *Editor {
	return &Editor{pending: queue.New()}
}

// Push queues scripted input. Text is split so that each queued chunk
// carries at most one newline, preserving the real backend's contract of
// at most one handler invocation per feed.
func (e *Editor) Push(text string) {
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			e.pending.Add(chunk{text: text})
			return
		}
		e.pending.Add(chunk{text: text[:i+1]})
		text = text[i+1:]
	}
}

// PushEOF queues the end-of-input marker.
func (e *Editor) PushEOF() {
	e.pending.Add(chunk{eof: true})
}

// PendingFeeds reports how many FeedOne calls the script still expects.
func (e *Editor) PendingFeeds() int {
	return e.pending.Length()
}

// Install binds h and records the prompt.
func (e *Editor) Install(prompt string, h api.LineHandler) error {
	if h == nil {
		return api.ErrNilHandler
	}
	e.Prompt = prompt
	e.handler = h
	e.Installs++
	return nil
}

// FeedOne consumes one scripted chunk. Feeding past the end of the script
// is a test bug and fails loudly.
func (e *Editor) FeedOne() error {
	if e.handler == nil {
		return api.ErrNotInstalled
	}
	if e.pending.Length() == 0 {
		return fmt.Errorf("fake: fed with no scripted input pending")
	}
	e.Feeds++

	c := e.pending.Remove().(chunk)
	if c.eof {
		e.buf = e.buf[:0]
		e.handler("", true)
		return nil
	}

	e.buf = append(e.buf, c.text...)
	if strings.HasSuffix(c.text, "\n") {
		line := string(e.buf[:len(e.buf)-1])
		e.buf = e.buf[:0]
		e.handler(line, false)
	}
	return nil
}

// Remove unbinds the handler. Idempotent, like the real backend.
func (e *Editor) Remove() error {
	e.handler = nil
	e.buf = e.buf[:0]
	e.Removes++
	return nil
}
