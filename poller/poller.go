// File: poller/poller.go
// Package poller implements the readiness-driven feed loop.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package poller

import (
	"fmt"

	"github.com/inconshreveable/log15"
)

// Feeder consumes one readiness notification. *shim.Session satisfies it.
type Feeder interface {
	FeedOne() error
}

// Event reports that one watched descriptor has input pending. Events are
// transient; they exist only for the duration of one wake-up.
type Event struct {
	FD int
}

// waiter is the single blocking step of the loop. prepare fixes the watch
// set, wait blocks until readiness (a nil, nil return means the wait was
// interrupted and the loop should re-check its stop flag), close releases
// any kernel resources.
type waiter interface {
	prepare(fds []int) error
	wait() ([]Event, error)
	close() error
}

// Mechanism names one readiness-notification strategy.
type Mechanism struct {
	Name string

	newWaiter func() waiter
}

// Run drives l using this mechanism until the loop is stopped or the wait
// primitive fails. A wait failure is returned to the caller; there is no
// retry policy for a broken readiness primitive.
func (m Mechanism) Run(l *Loop) error {
	w := m.newWaiter()
	if err := w.prepare(l.fds); err != nil {
		return fmt.Errorf("%s: prepare: %w", m.Name, err)
	}
	defer w.close()
	return l.run(m.Name, w)
}

// LoopOption customizes Loop initialization.
type LoopOption func(*Loop)

// WithLogger attaches a structured logger for wake-up diagnostics.
func WithLogger(l log15.Logger) LoopOption {
	return func(lp *Loop) {
		lp.log = l
	}
}

// Loop is the readiness state machine: check the stop flag, block in one
// wait step, feed once per notified descriptor, repeat. Stop is observed
// only at the iteration boundary; an in-flight wait is never interrupted
// and a ready batch always completes.
type Loop struct {
	feeder  Feeder
	fds     []int
	stopped bool
	log     log15.Logger
}

// NewLoop builds a loop feeding f on readiness of fds. With no descriptors
// the loop blocks forever (until the wait primitive itself fails).
func NewLoop(f Feeder, fds []int, opts ...LoopOption) *Loop {
	l := &Loop{
		feeder: f,
		fds:    fds,
		log:    discardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Stop requests cooperative termination. The loop notices it at the next
// iteration boundary. Typically called from inside a line handler.
func (l *Loop) Stop() {
	l.stopped = true
}

// Stopped reports whether termination has been requested.
func (l *Loop) Stopped() bool {
	return l.stopped
}

func (l *Loop) run(name string, w waiter) error {
	for !l.stopped {
		events, err := w.wait()
		if err != nil {
			return fmt.Errorf("%s: wait: %w", name, err)
		}
		if len(events) > 0 {
			l.log.Debug("readiness wake-up", "mechanism", name, "ready", len(events))
		}
		for _, ev := range events {
			if err := l.feeder.FeedOne(); err != nil {
				return fmt.Errorf("%s: feed fd %d: %w", name, ev.FD, err)
			}
		}
	}
	return nil
}

func discardLogger() log15.Logger {
	l := log15.New()
	l.SetHandler(log15.DiscardHandler())
	return l
}
