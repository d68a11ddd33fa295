//go:build !linux
// +build !linux

// File: poller/mechanisms_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub waiters for unsupported platforms. The registry still lists every
// mechanism so --help output is identical everywhere; running one fails
// with api.ErrNotSupported.

package poller

import "github.com/momentics/replfeed/api"

func mechanisms() []Mechanism {
	stub := func() waiter { return stubWaiter{} }
	return []Mechanism{
		{Name: "poll", newWaiter: stub},
		{Name: "select", newWaiter: stub},
		{Name: "epoll", newWaiter: stub},
	}
}

type stubWaiter struct{}

func (stubWaiter) prepare([]int) error    { return api.ErrNotSupported }
func (stubWaiter) wait() ([]Event, error) { return nil, api.ErrNotSupported }
func (stubWaiter) close() error           { return nil }
