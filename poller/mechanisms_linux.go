//go:build linux
// +build linux

// File: poller/mechanisms_linux.go
// Package poller - Linux readiness waiters: poll(2), select(2), epoll(7).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package poller

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func mechanisms() []Mechanism {
	return []Mechanism{
		{Name: "poll", newWaiter: func() waiter { return &pollWaiter{} }},
		{Name: "select", newWaiter: func() waiter { return &selectWaiter{} }},
		{Name: "epoll", newWaiter: func() waiter { return &epollWaiter{} }},
	}
}

// pollWaiter waits on an explicit (descriptor, interest) list with an
// infinite timeout.
type pollWaiter struct {
	fds []unix.PollFd
}

func (p *pollWaiter) prepare(fds []int) error {
	p.fds = make([]unix.PollFd, len(fds))
	for i, fd := range fds {
		// x/sys/unix exports no POLLRDNORM/POLLRDBAND on Linux; the EPOLL*
		// names carry the same bit values (0x40/0x80) as the poll(2) flags.
		p.fds[i] = unix.PollFd{Fd: int32(fd), Events: unix.EPOLLRDNORM | unix.EPOLLRDBAND}
	}
	return nil
}

func (p *pollWaiter) wait() ([]Event, error) {
	n, err := unix.Poll(p.fds, -1)
	if err == unix.EINTR {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	var events []Event
	for i := range p.fds {
		// HUP/ERR still wake the feed: a drained pipe with a closed write
		// end never raises a readable flag again, but the editor must get
		// the chance to observe the zero-byte read.
		if p.fds[i].Revents&(unix.EPOLLRDNORM|unix.EPOLLRDBAND|unix.POLLHUP|unix.POLLERR) != 0 {
			events = append(events, Event{FD: int(p.fds[i].Fd)})
		}
	}
	return events, nil
}

func (p *pollWaiter) close() error { return nil }

// selectWaiter rebuilds a descriptor set around a single descriptor each
// iteration and waits with an infinite timeout.
type selectWaiter struct {
	fd int
}

func (s *selectWaiter) prepare(fds []int) error {
	if len(fds) != 1 {
		return fmt.Errorf("select watches exactly one descriptor, got %d", len(fds))
	}
	s.fd = fds[0]
	return nil
}

func (s *selectWaiter) wait() ([]Event, error) {
	var set unix.FdSet
	set.Zero()
	set.Set(s.fd)
	n, err := unix.Select(s.fd+1, &set, nil, nil, nil)
	if err == unix.EINTR {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if n > 0 && set.IsSet(s.fd) {
		return []Event{{FD: s.fd}}, nil
	}
	return nil, nil
}

func (s *selectWaiter) close() error { return nil }

// epollWaiter registers the watch set once and waits on the epoll instance.
type epollWaiter struct {
	epfd int
	fds  []int
}

func (e *epollWaiter) prepare(fds []int) error {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return fmt.Errorf("epoll create: %w", err)
	}
	e.epfd = epfd
	e.fds = fds
	for _, fd := range fds {
		// Level-triggered: the feed consumes one byte per notification, so
		// remaining input must keep the descriptor ready.
		ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(fd)}
		if err := unix.EpollCtl(epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
			return fmt.Errorf("epoll ctl add: %w", err)
		}
	}
	return nil
}

func (e *epollWaiter) wait() ([]Event, error) {
	var buf [8]unix.EpollEvent
	n, err := unix.EpollWait(e.epfd, buf[:], -1)
	if err == unix.EINTR {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	ready := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		if buf[i].Events&(unix.EPOLLIN|unix.EPOLLHUP|unix.EPOLLERR) != 0 {
			ready[int(buf[i].Fd)] = true
		}
	}
	// Feed in registration order so one wake-up stays deterministic.
	var events []Event
	for _, fd := range e.fds {
		if ready[fd] {
			events = append(events, Event{FD: fd})
		}
	}
	return events, nil
}

func (e *epollWaiter) close() error { return unix.Close(e.epfd) }
