// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: Apache-2.0

package fake

import (
	"testing"

	"github.com/momentics/replfeed/api"
)

func TestPushSplitsAtNewlines(t *testing.T) {
	ed := NewEditor()
	ed.Push("a\nb\n")
	if got := ed.PendingFeeds(); got != 2 {
		t.Fatalf("PendingFeeds() = %d, want 2", got)
	}

	ed = NewEditor()
	ed.Push("a\nb")
	if got := ed.PendingFeeds(); got != 2 {
		t.Fatalf("PendingFeeds() = %d, want 2 (one complete, one partial)", got)
	}
}

func TestFeedDeliversAtMostOncePerFeed(t *testing.T) {
	ed := NewEditor()
	var lines []string
	if err := ed.Install("p> ", func(line string, eof bool) {
		if !eof {
			lines = append(lines, line)
		}
	}); err != nil {
		t.Fatalf("Install() error: %v", err)
	}

	ed.Push("hel")
	ed.Push("lo\n")

	if err := ed.FeedOne(); err != nil {
		t.Fatalf("FeedOne() error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("partial chunk delivered a line: %v", lines)
	}
	if err := ed.FeedOne(); err != nil {
		t.Fatalf("FeedOne() error: %v", err)
	}
	if len(lines) != 1 || lines[0] != "hello" {
		t.Fatalf("lines = %v, want [hello]", lines)
	}
}

func TestFeedEOFDiscardsPartialBuffer(t *testing.T) {
	ed := NewEditor()
	var sawEOF bool
	var lines []string
	ed.Install("p> ", func(line string, eof bool) {
		if eof {
			sawEOF = true
			return
		}
		lines = append(lines, line)
	})

	ed.Push("dangling")
	ed.PushEOF()
	ed.FeedOne()
	if err := ed.FeedOne(); err != nil {
		t.Fatalf("FeedOne() error: %v", err)
	}
	if !sawEOF {
		t.Fatal("eof not delivered")
	}
	if len(lines) != 0 {
		t.Fatalf("partial buffer delivered as line: %v", lines)
	}
}

func TestFeedWithoutInstallFails(t *testing.T) {
	ed := NewEditor()
	ed.Push("x\n")
	if err := ed.FeedOne(); err != api.ErrNotInstalled {
		t.Fatalf("FeedOne() error = %v, want ErrNotInstalled", err)
	}
}

func TestFeedPastScriptFails(t *testing.T) {
	ed := NewEditor()
	ed.Install("p> ", func(string, bool) {})
	if err := ed.FeedOne(); err == nil {
		t.Fatal("FeedOne() past script end did not fail")
	}
}
