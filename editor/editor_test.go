//go:build unix
// +build unix

// File: editor/editor_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package editor

import (
	"bytes"
	"os"
	"testing"

	"github.com/momentics/replfeed/api"
)

func pipeEditor(t *testing.T) (*CallbackEditor, *os.File, *bytes.Buffer) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() { r.Close(); w.Close() })

	out := &bytes.Buffer{}
	ed, err := New(int(r.Fd()), WithOutput(out))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return ed, w, out
}

func TestNewRejectsBadDescriptor(t *testing.T) {
	if _, err := New(-1); err == nil {
		t.Fatal("New(-1) did not fail")
	}
}

func TestInstallRendersPrompt(t *testing.T) {
	ed, _, out := pipeEditor(t)
	if err := ed.Install("p> ", func(string, bool) {}); err != nil {
		t.Fatalf("Install() error: %v", err)
	}
	if out.String() != "p> " {
		t.Fatalf("output = %q, want prompt", out.String())
	}
}

func TestFeedAccumulatesUntilNewline(t *testing.T) {
	ed, w, out := pipeEditor(t)
	var lines []string
	ed.Install("p> ", func(line string, eof bool) {
		if !eof {
			lines = append(lines, line)
		}
	})

	if _, err := w.WriteString("hi\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := ed.FeedOne(); err != nil {
			t.Fatalf("FeedOne() #%d error: %v", i, err)
		}
	}

	if len(lines) != 1 || lines[0] != "hi" {
		t.Fatalf("lines = %v, want [hi]", lines)
	}
	// Prompt once at install, once again after the delivered line.
	if out.String() != "p> p> " {
		t.Fatalf("output = %q, want two prompts", out.String())
	}
}

func TestFeedDeliversEOFOnClosedWriteEnd(t *testing.T) {
	ed, w, _ := pipeEditor(t)
	var sawEOF bool
	ed.Install("p> ", func(line string, eof bool) {
		sawEOF = eof
	})

	w.Close()
	if err := ed.FeedOne(); err != nil {
		t.Fatalf("FeedOne() error: %v", err)
	}
	if !sawEOF {
		t.Fatal("eof not delivered")
	}
}

func TestHandlerRemovingItselfSkipsPromptRedraw(t *testing.T) {
	ed, w, out := pipeEditor(t)
	ed.Install("p> ", func(line string, eof bool) {
		ed.Remove()
	})

	w.WriteString("x\n")
	ed.FeedOne()
	if err := ed.FeedOne(); err != nil {
		t.Fatalf("FeedOne() error: %v", err)
	}

	if out.String() != "p> " {
		t.Fatalf("output = %q, want single prompt (no redraw after removal)", out.String())
	}
	if err := ed.FeedOne(); err != api.ErrNotInstalled {
		t.Fatalf("FeedOne() after removal = %v, want ErrNotInstalled", err)
	}
}

func TestFeedWithoutInstall(t *testing.T) {
	ed, _, _ := pipeEditor(t)
	if err := ed.FeedOne(); err != api.ErrNotInstalled {
		t.Fatalf("FeedOne() = %v, want ErrNotInstalled", err)
	}
}
