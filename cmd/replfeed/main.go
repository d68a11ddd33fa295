// File: cmd/replfeed/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// replfeed is the readiness-mechanism test harness: it installs an echoing
// line handler through the interposition shim and drives it from the
// readiness loop selected on the command line.

package main

import (
	"fmt"
	"os"
	"strings"

	docopt "github.com/flynn/go-docopt"
	"github.com/inconshreveable/log15"

	"github.com/momentics/replfeed/editor"
	"github.com/momentics/replfeed/poller"
	"github.com/momentics/replfeed/shim"
)

func main() {
	usage := fmt.Sprintf(`replfeed drives a callback line editor from a readiness loop.

Usage:
  replfeed <mechanism>

Where <mechanism> is one of:
%s`, mechanismList())

	args, _ := docopt.Parse(usage, nil, true, "", false)
	name := args.String["<mechanism>"]

	logger := log15.New("app", "replfeed")
	logger.SetHandler(log15.StreamHandler(os.Stderr, log15.LogfmtFormat()))

	mech, ok := poller.Lookup(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "No poll mechanism found called %s\n", name)
		os.Exit(1)
	}

	fmt.Println("This is a nice")
	fmt.Println("... long")
	fmt.Println("multiline intro.")

	stdin := int(os.Stdin.Fd())

	ed, err := editor.New(stdin)
	if err != nil {
		logger.Crit("editor setup failed", "err", err)
		os.Exit(1)
	}
	sess, err := shim.New(ed, shim.WithLogger(logger))
	if err != nil {
		logger.Crit("session setup failed", "err", err)
		os.Exit(1)
	}

	loop := poller.NewLoop(sess, []int{stdin}, poller.WithLogger(logger))

	err = sess.Install("prompt> ", func(line string, eof bool) {
		if eof {
			loop.Stop()
			if err := sess.Remove(); err != nil {
				logger.Crit("remove failed", "err", err)
				os.Exit(1)
			}
			return
		}
		fmt.Println(line)
	})
	if err != nil {
		logger.Crit("install failed", "err", err)
		os.Exit(1)
	}

	if err := mech.Run(loop); err != nil {
		logger.Crit("readiness loop failed", "mechanism", name, "err", err)
		os.Exit(1)
	}

	fmt.Println("Bye!")
}

func mechanismList() string {
	var b strings.Builder
	for _, n := range poller.Names() {
		fmt.Fprintf(&b, "  %s\n", n)
	}
	return b.String()
}
