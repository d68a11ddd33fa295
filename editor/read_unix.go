//go:build unix
// +build unix

// File: editor/read_unix.go
// Author: momentics <momentics@gmail.com>

package editor

import "golang.org/x/sys/unix"

// readByte performs one raw read, retrying on EINTR.
func readByte(fd int, p []byte) (int, error) {
	for {
		n, err := unix.Read(fd, p)
		if err == unix.EINTR {
			continue
		}
		return n, err
	}
}
