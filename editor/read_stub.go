//go:build !unix
// +build !unix

// File: editor/read_stub.go
// Author: momentics <momentics@gmail.com>

package editor

import "github.com/momentics/replfeed/api"

func readByte(int, []byte) (int, error) {
	return 0, api.ErrNotSupported
}
