// Copyright (c) 2026
// Author: momentics <momentics@gmail.com>

// Package poller decides when the shim gets fed. A Loop blocks on a
// pluggable readiness waiter and, per wake-up, feeds the shim exactly once
// for each descriptor that reported pending input. The available wait
// mechanisms live in a static registry selected by name at startup.
package poller
