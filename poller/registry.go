// File: poller/registry.go
// Package poller provides the static mechanism registry.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package poller

import "sort"

// registry is fixed at startup; platform files supply the table.
var registry = mechanisms()

// Lookup returns the mechanism registered under name. Absence is the
// caller's usage error, never a silent default.
func Lookup(name string) (Mechanism, bool) {
	for _, m := range registry {
		if m.Name == name {
			return m, true
		}
	}
	return Mechanism{}, false
}

// Names lists every registered mechanism, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, m := range registry {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}
