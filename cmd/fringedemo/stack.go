package main

import (
	"github.com/corostack/fringego/internal/stackalloc"
)

const demoStackSize = 64 * 1024

// newDemoStack allocates a throwaway guard-paged stack for a single
// demo generator; the process exits shortly after, so nothing releases
// it.
func newDemoStack() *stackalloc.GuardedOSStack {
	s, err := stackalloc.NewGuardedOSStack(demoStackSize)
	if err != nil {
		panic(err)
	}
	return s
}
