// Package stackalloc is the concrete, OS-backed stack allocator: it
// provides a contiguous, naturally aligned memory region with an
// optional guard page, and exposes Base()/Limit() for callers that
// need only those two bounds.
package stackalloc

import "unsafe"

// PlainOSStack is an mmap'd stack with only memory guaranteed — no
// guard page, so overflow silently corrupts whatever sits below it.
// Satisfies fringego.Stack.
type PlainOSStack struct {
	full []byte // the entire mmap'd region, including any guard page
	mem  []byte // the usable sub-slice this Stack describes
}

// Base returns one past the highest usable byte; stacks grow down.
func (s *PlainOSStack) Base() uintptr {
	return uintptr(unsafe.Pointer(&s.mem[0])) + uintptr(len(s.mem))
}

// Limit returns the lowest usable byte.
func (s *PlainOSStack) Limit() uintptr {
	return uintptr(unsafe.Pointer(&s.mem[0]))
}

// Size is the usable region's length in bytes.
func (s *PlainOSStack) Size() int { return len(s.mem) }

// GuardedOSStack additionally guarantees that an access below Limit
// faults: a page immediately below the usable region is mapped
// PROT_NONE. Satisfies fringego.GuardedStack.
type GuardedOSStack struct {
	PlainOSStack
	guardBytes int
}

// GuardPage returns the [lo, hi) range that faults on access.
func (s *GuardedOSStack) GuardPage() (lo, hi uintptr) {
	hi = s.Limit()
	return hi - uintptr(s.guardBytes), hi
}

func roundUp(n, multiple int) int {
	if n <= 0 {
		return multiple
	}
	return ((n + multiple - 1) / multiple) * multiple
}
