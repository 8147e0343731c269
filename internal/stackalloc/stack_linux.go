//go:build linux && (amd64 || arm64)

package stackalloc

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const pageSize = 4096

// NewGuardedOSStack mmaps size bytes (rounded up to the page size) plus
// one leading guard page mapped PROT_NONE, and PROT_READ|PROT_WRITE for
// the rest.
func NewGuardedOSStack(size int) (*GuardedOSStack, error) {
	size = roundUp(size, pageSize)
	full, err := unix.Mmap(-1, 0, size+pageSize, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("stackalloc: mmap: %w", err)
	}
	usable := full[pageSize:]
	if err := unix.Mprotect(usable, unix.PROT_READ|unix.PROT_WRITE); err != nil {
		_ = unix.Munmap(full)
		return nil, fmt.Errorf("stackalloc: mprotect: %w", err)
	}
	return &GuardedOSStack{
		PlainOSStack: PlainOSStack{full: full, mem: usable},
		guardBytes:   pageSize,
	}, nil
}

// NewPlainOSStack mmaps size bytes (rounded up to the page size) with no
// guard page.
func NewPlainOSStack(size int) (*PlainOSStack, error) {
	size = roundUp(size, pageSize)
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("stackalloc: mmap: %w", err)
	}
	return &PlainOSStack{full: mem, mem: mem}, nil
}

// Close releases the mapping. Safe to call more than once; a Generator
// built by NewGeneratorOS calls it from Generator.Close unless a Pool is
// configured, in which case Pool.Put recycles the stack instead.
func (s *PlainOSStack) Close() error {
	if s.full == nil {
		return nil
	}
	full := s.full
	s.full, s.mem = nil, nil
	return unix.Munmap(full)
}
