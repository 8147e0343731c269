//go:build !(linux && (amd64 || arm64))

package stackalloc

import "errors"

const pageSize = 4096

// ErrUnsupportedPlatform is returned by the OS-backed constructors on
// targets without an mmap-based implementation.
var ErrUnsupportedPlatform = errors.New("stackalloc: OS-backed stacks are not supported on this platform")

func NewGuardedOSStack(size int) (*GuardedOSStack, error) {
	return nil, ErrUnsupportedPlatform
}

func NewPlainOSStack(size int) (*PlainOSStack, error) {
	return nil, ErrUnsupportedPlatform
}

func (s *PlainOSStack) Close() error { return nil }
