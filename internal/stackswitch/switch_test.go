package stackswitch

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// TestInitSwitchRoundTrips drives the handshake Generator relies on
// directly: Init parks a goroutine, the first Switch into it reaches
// Dispatch, and values cross back and forth across further Switch
// calls exactly as the machine-word convention promises.
func TestInitSwitchRoundTrips(t *testing.T) {
	prev := Dispatch
	t.Cleanup(func() { Dispatch = prev })

	var seen []int
	Dispatch = func(argWord uintptr, callerSP Pointer) {
		n := *(*int)(unsafe.Pointer(argWord))
		seen = append(seen, n)

		arg, sp := Switch(0, callerSP)
		for arg != 0 {
			n := *(*int)(unsafe.Pointer(arg))
			seen = append(seen, n)
			arg, sp = Switch(0, sp)
		}
	}

	sp := Init()

	first := 1
	_, sp = Switch(uintptr(unsafe.Pointer(&first)), sp)

	second := 2
	_, sp = Switch(uintptr(unsafe.Pointer(&second)), sp)

	third := 3
	_, _ = Switch(uintptr(unsafe.Pointer(&third)), sp)

	require.Equal(t, []int{1, 2, 3}, seen)
}

// TestSwitchIsSymmetric checks that either side of a handshake can call
// Switch the same way: the callee's Switch call both sends its own
// value back and blocks for the next one, with no special-casing of
// "caller" vs "generator" roles baked into Switch itself.
func TestSwitchIsSymmetric(t *testing.T) {
	prev := Dispatch
	t.Cleanup(func() { Dispatch = prev })

	Dispatch = func(argWord uintptr, callerSP Pointer) {
		in := *(*int)(unsafe.Pointer(argWord))
		out := in * 2
		Switch(uintptr(unsafe.Pointer(&out)), callerSP)
	}

	sp := Init()
	in := 21
	outWord, _ := Switch(uintptr(unsafe.Pointer(&in)), sp)
	require.Equal(t, 42, *(*int)(unsafe.Pointer(outWord)))
}
