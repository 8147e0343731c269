package fringego

import (
	"runtime"
	"unsafe"

	"github.com/corostack/fringego/internal/stackswitch"
)

// Yielder is the handle a generator's body uses to suspend itself and
// hand a value back to whichever goroutine called Resume. It is only
// valid for the duration of the call to the body function that
// received it.
type Yielder[I, O any] struct {
	caller stackswitch.Pointer
}

// Suspend hands output back to the generator's caller and blocks until
// the next Resume, returning the input it was called with.
func (y *Yielder[I, O]) Suspend(output O) I {
	out := output
	argWord := uintptr(unsafe.Pointer(&out))
	inWord, resumerSP := stackswitch.Switch(argWord, y.caller)
	y.caller = resumerSP
	runtime.KeepAlive(out)
	return *(*I)(unsafe.Pointer(inWord))
}
