// Package stackswitch is the context-switch primitive: it hands control
// from whichever goroutine calls Switch to whoever is waiting at the
// target Pointer, transferring a single machine word of data across the
// switch, and blocks until something switches back.
//
// A hand-rolled stack-pointer swap (saving callee-saved registers and
// retargeting SP onto a raw mmap'd region) cannot safely host ordinary
// Go code: the Go runtime tracks each goroutine's stack bounds for its
// split-stack prologues, stack-copying GC, and async preemption, and a
// switch to a foreign SP desyncs all three. The realization here keeps
// the exact same handshake contract — a Pointer to switch back into,
// one machine word transferred per switch, a fixed entry point reached
// on the first switch into a freshly Init'd Pointer — but runs the
// generator body on an ordinary goroutine, whose stack the runtime
// manages as it would any other, and uses a pair of rendezvous channels
// as the "register save area" instead of raw memory.
package stackswitch

// Pointer is a handle to one paused side of a switch: the point a
// future Switch targeting it will resume. Exactly one Pointer per
// paused side should exist at any moment — callers must treat it as a
// linear resource, never duplicating a live one.
type Pointer struct {
	c chan message
}

// message is what crosses a Switch: the handshake word, plus the
// Pointer the receiver can later Switch back into to resume the
// sender.
type message struct {
	arg  uintptr
	from Pointer
}
