package stackswitch

// Dispatch is called the first time a freshly Init'd Pointer is
// switched into, with the handshake word passed on that first Switch
// and a Pointer back to the caller. The root package sets this once,
// in an init func, to a closure that knows how to turn argWord back
// into a typed Generator body. It is package-level rather than a
// parameter of Init because the entry point must stay non-generic
// while the actual body it dispatches to is a generic instantiation
// per Generator.
var Dispatch func(argWord uintptr, callerSP Pointer)

// Switch sends arg to whoever is waiting at target, then blocks until
// something switches back to this call's own paused point. It returns
// what was sent and a Pointer the caller can later Switch back into to
// resume whoever just switched to it.
//
// Switch is symmetric: both sides of a handshake call it the same way,
// each targeting the Pointer the other side last returned.
func Switch(arg uintptr, target Pointer) (uintptr, Pointer) {
	self := Pointer{c: make(chan message)}
	target.c <- message{arg: arg, from: self}
	m := <-self.c
	return m.arg, m.from
}

// Init starts the generator's goroutine, parked waiting for its first
// Switch, and returns a Pointer to it. When that first message
// arrives, Dispatch runs on the new goroutine with the handshake word
// and the Pointer back to whoever constructed it.
func Init() Pointer {
	p := Pointer{c: make(chan message)}
	go func() {
		m := <-p.c
		Dispatch(m.arg, m.from)
	}()
	return p
}
