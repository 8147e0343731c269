// Package debugreg informs a potentially attached debugger that a new
// stack region exists, so that stack traces remain sane across a
// switch. There is no portable way to hook an actually-attached
// debugger from pure Go, so this keeps a process-wide table of live
// generator stacks and logs lifecycle events at Debug level — enough
// for a debugger-adjacent tool (or a human staring at logs) to reason
// about which addresses belong to which generator.
package debugreg

import (
	"sync"
	"sync/atomic"

	"github.com/corostack/fringego/internal/corolog"
)

// Stack is the minimal capability Register needs.
type Stack interface {
	Base() uintptr
	Limit() uintptr
}

var (
	nextID     uint64
	registered sync.Map // id uint64 -> Stack
)

// ID is the registration handle; it unregisters on Close (Go has no
// destructors, so Close is the explicit unregister-on-drop equivalent).
type ID struct {
	id     uint64
	logger corolog.Logger
}

// Register informs the registry that a new generator stack exists.
func Register(s Stack, logger corolog.Logger) *ID {
	id := atomic.AddUint64(&nextID, 1)
	registered.Store(id, s)
	if logger != nil {
		logger.Debugf("debugreg: registered stack %d [%#x, %#x)", id, s.Limit(), s.Base())
	}
	return &ID{id: id, logger: logger}
}

// Close unregisters the stack. It is safe to call on a nil *ID and safe
// to call more than once.
func (r *ID) Close() error {
	if r == nil {
		return nil
	}
	if _, ok := registered.LoadAndDelete(r.id); ok && r.logger != nil {
		r.logger.Debugf("debugreg: unregistered stack %d", r.id)
	}
	return nil
}

// Lookup returns the Stack registered under id, if any. Exposed for
// tooling (e.g. a future unwinder) that wants to map a raw address back
// to the generator stack it falls within; the core never calls it.
func Lookup(id uint64) (Stack, bool) {
	v, ok := registered.Load(id)
	if !ok {
		return nil, false
	}
	return v.(Stack), true
}
