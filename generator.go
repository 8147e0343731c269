package fringego

import (
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/corostack/fringego/internal/corolog"
	"github.com/corostack/fringego/internal/debugreg"
	"github.com/corostack/fringego/internal/stackalloc"
	"github.com/corostack/fringego/internal/stackswitch"
)

// entryEnv is handed across the construction handshake as a single
// machine word: a pointer to this value, owned by NewGenerator for as
// long as the handshake is in flight. Dispatch reads it back out on
// the generator's goroutine and invokes run, at which point the
// generic type information baked into run by NewGenerator takes over
// — Dispatch's caller never needs to know I, O, or S.
type entryEnv struct {
	run func(callerSP stackswitch.Pointer)
}

func init() {
	stackswitch.Dispatch = func(argWord uintptr, callerSP stackswitch.Pointer) {
		env := (*entryEnv)(unsafe.Pointer(argWord))
		env.run(callerSP)
	}
}

// State reports where a Generator sits in its lifecycle.
type State int

const (
	// Runnable means the body has not returned: Resume may be called.
	Runnable State = iota
	// Done means the body has returned (or panicked): Resume now
	// returns (zero, false) on every call, and Unwrap returns the
	// final value.
	Done
)

func (s State) String() string {
	switch s {
	case Runnable:
		return "Runnable"
	case Done:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Generator runs body on a dedicated goroutine, suspending at each call
// to (*Yielder[I, O]).Suspend and resuming where it left off on the
// next call to Resume. I is the type Resume feeds in, O the type
// Suspend yields out, and S the type body returns once it's done.
//
// Exactly one of the caller's goroutine and body's goroutine runs at
// any instant — Resume blocks its caller until body either suspends or
// returns — so despite body living on its own goroutine, a Generator
// behaves as a single-threaded, cooperative coroutine. A Generator is
// not safe for concurrent use: only one goroutine may be inside Resume
// (or Unwrap racing a live Resume) at a time.
type Generator[I, O, S any] struct {
	mu sync.Mutex

	stack  Stack
	sp     stackswitch.Pointer
	state  State
	logger corolog.Logger

	debugID *debugreg.ID

	ownedStack *stackalloc.GuardedOSStack
	pool       *stackalloc.Pool

	done     S
	panicVal any
}

// NewGenerator constructs a Generator over stack, which the caller
// continues to own: nothing here allocates or releases it. stack does
// not back body's actual machine stack (see internal/stackswitch); it
// is registered with the debug registry when that is enabled, and
// Close unregisters it without releasing it. Use NewGeneratorOS to
// have fringego manage an OS-backed stack instead.
func NewGenerator[I, O, S any](stack Stack, body func(*Yielder[I, O], I) S, cfg *Config) (*Generator[I, O, S], error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	g := &Generator[I, O, S]{stack: stack, logger: cfg.logger, state: Runnable}
	if cfg.debugRegistry {
		g.debugID = debugreg.Register(stack, cfg.logger)
	}

	g.sp = stackswitch.Init()

	var env entryEnv
	env.run = func(callerSP stackswitch.Pointer) {
		y := &Yielder[I, O]{caller: callerSP}
		// Completes construction below; the same call "returns" again
		// once the first Resume switches back in, this time with a
		// pointer to its input instead of 0.
		firstArg, resumerSP := stackswitch.Switch(0, callerSP)
		y.caller = resumerSP
		input := *(*I)(unsafe.Pointer(firstArg))
		runBody(g, y, body, input)
	}

	argWord := uintptr(unsafe.Pointer(&env))
	_, sp := stackswitch.Switch(argWord, g.sp)
	g.sp = sp

	g.logger.Debugf("fringego: constructed generator on stack [%#x, %#x)", stack.Limit(), stack.Base())
	return g, nil
}

// NewGeneratorOS allocates a guard-paged OS stack of stackSize bytes
// (recycled through cfg's pool if one is configured via
// Config.WithStackPool) and constructs a Generator on it. Close
// releases or recycles the stack.
func NewGeneratorOS[I, O, S any](stackSize int, body func(*Yielder[I, O], I) S, cfg *Config) (*Generator[I, O, S], error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	var (
		stack *stackalloc.GuardedOSStack
		err   error
	)
	if cfg.pool != nil {
		stack, err = cfg.pool.Get(stackSize)
	} else {
		stack, err = stackalloc.NewGuardedOSStack(stackSize)
	}
	if err != nil {
		return nil, err
	}

	g, err := NewGenerator[I, O, S](stack, body, cfg)
	if err != nil {
		_ = stack.Close()
		return nil, err
	}
	g.ownedStack = stack
	g.pool = cfg.pool
	return g, nil
}

func runBody[I, O, S any](g *Generator[I, O, S], y *Yielder[I, O], body func(*Yielder[I, O], I) S, input I) {
	defer func() {
		if r := recover(); r != nil {
			g.panicVal = r
			g.state = Done
			stackswitch.Switch(0, y.caller)
			panic("fringego: generator body resumed after panicking")
		}
	}()

	result := body(y, input)
	g.done = result
	g.state = Done
	stackswitch.Switch(0, y.caller)
	panic("fringego: generator body resumed after returning")
}

// Resume feeds input into the generator and runs it until its next
// Suspend or until it returns. ok is false exactly when the generator
// has finished: its yielded O is then meaningless, and Unwrap holds
// the final S.
//
// Resume on an already-Done generator is a no-op that returns (zero,
// false): resuming past termination is normal end, not misuse. The
// one Resume call that observes the body returning or panicking
// re-raises any panic that reached the body; every call after that
// just returns (zero, false).
func (g *Generator[I, O, S]) Resume(input I) (output O, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state == Done {
		var zero O
		return zero, false
	}

	in := input
	argWord := uintptr(unsafe.Pointer(&in))
	outWord, sp := stackswitch.Switch(argWord, g.sp)
	g.sp = sp
	runtime.KeepAlive(in)

	if outWord == 0 {
		g.state = Done
		if g.panicVal != nil {
			g.logger.Warnf("fringego: generator body panicked: %v", g.panicVal)
			panic(g.panicVal)
		}
		var zero O
		return zero, false
	}
	return *(*O)(unsafe.Pointer(outWord)), true
}

// State reports whether the generator can still be Resumed.
func (g *Generator[I, O, S]) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Unwrap returns the value body returned, once the generator is Done;
// if body panicked, that value is the zero S. It returns
// ErrStillRunnable otherwise.
func (g *Generator[I, O, S]) Unwrap() (S, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != Done {
		var zero S
		return zero, ErrStillRunnable
	}
	return g.done, nil
}

// MustUnwrap is Unwrap for callers that would rather panic than check
// an error.
func (g *Generator[I, O, S]) MustUnwrap() S {
	s, err := g.Unwrap()
	if err != nil {
		panic(err)
	}
	return s
}

// Close releases resources registered on the generator's behalf: its
// debug registration, and, if it was constructed with NewGeneratorOS,
// its stack (recycled through the configured pool, or unmapped).
func (g *Generator[I, O, S]) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	err := g.debugID.Close()
	if g.ownedStack == nil {
		return err
	}
	if g.pool != nil {
		g.pool.Put(g.ownedStack)
	} else if closeErr := g.ownedStack.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	g.ownedStack = nil
	return err
}
