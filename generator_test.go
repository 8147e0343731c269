package fringego

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corostack/fringego/internal/stackalloc"
)

const testStackSize = 64 * 1024

func newTestStack(t *testing.T) *stackalloc.GuardedOSStack {
	t.Helper()
	s, err := stackalloc.NewGuardedOSStack(testStackSize)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGeneratorYieldsDoubledValues(t *testing.T) {
	stack := newTestStack(t)
	gen, err := NewGenerator[int, int, string](stack, func(y *Yielder[int, int], first int) string {
		n := first
		for {
			n = y.Suspend(n * 2)
		}
	}, nil)
	require.NoError(t, err)
	require.Equal(t, Runnable, gen.State())

	out, ok := gen.Resume(3)
	require.True(t, ok)
	require.Equal(t, 6, out)

	out, ok = gen.Resume(10)
	require.True(t, ok)
	require.Equal(t, 20, out)
}

func TestGeneratorCompletesAndUnwraps(t *testing.T) {
	stack := newTestStack(t)
	gen, err := NewGenerator[int, int, string](stack, func(y *Yielder[int, int], first int) string {
		if first > 0 {
			y.Suspend(first)
		}
		return "done"
	}, nil)
	require.NoError(t, err)

	out, ok := gen.Resume(5)
	require.True(t, ok)
	require.Equal(t, 5, out)

	_, ok = gen.Resume(0)
	require.False(t, ok)
	require.Equal(t, Done, gen.State())

	result, err := gen.Unwrap()
	require.NoError(t, err)
	require.Equal(t, "done", result)
}

func TestUnwrapWhileRunnableErrors(t *testing.T) {
	stack := newTestStack(t)
	gen, err := NewGenerator[int, int, string](stack, func(y *Yielder[int, int], first int) string {
		y.Suspend(first)
		return "done"
	}, nil)
	require.NoError(t, err)

	_, err = gen.Unwrap()
	require.ErrorIs(t, err, ErrStillRunnable)
}

func TestResumeAfterDoneReturnsNoneRepeatedly(t *testing.T) {
	stack := newTestStack(t)
	gen, err := NewGenerator[int, int, string](stack, func(y *Yielder[int, int], first int) string {
		return "done"
	}, nil)
	require.NoError(t, err)

	_, ok := gen.Resume(0)
	require.False(t, ok)
	require.Equal(t, Done, gen.State())

	for i := 0; i < 3; i++ {
		out, ok := gen.Resume(0)
		require.False(t, ok)
		require.Zero(t, out)
	}
}

func TestGeneratorPropagatesBodyPanic(t *testing.T) {
	stack := newTestStack(t)
	gen, err := NewGenerator[int, int, string](stack, func(y *Yielder[int, int], first int) string {
		panic(errors.New("boom"))
	}, nil)
	require.NoError(t, err)

	require.PanicsWithError(t, "boom", func() {
		gen.Resume(0)
	})
	require.Equal(t, Done, gen.State())

	// The panic already surfaced on the triggering call; every Resume
	// after that is normal end, not a repeat of the panic.
	out, ok := gen.Resume(0)
	require.False(t, ok)
	require.Zero(t, out)
}

func TestNewGeneratorOSRecyclesThroughPool(t *testing.T) {
	pool, err := stackalloc.NewPool(2)
	require.NoError(t, err)
	t.Cleanup(pool.Evict)

	cfg := NewConfig().WithStackPool(pool)

	gen, err := NewGeneratorOS[int, int, struct{}](testStackSize, func(y *Yielder[int, int], first int) struct{} {
		y.Suspend(first + 1)
		return struct{}{}
	}, cfg)
	require.NoError(t, err)

	out, ok := gen.Resume(1)
	require.True(t, ok)
	require.Equal(t, 2, out)
	require.NoError(t, gen.Close())
}
