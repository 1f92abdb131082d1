package reactive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_SetNotifiesOnChangeOnly(t *testing.T) {
	s := NewScheduler()
	sig := NewSignal(s, 1)

	calls := 0
	cancel := sig.Subscribe(func() { calls++ })

	sig.Set(1)
	assert.Equal(t, 0, calls, "equal value should not notify")

	sig.Set(2)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, sig.Get())

	cancel()
	cancel()
	sig.Set(3)
	assert.Equal(t, 1, calls, "cancelled subscriber should not run")
}

func TestSignal_Update(t *testing.T) {
	sig := NewSignal(NewScheduler(), false)
	sig.Update(func(v bool) bool { return !v })
	assert.True(t, sig.Get())
}

func TestEffect_RunsImmediatelyAndOnChange(t *testing.T) {
	s := NewScheduler()
	a := NewSignal(s, "x")

	var seen []string
	stop := Effect(s, func() { seen = append(seen, a.Get()) }, a)

	a.Set("y")
	stop()
	a.Set("z")

	assert.Equal(t, []string{"x", "y"}, seen)
}

func TestEffect_RunsOncePerBatch(t *testing.T) {
	s := NewScheduler()
	a := NewSignal(s, 0)
	b := NewSignal(s, 0)

	runs := 0
	Effect(s, func() { runs++ }, a, b)
	require.Equal(t, 1, runs)

	before := s.Epoch()
	s.Batch(func() {
		a.Set(1)
		b.Set(1)
		a.Set(2)
	})

	assert.Equal(t, 2, runs)
	assert.Equal(t, before+1, s.Epoch())
}

func TestEffect_NestedBatchFlushesAtOutermost(t *testing.T) {
	s := NewScheduler()
	a := NewSignal(s, 0)

	runs := 0
	Effect(s, func() { runs++ }, a)

	s.Batch(func() {
		s.Batch(func() { a.Set(1) })
		assert.Equal(t, 1, runs, "inner batch must not flush")
	})
	assert.Equal(t, 2, runs)
}

func TestEffect_WriteInsideReactionIsObserved(t *testing.T) {
	s := NewScheduler()
	src := NewSignal(s, 1)
	doubled := NewSignal(s, 0)

	Effect(s, func() { doubled.Set(src.Get() * 2) }, src)

	var got []int
	Effect(s, func() { got = append(got, doubled.Get()) }, doubled)

	src.Set(5)
	assert.Equal(t, 10, doubled.Get())
	assert.Equal(t, []int{2, 10}, got)
}

func TestEffect_SelfRetriggerPanics(t *testing.T) {
	s := NewScheduler()
	n := NewSignal(s, 0)
	Effect(s, func() {}, n)

	stop := watch(s, func() { n.Set(n.Get() + 1) }, n)
	defer stop()

	assert.Panics(t, func() { n.Set(1) })
}

func TestComputed_RecomputesLazily(t *testing.T) {
	s := NewScheduler()
	w := NewSignal(s, 100)

	evals := 0
	small := NewComputed(func() bool {
		evals++
		return w.Get() < 80
	}, w)

	assert.False(t, small.Get())
	assert.False(t, small.Get())
	assert.Equal(t, 1, evals)

	w.Set(60)
	assert.True(t, small.Get())
	assert.Equal(t, 2, evals)

	small.Close()
	w.Set(100)
	assert.True(t, small.Get(), "closed cell keeps its last value")
}

func TestComputed_PropagatesToEffects(t *testing.T) {
	s := NewScheduler()
	w := NewSignal(s, 100)
	small := NewComputed(func() bool { return w.Get() < 80 }, w)

	var seen []bool
	Effect(s, func() { seen = append(seen, small.Get()) }, small)

	w.Set(50)
	w.Set(40)

	assert.Equal(t, []bool{false, true, true}, seen)
}

func TestScope_CloseRunsLIFOOnce(t *testing.T) {
	var order []int
	var sc Scope
	sc.Defer(func() { order = append(order, 1) })
	sc.Defer(func() { order = append(order, 2) })
	sc.Defer(func() { order = append(order, 3) })
	require.Equal(t, 3, sc.Len())

	require.NoError(t, sc.Close())
	require.NoError(t, sc.Close())

	assert.Equal(t, []int{3, 2, 1}, order)
	assert.Equal(t, 0, sc.Len())
}

func TestScope_CollectsErrorsAndPanics(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")

	ran := false
	var sc Scope
	sc.Defer(func() { ran = true })
	sc.DeferErr(func() error { return errA })
	sc.Defer(func() { panic("boom") })
	sc.DeferErr(func() error { return errB })

	err := sc.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Contains(t, err.Error(), "boom")
	assert.True(t, ran, "teardowns after a failure must still run")
}

func TestScope_ReusableAfterClose(t *testing.T) {
	var sc Scope
	calls := 0
	sc.Defer(func() { calls++ })
	require.NoError(t, sc.Close())

	sc.Defer(func() { calls++ })
	require.NoError(t, sc.Close())

	assert.Equal(t, 2, calls)
}
