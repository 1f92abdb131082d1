package reactive

// Effect runs fn immediately and again after any of sources changes.
// Within one flush fn runs at most once no matter how many sources changed.
// The returned stop function unsubscribes from every source; it is
// idempotent and safe to call from inside fn.
func Effect(sched *Scheduler, fn func(), sources ...Source) (stop func()) {
	stop = watch(sched, fn, sources...)
	fn()
	return stop
}

func watch(sched *Scheduler, fn func(), sources ...Source) func() {
	r := &reaction{sched: sched, fn: fn}
	cancels := make([]func(), 0, len(sources))
	for _, src := range sources {
		cancels = append(cancels, src.observe(r))
	}
	return func() {
		if r.stopped {
			return
		}
		r.stopped = true
		for _, cancel := range cancels {
			cancel()
		}
	}
}
