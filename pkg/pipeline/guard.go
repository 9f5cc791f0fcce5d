package pipeline

import "runtime/debug"

// pauseGC suspends background garbage collection and returns a restore
// function. The controller brackets every plugin invocation with this so
// plugins built on non-reentrant network libraries are not interrupted by
// concurrent finalization; callers must defer the restore so it runs on
// every exit path, including plugin failure.
func pauseGC() (restore func()) {
	prev := debug.SetGCPercent(-1)
	return func() {
		debug.SetGCPercent(prev)
	}
}
