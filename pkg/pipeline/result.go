package pipeline

import (
	"fmt"
	"time"
)

// ModuleStats records one module's contribution to a run.
type ModuleStats struct {
	Module   string
	Plugin   string
	Stage    Stage
	Disabled bool
	Failed   bool
	Keys     int
	Duration time.Duration
}

// Result contains the outcome of a pipeline run. Individual module
// failures are recorded here, never escalated.
type Result struct {
	Stats      []ModuleStats
	Writes     int
	ExecutedAt time.Time
	Duration   time.Duration
}

// Failed returns the names of modules that failed during the run.
func (r *Result) Failed() []string {
	var failed []string
	for _, stats := range r.Stats {
		if stats.Failed {
			failed = append(failed, stats.Module)
		}
	}
	return failed
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	ran := 0
	for _, stats := range r.Stats {
		if !stats.Disabled {
			ran++
		}
	}
	return fmt.Sprintf("%d/%d modules ran, %d failed, %d output writes (took %v)",
		ran, len(r.Stats), len(r.Failed()), r.Writes, r.Duration)
}
