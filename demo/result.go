package demo

import "time"

// Status represents the outcome of a single unit execution.
type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// RunResult holds the recorded outcome of executing one unit.
// It is created by the runner and never mutated afterwards.
type RunResult struct {
	Unit     string        `json:"unit"`
	Status   Status        `json:"status"`
	Fault    error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// Failed reports whether the unit execution failed.
func (r RunResult) Failed() bool { return r.Status == StatusFailed }

// Summary aggregates run results by status.
type Summary struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// AllSucceeded reports whether no unit failed.
func (s Summary) AllSucceeded() bool { return s.Failed == 0 }

// Summarize counts succeeded and failed results. It is a pure
// aggregation with no side effects.
func Summarize(results []RunResult) Summary {
	var s Summary
	for _, r := range results {
		if r.Failed() {
			s.Failed++
		} else {
			s.Succeeded++
		}
	}
	return s
}
