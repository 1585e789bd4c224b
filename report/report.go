package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/skillsenselab/demokit/demo"
)

// Exit codes for the run as a whole.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Report holds the outcome of one complete run.
type Report struct {
	ID        uuid.UUID        `json:"id"`
	StartedAt time.Time        `json:"started_at"`
	Elapsed   time.Duration    `json:"elapsed"`
	Results   []demo.RunResult `json:"results"`
	Summary   demo.Summary     `json:"summary"`
}

// New builds a report from run results.
func New(results []demo.RunResult, startedAt time.Time) *Report {
	var elapsed time.Duration
	for _, r := range results {
		elapsed += r.Duration
	}
	return &Report{
		ID:        uuid.New(),
		StartedAt: startedAt,
		Elapsed:   elapsed,
		Results:   results,
		Summary:   demo.Summarize(results),
	}
}

// ExitCode returns the process exit code for this run: ExitSuccess
// when no unit failed, ExitFailure otherwise.
func (r *Report) ExitCode() int {
	if r.Summary.AllSucceeded() {
		return ExitSuccess
	}
	return ExitFailure
}

// Render writes the per-unit status table and summary line to w.
func (r *Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "run %s\n", r.ID); err != nil {
		return err
	}
	for _, res := range r.Results {
		if res.Failed() {
			if _, err := fmt.Fprintf(w, "  %-20s %s  %v\n", res.Unit, res.Status, res.Fault); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "  %-20s %s\n", res.Unit, res.Status); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d succeeded, %d failed (%v)\n",
		r.Summary.Succeeded, r.Summary.Failed, r.Elapsed.Round(time.Millisecond))
	return err
}
