package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/skillsenselab/demokit/demo"
)

func TestNewReport(t *testing.T) {
	results := []demo.RunResult{
		{Unit: "a", Status: demo.StatusSucceeded, Duration: 10 * time.Millisecond},
		{Unit: "b", Status: demo.StatusFailed, Fault: errors.New("boom"), Duration: 5 * time.Millisecond},
	}

	r := New(results, time.Now())

	if r.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected a non-zero run ID")
	}
	if r.Summary.Succeeded != 1 || r.Summary.Failed != 1 {
		t.Errorf("expected summary {1 1}, got %+v", r.Summary)
	}
	if r.Elapsed != 15*time.Millisecond {
		t.Errorf("expected 15ms elapsed, got %v", r.Elapsed)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name    string
		results []demo.RunResult
		want    int
	}{
		{"all succeeded", []demo.RunResult{{Unit: "a", Status: demo.StatusSucceeded}}, ExitSuccess},
		{"one failed", []demo.RunResult{
			{Unit: "a", Status: demo.StatusSucceeded},
			{Unit: "b", Status: demo.StatusFailed, Fault: errors.New("x")},
		}, ExitFailure},
		{"empty run", nil, ExitSuccess},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.results, time.Now())
			if got := r.ExitCode(); got != tc.want {
				t.Errorf("expected exit code %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRender(t *testing.T) {
	results := []demo.RunResult{
		{Unit: "alpha", Status: demo.StatusSucceeded},
		{Unit: "bravo", Status: demo.StatusFailed, Fault: errors.New("deliberate")},
	}

	var buf bytes.Buffer
	if err := New(results, time.Now()).Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"alpha", "bravo", "succeeded", "failed", "deliberate", "1 succeeded, 1 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in report, got:\n%s", want, out)
		}
	}
}
