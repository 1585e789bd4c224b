package demo

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/skillsenselab/demokit/errors"
)

func TestRunAllOrderAndCount(t *testing.T) {
	r := NewRegistry()
	var order []string
	for _, name := range []string{"one", "two", "three"} {
		name := name
		r.Register(Unit{Name: name, Run: func(w io.Writer) error {
			order = append(order, name)
			return nil
		}})
	}

	results := r.RunAll(context.Background(), io.Discard)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, name := range []string{"one", "two", "three"} {
		if results[i].Unit != name {
			t.Errorf("result %d: expected %q, got %q", i, name, results[i].Unit)
		}
		if order[i] != name {
			t.Errorf("execution %d: expected %q, got %q", i, name, order[i])
		}
	}
}

func TestRunAllEmpty(t *testing.T) {
	r := NewRegistry()
	results := r.RunAll(context.Background(), io.Discard)
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}

	s := Summarize(results)
	if s.Succeeded != 0 || s.Failed != 0 {
		t.Errorf("expected empty summary, got %+v", s)
	}
	if !s.AllSucceeded() {
		t.Error("expected empty run to count as all succeeded")
	}
}

func TestRunAllSuccess(t *testing.T) {
	r := NewRegistry()
	r.Register(noopUnit("alpha"))

	results := r.RunAll(context.Background(), io.Discard)
	if results[0].Status != StatusSucceeded {
		t.Errorf("expected succeeded, got %s", results[0].Status)
	}
	if results[0].Fault != nil {
		t.Errorf("expected nil fault, got %v", results[0].Fault)
	}
}

func TestRunAllErrorIsContained(t *testing.T) {
	r := NewRegistry()
	unitErr := stderrors.New("deliberate failure")
	r.Register(noopUnit("before"))
	r.Register(Unit{Name: "failing", Run: func(w io.Writer) error { return unitErr }})
	r.Register(noopUnit("after"))

	results := r.RunAll(context.Background(), io.Discard)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[1].Status != StatusFailed {
		t.Errorf("expected failing unit to be failed, got %s", results[1].Status)
	}
	if !stderrors.Is(results[1].Fault, unitErr) {
		t.Errorf("expected fault to be the unit error, got %v", results[1].Fault)
	}
	if results[2].Status != StatusSucceeded {
		t.Error("expected unit after the failure to still run and succeed")
	}
}

func TestRunAllPanicIsContained(t *testing.T) {
	r := NewRegistry()
	r.Register(Unit{Name: "panicking", Run: func(w io.Writer) error {
		panic("intentional panic")
	}})
	r.Register(noopUnit("survivor"))

	results := r.RunAll(context.Background(), io.Discard)

	if results[0].Status != StatusFailed {
		t.Fatalf("expected panicking unit to be failed, got %s", results[0].Status)
	}
	if !errors.HasCode(results[0].Fault, errors.ErrCodeUnitPanic) {
		t.Errorf("expected UNIT_PANIC fault, got %v", results[0].Fault)
	}
	if !strings.Contains(results[0].Fault.Error(), "intentional panic") {
		t.Errorf("expected panic value in fault, got %v", results[0].Fault)
	}
	if results[1].Status != StatusSucceeded {
		t.Error("expected unit after the panic to still run")
	}
}

func TestRunAllWritesToInjectedSink(t *testing.T) {
	r := NewRegistry()
	r.Register(Unit{Name: "writer", Run: func(w io.Writer) error {
		fmt.Fprintln(w, "demonstration text")
		return nil
	}})

	var buf bytes.Buffer
	r.RunAll(context.Background(), &buf)

	if !strings.Contains(buf.String(), "demonstration text") {
		t.Errorf("expected unit output in sink, got %q", buf.String())
	}
}

func TestRunAllCanceledContext(t *testing.T) {
	r := NewRegistry()
	r.Register(noopUnit("alpha"))
	r.Register(noopUnit("bravo"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := r.RunAll(ctx, io.Discard)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, res := range results {
		if res.Status != StatusFailed {
			t.Errorf("unit %s: expected failed, got %s", res.Unit, res.Status)
		}
		if !errors.HasCode(res.Fault, errors.ErrCodeRunCanceled) {
			t.Errorf("unit %s: expected RUN_CANCELED, got %v", res.Unit, res.Fault)
		}
	}
}

func TestRunOnly(t *testing.T) {
	r := NewRegistry()
	var order []string
	for _, name := range []string{"one", "two", "three"} {
		name := name
		r.Register(Unit{Name: name, Run: func(w io.Writer) error {
			order = append(order, name)
			return nil
		}})
	}

	// Selection order does not override registration order.
	results, err := r.RunOnly(context.Background(), io.Discard, "three", "one")
	if err != nil {
		t.Fatalf("RunOnly failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Unit != "one" || results[1].Unit != "three" {
		t.Errorf("expected registration order [one three], got %v", []string{results[0].Unit, results[1].Unit})
	}
	if len(order) != 2 {
		t.Errorf("expected 2 executions, got %d", len(order))
	}
}

func TestRunOnlyUnknownName(t *testing.T) {
	r := NewRegistry()
	executed := false
	r.Register(Unit{Name: "alpha", Run: func(w io.Writer) error {
		executed = true
		return nil
	}})

	_, err := r.RunOnly(context.Background(), io.Discard, "alpha", "ghost")
	if err == nil {
		t.Fatal("expected error for unknown unit")
	}
	if !errors.HasCode(err, errors.ErrCodeUnitNotFound) {
		t.Errorf("expected UNIT_NOT_FOUND, got %s", errors.CodeOf(err))
	}
	if executed {
		t.Error("expected no unit to run when selection is invalid")
	}
}

func TestSummarize(t *testing.T) {
	results := []RunResult{
		{Unit: "a", Status: StatusSucceeded},
		{Unit: "b", Status: StatusFailed, Fault: stderrors.New("x")},
		{Unit: "c", Status: StatusSucceeded},
	}

	s := Summarize(results)
	if s.Succeeded != 2 || s.Failed != 1 {
		t.Errorf("expected {2 1}, got %+v", s)
	}
	if s.Succeeded+s.Failed != len(results) {
		t.Error("expected counts to add up to result length")
	}
	if s.AllSucceeded() {
		t.Error("expected AllSucceeded to be false with a failure")
	}
}

func TestEndToEndMixedRun(t *testing.T) {
	r := NewRegistry()
	r.Register(noopUnit("A"))
	r.Register(Unit{Name: "B", Run: func(w io.Writer) error { panic("B always panics") }})
	r.Register(noopUnit("C"))

	results := r.RunAll(context.Background(), io.Discard)

	want := []struct {
		unit   string
		status Status
	}{
		{"A", StatusSucceeded},
		{"B", StatusFailed},
		{"C", StatusSucceeded},
	}
	for i, w := range want {
		if results[i].Unit != w.unit || results[i].Status != w.status {
			t.Errorf("result %d: expected (%s, %s), got (%s, %s)",
				i, w.unit, w.status, results[i].Unit, results[i].Status)
		}
	}

	s := Summarize(results)
	if s.Succeeded != 2 || s.Failed != 1 {
		t.Errorf("expected summary {2 1}, got %+v", s)
	}
}
