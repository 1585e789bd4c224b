package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/skillsenselab/demokit/errors"
	"github.com/skillsenselab/demokit/logger"
)

// RunAll executes every registered unit in registration order, writing
// demonstration output to w. It always returns one result per
// registered unit: a unit's fault is recorded on its result and never
// propagates to the caller or skips the units after it.
//
// The context is checked between units only. A unit that is already
// running completes normally; units not yet started when the context
// ends are recorded as failed without executing.
func (r *Registry) RunAll(ctx context.Context, w io.Writer) []RunResult {
	r.mu.RLock()
	units := r.units
	r.mu.RUnlock()

	return runSequence(ctx, w, units)
}

// RunOnly executes the named subset of registered units, preserving
// registration order regardless of the order names are given in. An
// unknown name fails the whole call before any unit runs.
func (r *Registry) RunOnly(ctx context.Context, w io.Writer, names ...string) ([]RunResult, error) {
	r.mu.RLock()
	selected := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := r.lookup[name]; !ok {
			r.mu.RUnlock()
			return nil, errors.UnitNotFound(name)
		}
		selected[name] = true
	}

	units := make([]Unit, 0, len(selected))
	for _, u := range r.units {
		if selected[u.Name] {
			units = append(units, u)
		}
	}
	r.mu.RUnlock()

	return runSequence(ctx, w, units), nil
}

func runSequence(ctx context.Context, w io.Writer, units []Unit) []RunResult {
	log := logger.Get("runner")
	results := make([]RunResult, 0, len(units))

	for _, u := range units {
		if err := ctx.Err(); err != nil {
			results = append(results, RunResult{
				Unit:   u.Name,
				Status: StatusFailed,
				Fault:  errors.RunCanceled(u.Name, err),
			})
			continue
		}

		fmt.Fprintf(w, "=== %s ===\n", u.Name)
		res := runUnit(log, u, w)
		if res.Failed() {
			fmt.Fprintf(w, "--- %s: %s (%v)\n\n", res.Unit, res.Status, res.Fault)
		} else {
			fmt.Fprintf(w, "--- %s: %s\n\n", res.Unit, res.Status)
		}
		results = append(results, res)
	}
	return results
}

// runUnit is the per-unit fault boundary: exactly one unit invocation
// lives inside the deferred recover.
func runUnit(log *logger.Logger, u Unit, w io.Writer) (res RunResult) {
	start := time.Now()
	res = RunResult{Unit: u.Name, Status: StatusSucceeded}

	defer func() {
		res.Duration = time.Since(start)
		if rec := recover(); rec != nil {
			res.Status = StatusFailed
			res.Fault = errors.UnitPanic(u.Name, rec)
		}
		if res.Failed() {
			log.Error("unit failed", logger.Fields(
				logger.FieldUnit, u.Name,
				logger.FieldError, res.Fault.Error(),
				logger.FieldDuration, res.Duration.Milliseconds(),
			))
		} else {
			log.Debug("unit finished", logger.Fields(
				logger.FieldUnit, u.Name,
				logger.FieldDuration, res.Duration.Milliseconds(),
			))
		}
	}()

	log.Debug("unit starting", logger.Fields(logger.FieldUnit, u.Name))
	if err := u.Run(w); err != nil {
		res.Status = StatusFailed
		res.Fault = err
	}
	return res
}
