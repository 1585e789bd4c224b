// Package demo implements the demonstration unit registry and runner.
//
// Units are registered under unique names and executed sequentially in
// registration order. Each unit runs inside a fault boundary: a panic
// or returned error is recorded on that unit's result and never stops
// the remaining units. Output is written through an injected io.Writer
// so callers (and tests) control where demonstration text goes.
//
//	reg := demo.NewRegistry()
//	reg.Register(demo.Unit{Name: "alpha", Run: runAlpha})
//	results := reg.RunAll(ctx, os.Stdout)
//	summary := demo.Summarize(results)
package demo
