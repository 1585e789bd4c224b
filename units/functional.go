package units

import (
	"fmt"
	"io"
	"strings"
)

// mapSlice, filterSlice, and reduceSlice are the classic trio as
// generic functions.
func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func filterSlice[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func reduceSlice[T, A any](in []T, acc A, f func(A, T) A) A {
	for _, v := range in {
		acc = f(acc, v)
	}
	return acc
}

// runFunctional walks through higher-order functions, the generic
// map/filter/reduce trio, closures as generators, and wrapping.
func runFunctional(w io.Writer) error {
	section(w, 1, "Higher-Order Functions")
	apply := func(nums []int, op func(int) int) []int {
		out := make([]int, len(nums))
		for i, n := range nums {
			out[i] = op(n)
		}
		return out
	}
	fmt.Fprintf(w, "doubled: %v\n", apply([]int{1, 2, 3}, func(n int) int { return n * 2 }))

	section(w, 2, "Map / Filter / Reduce")
	nums := []int{1, 2, 3, 4, 5}
	squares := mapSlice(nums, func(n int) int { return n * n })
	evens := filterSlice(nums, func(n int) bool { return n%2 == 0 })
	total := reduceSlice(nums, 0, func(acc, n int) int { return acc + n })
	fmt.Fprintf(w, "squares=%v evens=%v total=%d\n", squares, evens, total)

	words := mapSlice(nums, func(n int) string { return strings.Repeat("*", n) })
	fmt.Fprintf(w, "cross-type map: %v\n", words)

	section(w, 3, "Closures as Generators")
	// A closure over an index stands in for a lazy sequence: each call
	// produces the next value on demand.
	fib := func() func() int {
		a, b := 0, 1
		return func() int {
			a, b = b, a+b
			return a
		}
	}()
	fmt.Fprint(w, "fibonacci:")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(w, " %d", fib())
	}
	fmt.Fprintln(w)

	section(w, 4, "Factory Functions")
	multiplier := func(factor int) func(int) int {
		return func(n int) int { return n * factor }
	}
	double, triple := multiplier(2), multiplier(3)
	fmt.Fprintf(w, "5*2=%d 5*3=%d\n", double(5), triple(5))

	section(w, 5, "Wrapping Functions")
	// Wrapping adds behavior around a function without touching it,
	// the way middleware wraps handlers.
	logged := func(name string, f func(int) int) func(int) int {
		return func(n int) int {
			fmt.Fprintf(w, "calling %s(%d)\n", name, n)
			out := f(n)
			fmt.Fprintf(w, "%s returned %d\n", name, out)
			return out
		}
	}
	wrappedDouble := logged("double", double)
	fmt.Fprintf(w, "result: %d\n", wrappedDouble(21))

	return nil
}
