package units

import (
	"fmt"
	"io"
	"strings"
)

// runFunctions walks through return shapes, variadics, closures,
// recursion, defer ordering, and functions as values.
func runFunctions(w io.Writer) error {
	section(w, 1, "Multiple Returns")
	divide := func(a, b int) (int, int, error) {
		if b == 0 {
			return 0, 0, fmt.Errorf("division by zero")
		}
		return a / b, a % b, nil
	}
	q, r, err := divide(17, 5)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "17 / 5 = %d remainder %d\n", q, r)

	section(w, 2, "Named Results")
	split := func(total int) (left, right int) {
		left = total * 4 / 9
		right = total - left
		return // named results make the bare return explicit in the signature
	}
	l, rt := split(17)
	fmt.Fprintf(w, "split(17) = %d + %d\n", l, rt)

	section(w, 3, "Variadics")
	sum := func(nums ...int) int {
		total := 0
		for _, n := range nums {
			total += n
		}
		return total
	}
	fmt.Fprintf(w, "sum(1,2,3) = %d\n", sum(1, 2, 3))
	batch := []int{4, 5, 6}
	fmt.Fprintf(w, "sum(batch...) = %d\n", sum(batch...))

	section(w, 4, "Closures")
	// The counter owns its captured variable; each closure gets its
	// own copy of the enclosing state.
	counter := func() func() int {
		count := 0
		return func() int {
			count++
			return count
		}
	}
	next := counter()
	other := counter()
	fmt.Fprintf(w, "next: %d %d %d, other starts fresh: %d\n", next(), next(), next(), other())

	section(w, 5, "Recursion")
	var factorial func(n int) int
	factorial = func(n int) int {
		if n <= 1 {
			return 1
		}
		return n * factorial(n-1)
	}
	fmt.Fprintf(w, "5! = %d\n", factorial(5))

	section(w, 6, "Defer")
	// Deferred calls run last-in first-out when the function returns,
	// and arguments are evaluated at defer time.
	order := func() string {
		var sb strings.Builder
		defer sb.WriteString(" <- runs last")
		sb.WriteString("body")
		return sb.String() // the defer runs after this evaluates
	}
	fmt.Fprintf(w, "returned %q before the deferred write\n", order())

	fmt.Fprint(w, "LIFO: ")
	func() {
		for i := 1; i <= 3; i++ {
			defer fmt.Fprintf(w, "%d ", i)
		}
	}()
	fmt.Fprintln(w)

	section(w, 7, "Functions as Values")
	type binaryOp func(int, int) int
	ops := map[string]binaryOp{
		"add": func(a, b int) int { return a + b },
		"mul": func(a, b int) int { return a * b },
	}
	for _, name := range []string{"add", "mul"} {
		fmt.Fprintf(w, "%s(3, 4) = %d\n", name, ops[name](3, 4))
	}

	return nil
}
