package units

import (
	"fmt"
	"io"
	"maps"
	"slices"
)

// runCollections walks through arrays, slices and their backing
// arrays, maps, and the copy semantics that separate them.
func runCollections(w io.Writer) error {
	section(w, 1, "Arrays")
	// Arrays have a fixed length that is part of their type, and they
	// copy by value.
	var grid [3]int
	grid[1] = 7
	copied := grid
	copied[1] = 99
	fmt.Fprintf(w, "original=%v copy=%v (arrays copy by value)\n", grid, copied)

	section(w, 2, "Slices")
	nums := []int{1, 2, 3}
	fmt.Fprintf(w, "start: %v len=%d cap=%d\n", nums, len(nums), cap(nums))

	nums = append(nums, 4, 5)
	fmt.Fprintf(w, "after append: %v len=%d cap=%d\n", nums, len(nums), cap(nums))

	// A subslice shares the backing array; writes show through.
	window := nums[1:3]
	window[0] = 20
	fmt.Fprintf(w, "window=%v mutated parent=%v\n", window, nums)

	// copy gives an independent slice.
	independent := make([]int, len(nums))
	copy(independent, nums)
	independent[0] = -1
	fmt.Fprintf(w, "independent=%v parent untouched=%v\n", independent, nums)

	sorted := slices.Clone(nums)
	slices.Sort(sorted)
	fmt.Fprintf(w, "sorted clone=%v contains 20: %v\n", sorted, slices.Contains(sorted, 20))

	section(w, 3, "Maps")
	ages := map[string]int{"ada": 36, "alan": 41}
	ages["grace"] = 85
	delete(ages, "alan")

	// The comma-ok idiom distinguishes "absent" from "zero".
	if age, ok := ages["ada"]; ok {
		fmt.Fprintf(w, "ada is %d\n", age)
	}
	if _, ok := ages["alan"]; !ok {
		fmt.Fprintln(w, "alan was deleted")
	}

	// Map iteration order is randomized; sort keys for stable output.
	for _, name := range slices.Sorted(maps.Keys(ages)) {
		fmt.Fprintf(w, "%s=%d\n", name, ages[name])
	}

	section(w, 4, "Value vs Reference Semantics")
	type point struct{ X, Y int }

	moveCopy := func(p point) { p.X = 100 }
	movePtr := func(p *point) { p.X = 100 }

	p := point{1, 2}
	moveCopy(p)
	fmt.Fprintf(w, "after value call: %+v\n", p)
	movePtr(&p)
	fmt.Fprintf(w, "after pointer call: %+v\n", p)

	// Slices and maps are headers over shared data, so callees see
	// element writes even when passed by value.
	scores := []int{1, 2, 3}
	func(s []int) { s[0] = 42 }(scores)
	fmt.Fprintf(w, "slice after callee write: %v\n", scores)

	return nil
}
