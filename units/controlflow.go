package units

import (
	"fmt"
	"io"
)

// runControlFlow walks through if/else, switch forms, the four for
// loop shapes, and labeled break/continue.
func runControlFlow(w io.Writer) error {
	section(w, 1, "If / Else")
	// The init statement scopes a variable to the conditional.
	if temp := 28; temp > 30 {
		fmt.Fprintln(w, "hot")
	} else if temp > 20 {
		fmt.Fprintf(w, "mild (%d°)\n", temp)
	} else {
		fmt.Fprintln(w, "cold")
	}

	section(w, 2, "Switch")
	// Cases do not fall through by default.
	day := "saturday"
	switch day {
	case "saturday", "sunday":
		fmt.Fprintln(w, "weekend")
	default:
		fmt.Fprintln(w, "weekday")
	}

	// A conditionless switch is a cleaner if/else-if chain.
	hour := 15
	switch {
	case hour < 12:
		fmt.Fprintln(w, "morning")
	case hour < 18:
		fmt.Fprintln(w, "afternoon")
	default:
		fmt.Fprintln(w, "evening")
	}

	// Type switches branch on dynamic type.
	for _, v := range []any{42, "text", 2.5, true} {
		switch t := v.(type) {
		case int:
			fmt.Fprintf(w, "int %d\n", t)
		case string:
			fmt.Fprintf(w, "string %q\n", t)
		default:
			fmt.Fprintf(w, "other %T\n", t)
		}
	}

	section(w, 3, "For Loops")
	// for is Go's only loop keyword; it covers every shape.
	sum := 0
	for i := 1; i <= 5; i++ {
		sum += i
	}
	fmt.Fprintf(w, "classic: sum 1..5 = %d\n", sum)

	countdown := 3
	for countdown > 0 { // condition-only, the while loop
		countdown--
	}
	fmt.Fprintf(w, "condition-only: countdown reached %d\n", countdown)

	for i, r := range "go!" {
		fmt.Fprintf(w, "range over string: byte %d is %q\n", i, r)
	}

	attempts := 0
	for { // infinite until break
		attempts++
		if attempts == 2 {
			break
		}
	}
	fmt.Fprintf(w, "infinite + break: stopped after %d attempts\n", attempts)

	section(w, 4, "Continue & Labels")
	fmt.Fprint(w, "odd numbers:")
	for i := 0; i < 8; i++ {
		if i%2 == 0 {
			continue
		}
		fmt.Fprintf(w, " %d", i)
	}
	fmt.Fprintln(w)

	// A label lets break escape the outer loop directly.
search:
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if row*col == 4 {
				fmt.Fprintf(w, "found row=%d col=%d\n", row, col)
				break search
			}
		}
	}

	return nil
}
