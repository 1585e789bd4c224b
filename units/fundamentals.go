package units

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// runFundamentals walks through declarations, zero values, strings and
// formatting, conversions, operators, and constants.
func runFundamentals(w io.Writer) error {
	section(w, 1, "Declarations")
	// Go is statically typed; the compiler infers types for := and
	// for var without an explicit type.
	var score int = 10
	var label = "points"
	ratio := 0.75
	fmt.Fprintf(w, "score=%d (%T), label=%q (%T), ratio=%v (%T)\n",
		score, score, label, label, ratio, ratio)

	section(w, 2, "Zero Values")
	// Declared-but-unassigned variables get their type's zero value,
	// never garbage.
	var (
		n int
		f float64
		b bool
		s string
		p *int
	)
	fmt.Fprintf(w, "int=%d float64=%v bool=%v string=%q pointer=%v\n", n, f, b, s, p)

	section(w, 3, "Strings & Formatting")
	first, lang := "Gopher", "Go"
	fmt.Fprintf(w, "concatenated: %s\n", first+" writes "+lang)
	fmt.Fprintf(w, "verbs: %%v=%v %%q=%q %%x=%x len=%d\n", lang, lang, lang, len(lang))

	// strings.Builder is the efficient way to build text in a loop.
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		sb.WriteString("go")
	}
	fmt.Fprintf(w, "built: %s\n", sb.String())
	fmt.Fprintf(w, "upper=%s fields=%v\n", strings.ToUpper(lang), strings.Fields("a b  c"))

	section(w, 4, "Conversions")
	// Conversions are always explicit; there is no implicit widening.
	i := 65
	fmt.Fprintf(w, "int->float64: %v  int->string(rune): %q\n", float64(i), string(rune(i)))

	count, err := strconv.Atoi("42")
	if err != nil {
		return fmt.Errorf("parsing number: %w", err)
	}
	fmt.Fprintf(w, "strconv.Atoi(\"42\") = %d, Itoa(7) = %q\n", count, strconv.Itoa(7))

	section(w, 5, "Operators")
	a, c := 17, 5
	fmt.Fprintf(w, "17/5=%d (integer division), 17%%5=%d\n", a/c, a%c)
	fmt.Fprintf(w, "comparison: %v, logic: %v\n", a > c, a > c && c > 0)
	fmt.Fprintf(w, "bitwise: 6&3=%d 6|3=%d 6^3=%d 1<<4=%d\n", 6&3, 6|3, 6^3, 1<<4)

	section(w, 6, "Constants & iota")
	const Pi = 3.14159
	type Weekday int
	const (
		Sunday Weekday = iota
		Monday
		Tuesday
	)
	fmt.Fprintf(w, "Pi=%v, Sunday=%d Monday=%d Tuesday=%d\n", Pi, Sunday, Monday, Tuesday)

	return nil
}
