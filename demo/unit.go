package demo

import "io"

// Unit is one named, self-contained demonstration.
//
// Run receives the output sink for demonstration text and returns an
// error if the demonstration cannot complete. A panic inside Run is
// equivalent to a returned error: both are captured at the run
// boundary and recorded as a failure.
type Unit struct {
	// Name uniquely identifies the unit within a registry.
	Name string
	// Run is the unit's entry procedure.
	Run func(w io.Writer) error
}
