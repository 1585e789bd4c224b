package units

import (
	"fmt"
	"io"

	"github.com/skillsenselab/demokit/demo"
)

// All returns every built-in demonstration unit in curriculum order.
func All() []demo.Unit {
	return []demo.Unit{
		{Name: "fundamentals", Run: runFundamentals},
		{Name: "controlflow", Run: runControlFlow},
		{Name: "collections", Run: runCollections},
		{Name: "functions", Run: runFunctions},
		{Name: "structsmethods", Run: runStructsMethods},
		{Name: "errorsfiles", Run: runErrorsFiles},
		{Name: "functional", Run: runFunctional},
		{Name: "concurrency", Run: runConcurrency},
		{Name: "ecosystem", Run: runEcosystem},
	}
}

// Register adds every built-in unit to reg, stopping at the first
// registration error.
func Register(reg *demo.Registry) error {
	for _, u := range All() {
		if err := reg.Register(u); err != nil {
			return err
		}
	}
	return nil
}

// section writes a numbered section header, matching the block style
// units use throughout their output.
func section(w io.Writer, n int, title string) {
	fmt.Fprintf(w, "\n--- %d. %s ---\n", n, title)
}
