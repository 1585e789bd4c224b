package units

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// errInsufficientFunds is a sentinel error callers can match with
// errors.Is.
var errInsufficientFunds = errors.New("insufficient funds")

// validationError is a custom error type carrying structured context,
// matched with errors.As.
type validationError struct {
	Field  string
	Reason string
}

func (e *validationError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

func withdraw(balance, amount int) (int, error) {
	if amount > balance {
		// %w wraps so the sentinel survives the added context.
		return balance, fmt.Errorf("withdrawing %d from %d: %w", amount, balance, errInsufficientFunds)
	}
	return balance - amount, nil
}

// runErrorsFiles walks through error values, wrapping, custom types,
// panic/recover, and file I/O with deferred cleanup.
func runErrorsFiles(w io.Writer) error {
	section(w, 1, "Errors Are Values")
	if _, err := withdraw(50, 80); err != nil {
		fmt.Fprintf(w, "got: %v\n", err)
		fmt.Fprintf(w, "errors.Is(err, errInsufficientFunds) = %v\n", errors.Is(err, errInsufficientFunds))
	}

	section(w, 2, "Custom Error Types")
	var err error = &validationError{Field: "email", Reason: "missing @"}
	wrapped := fmt.Errorf("saving user: %w", err)

	var vErr *validationError
	if errors.As(wrapped, &vErr) {
		fmt.Fprintf(w, "recovered field=%q reason=%q through the wrap\n", vErr.Field, vErr.Reason)
	}

	section(w, 3, "Panic & Recover")
	// recover is scoped to the deferred call; the panic stays inside
	// this function.
	result := func() (msg string) {
		defer func() {
			if r := recover(); r != nil {
				msg = fmt.Sprintf("recovered from: %v", r)
			}
		}()
		var m map[string]int
		m["boom"] = 1 // write to nil map panics
		return "unreachable"
	}()
	fmt.Fprintf(w, "%s\n", result)

	section(w, 4, "File I/O")
	dir, err := os.MkdirTemp("", "demokit")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("first line\nsecond line\n"), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		fmt.Fprintf(w, "line %d: %s\n", lineNo, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning %s: %w", path, err)
	}

	// Reading a missing file demonstrates the os error helpers.
	if _, err := os.ReadFile(filepath.Join(dir, "missing.txt")); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(w, "missing file detected with errors.Is(err, os.ErrNotExist)")
	}

	return nil
}
