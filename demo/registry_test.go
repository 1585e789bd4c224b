package demo

import (
	"io"
	"testing"

	"github.com/skillsenselab/demokit/errors"
)

func noopUnit(name string) Unit {
	return Unit{Name: name, Run: func(w io.Writer) error { return nil }}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("expected non-nil registry")
	}
	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d units", r.Len())
	}
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(noopUnit("alpha")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 unit, got %d", r.Len())
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := NewRegistry()
	r.Register(noopUnit("alpha"))

	before := r.Len()
	err := r.Register(noopUnit("alpha"))
	if err == nil {
		t.Fatal("expected error for duplicate registration")
	}
	if !errors.HasCode(err, errors.ErrCodeDuplicateUnit) {
		t.Errorf("expected DUPLICATE_UNIT, got %s", errors.CodeOf(err))
	}
	if r.Len() != before {
		t.Errorf("expected registry unchanged after failed registration, got %d units", r.Len())
	}
}

func TestRegisterInvalid(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
	}{
		{"empty name", Unit{Name: "", Run: func(w io.Writer) error { return nil }}},
		{"nil entry", Unit{Name: "alpha", Run: nil}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tc.unit)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.HasCode(err, errors.ErrCodeInvalidUnit) {
				t.Errorf("expected INVALID_UNIT, got %s", errors.CodeOf(err))
			}
			if r.Len() != 0 {
				t.Errorf("expected registry unchanged, got %d units", r.Len())
			}
		})
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(noopUnit("alpha"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate MustRegister")
		}
	}()
	r.MustRegister(noopUnit("alpha"))
}

func TestGet(t *testing.T) {
	r := NewRegistry()
	r.Register(noopUnit("alpha"))

	u, ok := r.Get("alpha")
	if !ok {
		t.Fatal("expected to find registered unit")
	}
	if u.Name != "alpha" {
		t.Errorf("expected 'alpha', got %q", u.Name)
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("expected missing unit to not be found")
	}
}

func TestNamesPreserveOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"charlie", "alpha", "bravo"} {
		r.Register(noopUnit(name))
	}

	names := r.Names()
	want := []string{"charlie", "alpha", "bravo"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}
