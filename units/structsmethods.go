package units

import (
	"fmt"
	"io"
	"math"
)

// account shows encapsulation: the balance is unexported and only
// reachable through methods that keep it valid.
type account struct {
	owner   string
	balance int
}

func newAccount(owner string) *account {
	return &account{owner: owner}
}

func (a *account) Deposit(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("deposit must be positive, got %d", amount)
	}
	a.balance += amount
	return nil
}

func (a *account) Balance() int { return a.balance }

// shape is satisfied implicitly: any type with these methods is a
// shape, no declaration required.
type shape interface {
	Area() float64
	Perimeter() float64
}

type rectangle struct{ width, height float64 }

func (r rectangle) Area() float64      { return r.width * r.height }
func (r rectangle) Perimeter() float64 { return 2 * (r.width + r.height) }

type circle struct{ radius float64 }

func (c circle) Area() float64      { return math.Pi * c.radius * c.radius }
func (c circle) Perimeter() float64 { return 2 * math.Pi * c.radius }

// animal is embedded to reuse behavior; Go composes rather than
// inherits.
type animal struct{ name string }

func (a animal) Eat() string { return a.name + " eats" }

type dog struct {
	animal
	breed string
}

func (d dog) Speak() string { return d.name + " barks" }

// temperature implements fmt.Stringer so %v prints it readably.
type temperature float64

func (t temperature) String() string { return fmt.Sprintf("%.1f°C", float64(t)) }

// runStructsMethods walks through structs, receivers, embedding,
// interfaces, and Stringer.
func runStructsMethods(w io.Writer) error {
	section(w, 1, "Structs & Methods")
	rect := rectangle{width: 3, height: 4}
	fmt.Fprintf(w, "rectangle %+v area=%.1f\n", rect, rect.Area())

	section(w, 2, "Value vs Pointer Receivers")
	// Pointer receivers mutate the named value; value receivers work
	// on a copy.
	acct := newAccount("ada")
	if err := acct.Deposit(100); err != nil {
		return err
	}
	if err := acct.Deposit(50); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s's balance after two deposits: %d\n", acct.owner, acct.Balance())
	if err := acct.Deposit(-5); err != nil {
		fmt.Fprintf(w, "rejected: %v\n", err)
	}

	section(w, 3, "Embedding")
	d := dog{animal: animal{name: "rex"}, breed: "collie"}
	// The embedded animal's method is promoted onto dog.
	fmt.Fprintf(w, "%s / %s (breed %s)\n", d.Eat(), d.Speak(), d.breed)

	section(w, 4, "Interfaces & Polymorphism")
	shapes := []shape{rectangle{3, 4}, circle{2}}
	for _, s := range shapes {
		fmt.Fprintf(w, "%T: area=%.2f perimeter=%.2f\n", s, s.Area(), s.Perimeter())
	}

	section(w, 5, "Stringer")
	t := temperature(21.5)
	fmt.Fprintf(w, "formatted via String(): %v\n", t)

	return nil
}
