package units

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/skillsenselab/demokit/version"
)

// runEcosystem walks through the practices around the language:
// structured logging, stable identifiers, versioning, and the
// table-driven test habit.
func runEcosystem(w io.Writer) error {
	section(w, 1, "Structured Logging")
	// Fields instead of formatted strings: machines filter on keys,
	// humans still read the message.
	log := zerolog.New(w)
	log.Info().Str("unit", "ecosystem").Int("attempt", 1).Msg("structured log line")
	log.Warn().Str("reason", "demonstration").Msg("warnings carry context too")

	section(w, 2, "Unique Identifiers")
	id := uuid.New()
	fmt.Fprintf(w, "uuid v%d, variant %s, string form has %d chars\n",
		id.Version(), id.Variant(), len(id.String()))
	parsed, err := uuid.Parse(id.String())
	if err != nil {
		return fmt.Errorf("round-tripping uuid: %w", err)
	}
	fmt.Fprintf(w, "round-trip equal: %v\n", parsed == id)

	section(w, 3, "Build Versioning")
	info := version.Get()
	fmt.Fprintf(w, "binaries report their provenance: version=%s go=%s\n",
		info.Version, info.GoVersion)

	section(w, 4, "Table-Driven Tests")
	// The dominant Go test shape: a slice of cases, one loop, one
	// assertion body. Shown here against a local function.
	abs := func(n int) int {
		if n < 0 {
			return -n
		}
		return n
	}
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"positive", 5, 5},
		{"negative", -5, 5},
		{"zero", 0, 0},
	}
	for _, tc := range cases {
		got := abs(tc.in)
		fmt.Fprintf(w, "case %-8s abs(%d) = %d, want %d: %v\n",
			tc.name, tc.in, got, tc.want, got == tc.want)
	}

	return nil
}
