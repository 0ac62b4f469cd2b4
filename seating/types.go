package seating

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Fixed aircraft topology.
const (
	// SeatsPerSection is the number of seats in every section.
	SeatsPerSection = 10

	sectionNames = "ABC"

	// SectionCount is the number of sections.
	SectionCount = len(sectionNames)

	// Capacity is the total number of seats.
	Capacity = SectionCount * SeatsPerSection
)

// Sentinel errors.
var (
	// ErrNoSeatAvailable is returned by AssignSeat when every section is full.
	ErrNoSeatAvailable = errors.New("seating: no seat available")

	// ErrBadSeatLabel is returned by ParseSeat for malformed or out-of-range labels.
	ErrBadSeatLabel = errors.New("seating: bad seat label")
)

// Sections returns the section names in layout order.
func Sections() []string {
	out := make([]string, SectionCount)
	for i := range out {
		out[i] = sectionNames[i : i+1]
	}

	return out
}

// Seat identifies one seat by section index and 1-based number.
type Seat struct {
	section int
	number  int
}

// Section returns the section name ("A", "B" or "C").
func (s Seat) Section() string { return sectionNames[s.section : s.section+1] }

// Number returns the 1-based seat number within its section.
func (s Seat) Number() int { return s.number }

// Label renders the seat as section letter followed by number, e.g. "B7".
func (s Seat) Label() string { return s.Section() + strconv.Itoa(s.number) }

// String implements fmt.Stringer.
func (s Seat) String() string { return s.Label() }

// ParseSeat parses a label such as "A7" or " c10 ".
func ParseSeat(label string) (Seat, error) {
	l := strings.ToUpper(strings.TrimSpace(label))
	if len(l) < 2 {
		return Seat{}, fmt.Errorf("%w: %q", ErrBadSeatLabel, label)
	}
	sec := strings.IndexByte(sectionNames, l[0])
	if sec < 0 {
		return Seat{}, fmt.Errorf("%w: unknown section in %q", ErrBadSeatLabel, label)
	}
	if !canonicalNumber(l[1:]) {
		return Seat{}, fmt.Errorf("%w: malformed seat number in %q", ErrBadSeatLabel, label)
	}
	n, err := strconv.Atoi(l[1:])
	if err != nil || n < 1 || n > SeatsPerSection {
		return Seat{}, fmt.Errorf("%w: seat number out of range in %q", ErrBadSeatLabel, label)
	}

	return Seat{section: sec, number: n}, nil
}

// canonicalNumber reports whether s is plain decimal digits without a
// leading zero, the only form Label produces.
func canonicalNumber(s string) bool {
	if s == "" || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// SectionOccupancy reports the fill of one section.
type SectionOccupancy struct {
	Section  string
	Occupied int
	Capacity int
}

// RandSource supplies uniform integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Option configures an Aircraft.
type Option func(*config)

type config struct {
	rng RandSource
}

// WithRand uses r for every random choice. A nil r is ignored.
func WithRand(r RandSource) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed uses a PCG generator seeded with seed, making allocation
// reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}
