package seating_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/airnet/seating"
)

// fixedRand always returns the first index.
type fixedRand struct{ calls []int }

func (f *fixedRand) IntN(n int) int {
	f.calls = append(f.calls, n)
	return 0
}

func TestParseSeat(t *testing.T) {
	s, err := seating.ParseSeat(" b10 ")
	require.NoError(t, err)
	assert.Equal(t, "B", s.Section())
	assert.Equal(t, 10, s.Number())
	assert.Equal(t, "B10", s.Label())

	for _, bad := range []string{"", "A", "D1", "A0", "A11", "Ax", "1A", "A+1", "a01", "A-1", "A 1"} {
		_, err := seating.ParseSeat(bad)
		assert.ErrorIs(t, err, seating.ErrBadSeatLabel, bad)
	}
}

func TestAssignSeat_BalancesSections(t *testing.T) {
	a := seating.NewAircraft(seating.WithSeed(42))
	for i := 1; i <= seating.Capacity; i++ {
		_, err := a.AssignSeat()
		require.NoError(t, err)

		lo, hi := seating.SeatsPerSection, 0
		for _, so := range a.OccupancyBySection() {
			lo, hi = min(lo, so.Occupied), max(hi, so.Occupied)
		}
		require.LessOrEqual(t, hi-lo, 1, "after %d seats", i)
		require.Equal(t, i, a.TotalOccupied())
	}

	assert.True(t, a.IsFull())
	assert.Equal(t, 100.0, a.OccupancyPercent())
	_, err := a.AssignSeat()
	assert.ErrorIs(t, err, seating.ErrNoSeatAvailable)
}

func TestAssignSeat_UniqueSeats(t *testing.T) {
	a := seating.NewAircraft(seating.WithSeed(7))
	seen := map[string]bool{}
	for i := 0; i < seating.Capacity; i++ {
		s, err := a.AssignSeat()
		require.NoError(t, err)
		require.False(t, seen[s.Label()], "seat %s assigned twice", s)
		seen[s.Label()] = true
		require.True(t, a.IsSeatOccupied(s.Label()))
	}
}

func TestAssignSeat_InjectedRand(t *testing.T) {
	r := &fixedRand{}
	a := seating.NewAircraft(seating.WithRand(r))

	s, err := a.AssignSeat()
	require.NoError(t, err)
	assert.Equal(t, "A1", s.Label())
	assert.Equal(t, []int{3, 10}, r.calls, "three tied sections, ten free seats")

	s, err = a.AssignSeat()
	require.NoError(t, err)
	assert.Equal(t, "B1", s.Label(), "A is no longer least occupied")
}

func TestAssignSeat_FillsEmptiestAfterRelease(t *testing.T) {
	a := seating.NewAircraft(seating.WithRand(&fixedRand{}))
	for i := 0; i < 6; i++ {
		_, err := a.AssignSeat()
		require.NoError(t, err)
	}
	// A1 A2 B1 B2 C1 C2 taken; free two seats in B.
	require.True(t, a.ReleaseSeat("B1"))
	require.True(t, a.ReleaseSeat("b2"))

	s, err := a.AssignSeat()
	require.NoError(t, err)
	assert.Equal(t, "B1", s.Label())
}

func TestReleaseSeat_NoOps(t *testing.T) {
	a := seating.NewAircraft(seating.WithSeed(1))
	assert.False(t, a.ReleaseSeat("A1"), "free seat")
	assert.False(t, a.ReleaseSeat("Z9"), "bad label")
	assert.False(t, a.ReleaseSeat(""), "empty label")
	assert.Zero(t, a.TotalOccupied())

	s, err := a.AssignSeat()
	require.NoError(t, err)
	assert.True(t, a.ReleaseSeat(s.Label()))
	assert.False(t, a.ReleaseSeat(s.Label()), "second release")
	assert.Zero(t, a.TotalOccupied())
}

func TestReleaseSeat_NonCanonicalLabel(t *testing.T) {
	a := seating.NewAircraft(seating.WithRand(&fixedRand{}))
	s, err := a.AssignSeat()
	require.NoError(t, err)
	require.Equal(t, "A1", s.Label())

	for _, label := range []string{"A+1", "a01", "A001"} {
		assert.False(t, a.IsSeatOccupied(label), label)
		assert.False(t, a.ReleaseSeat(label), label)
	}
	assert.Equal(t, 1, a.TotalOccupied())
	assert.True(t, a.IsSeatOccupied("a1"))
}

func TestOccupancyPercentIsNotTruncated(t *testing.T) {
	a := seating.NewAircraft(seating.WithSeed(3))
	for i := 0; i < 28; i++ {
		_, err := a.AssignSeat()
		require.NoError(t, err)
	}
	assert.InDelta(t, 93.333, a.OccupancyPercent(), 0.001)
	assert.Less(t, a.OccupancyPercent(), 95.0)

	_, err := a.AssignSeat()
	require.NoError(t, err)
	assert.InDelta(t, 96.667, a.OccupancyPercent(), 0.001)
	assert.Equal(t, 30, a.TotalCapacity())
}

func TestWithSeedIsReproducible(t *testing.T) {
	a, b := seating.NewAircraft(seating.WithSeed(99)), seating.NewAircraft(seating.WithSeed(99))
	for i := 0; i < 10; i++ {
		sa, _ := a.AssignSeat()
		sb, _ := b.AssignSeat()
		require.Equal(t, sa, sb)
	}
}

func TestSections(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, seating.Sections())
	a := seating.NewAircraft(seating.WithRand(nil))
	_, err := a.AssignSeat()
	require.NoError(t, err, "nil rand keeps the default source")
}
