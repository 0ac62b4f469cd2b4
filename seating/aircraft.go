package seating

// Aircraft tracks which seats are taken and how full each section is.
type Aircraft struct {
	seats    [SectionCount][SeatsPerSection]bool
	occupied [SectionCount]int
	rng      RandSource
}

// NewAircraft returns an empty aircraft.
func NewAircraft(opts ...Option) *Aircraft {
	cfg := config{rng: globalRand{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Aircraft{rng: cfg.rng}
}

// AssignSeat occupies a seat chosen by the balancing policy and returns it.
// Returns ErrNoSeatAvailable only when every section is full.
//
// Complexity: O(SectionCount + SeatsPerSection).
func (a *Aircraft) AssignSeat() (Seat, error) {
	// 1. Sections at the minimum occupied count.
	lowest := SeatsPerSection + 1
	var candidates []int
	for i, n := range a.occupied {
		switch {
		case n < lowest:
			lowest = n
			candidates = append(candidates[:0], i)
		case n == lowest:
			candidates = append(candidates, i)
		}
	}
	if lowest >= SeatsPerSection {
		return Seat{}, ErrNoSeatAvailable
	}

	// 2. Random section among the least occupied.
	sec := candidates[a.rng.IntN(len(candidates))]

	// 3. Random free seat in that section.
	free := make([]int, 0, SeatsPerSection-a.occupied[sec])
	for i, taken := range a.seats[sec] {
		if !taken {
			free = append(free, i)
		}
	}
	idx := free[a.rng.IntN(len(free))]

	a.seats[sec][idx] = true
	a.occupied[sec]++

	return Seat{section: sec, number: idx + 1}, nil
}

// ReleaseSeat frees the seat named by label and reports whether it was
// occupied. Free seats and malformed labels are ignored.
func (a *Aircraft) ReleaseSeat(label string) bool {
	s, err := ParseSeat(label)
	if err != nil || !a.seats[s.section][s.number-1] {
		return false
	}
	a.seats[s.section][s.number-1] = false
	a.occupied[s.section]--

	return true
}

// IsSeatOccupied reports whether label names an occupied seat.
// Malformed labels report false.
func (a *Aircraft) IsSeatOccupied(label string) bool {
	s, err := ParseSeat(label)
	if err != nil {
		return false
	}

	return a.seats[s.section][s.number-1]
}

// TotalOccupied returns the number of occupied seats.
func (a *Aircraft) TotalOccupied() int {
	total := 0
	for _, n := range a.occupied {
		total += n
	}

	return total
}

// TotalCapacity returns the number of seats on the aircraft.
func (a *Aircraft) TotalCapacity() int { return Capacity }

// OccupancyPercent returns occupied / capacity × 100 without truncation.
func (a *Aircraft) OccupancyPercent() float64 {
	return float64(a.TotalOccupied()) * 100 / float64(Capacity)
}

// OccupancyBySection returns one entry per section in layout order.
func (a *Aircraft) OccupancyBySection() []SectionOccupancy {
	out := make([]SectionOccupancy, SectionCount)
	for i := range out {
		out[i] = SectionOccupancy{
			Section:  sectionNames[i : i+1],
			Occupied: a.occupied[i],
			Capacity: SeatsPerSection,
		}
	}

	return out
}

// IsFull reports whether no seat is free.
func (a *Aircraft) IsFull() bool { return a.TotalOccupied() == Capacity }
