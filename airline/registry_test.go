package airline_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/airnet/airline"
	"github.com/katalvlaran/airnet/builder"
	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/flight"
	"github.com/katalvlaran/airnet/seating"
)

type RegistrySuite struct {
	suite.Suite
	reg  *airline.Registry
	prom *prometheus.Registry
}

func (s *RegistrySuite) SetupTest() {
	s.prom = prometheus.NewRegistry()
	reg, err := airline.NewRegistry(builder.DefaultNetwork(),
		airline.WithSeed(1),
		airline.WithMetrics(s.prom),
	)
	s.Require().NoError(err)
	s.reg = reg
}

// fill books origin→destination n times and fails on any error.
func (s *RegistrySuite) fill(origin, destination string, n int) {
	for i := 0; i < n; i++ {
		_, err := s.reg.Book(origin, destination)
		s.Require().NoError(err, "booking %d", i+1)
	}
}

// consistent checks seats against indexed reservations on every flight.
func (s *RegistrySuite) consistent() {
	for _, f := range s.reg.Flights() {
		s.Require().Equal(f.ReservationCount(), f.Occupancy().Occupied, f.Code())
		for r := range f.Reservations() {
			s.Require().True(f.IsSeatOccupied(r.Seat()), r.Code())
		}
	}
}

func (s *RegistrySuite) TestNewRegistryNilGraph() {
	_, err := airline.NewRegistry(nil)
	s.ErrorIs(err, airline.ErrNilGraph)
}

func (s *RegistrySuite) TestBookDirect() {
	b, err := s.reg.Book("Buenos Aires", "cordoba")
	s.Require().NoError(err)
	s.Require().Len(b.Legs, 1)

	r := b.Legs[0].Reservation
	s.Equal("RES-000001", r.Code())
	s.Equal("VUELO-0001", r.FlightCode())
	s.Equal("Córdoba", r.Destination().Name())
	s.InDelta(144000.0, r.Price(), 1e-6, "direct premium ×1.20")
	s.True(b.DirectSurcharge)
	s.False(b.Legs[0].OccupancySurcharge)
	s.Zero(b.Legs[0].OccupancyBefore)
	s.InDelta(144000.0, b.Total(), 1e-6)
	s.consistent()
}

func (s *RegistrySuite) TestBookMultiLeg() {
	b, err := s.reg.Book("Córdoba", "Santa Cruz")
	s.Require().NoError(err)
	s.Equal([]string{"RES-000001", "RES-000002"}, b.Codes())
	s.False(b.DirectSurcharge)
	s.InDelta(260000.0, b.Total(), 1e-6)

	rs := b.Reservations()
	s.Equal("Mendoza", rs[0].Destination().Name())
	s.Equal("VUELO-0001", rs[0].FlightCode())
	s.Equal("VUELO-0002", rs[1].FlightCode())
	s.Len(s.reg.Flights(), 2)
}

func (s *RegistrySuite) TestFlightsReusedPerPair() {
	s.fill("Buenos Aires", "Córdoba", 3)
	fs, err := s.reg.FlightsFor("buenos aires", "CÓRDOBA")
	s.Require().NoError(err)
	s.Require().Len(fs, 1)
	s.Equal(3, fs[0].ReservationCount())
}

func (s *RegistrySuite) TestOccupancySurchargeThenDirect() {
	s.fill("Buenos Aires", "Córdoba", 29)

	b, err := s.reg.Book("Buenos Aires", "Córdoba")
	s.Require().NoError(err)
	leg := b.Legs[0]
	s.True(leg.OccupancySurcharge)
	s.InDelta(29.0*100/30, leg.OccupancyBefore, 1e-9)
	s.InDelta(120000*1.10*1.20, leg.Reservation.Price(), 1e-6)

	f, err := s.reg.Flight(leg.Reservation.FlightCode())
	s.Require().NoError(err)
	s.True(f.IsFull())
	s.Equal(100.0, f.OccupancyPercent())

	_, err = s.reg.Book("Buenos Aires", "Córdoba")
	s.ErrorIs(err, airline.ErrNoSeatAvailable)
	s.ErrorIs(err, seating.ErrNoSeatAvailable)

	s.Equal(1.0, testutil.ToFloat64(s.reg.Metrics().SurchargesTotal.WithLabelValues("occupancy")))
	s.Equal(30.0, testutil.ToFloat64(s.reg.Metrics().SurchargesTotal.WithLabelValues("direct")))
	s.Equal(1.0, testutil.ToFloat64(s.reg.Metrics().BookingsTotal.WithLabelValues("no_seat")))
	s.Equal(30.0, testutil.ToFloat64(s.reg.Metrics().SeatsOccupied))
}

func (s *RegistrySuite) TestRollbackOnSecondLeg() {
	// Fill Mendoza → Santa Cruz, the second leg of Córdoba → Santa Cruz.
	s.fill("Mendoza", "Santa Cruz", seating.Capacity)

	_, err := s.reg.Book("Córdoba", "Santa Cruz")
	s.Require().ErrorIs(err, airline.ErrNoSeatAvailable)

	// The first leg's flight was created, then emptied by the rollback.
	fs, err := s.reg.FlightsFor("Córdoba", "Mendoza")
	s.Require().NoError(err)
	s.Require().Len(fs, 1)
	s.Zero(fs[0].Occupancy().Occupied)
	s.Zero(fs[0].ReservationCount())
	s.consistent()

	_, err = s.reg.Reservation("RES-000031")
	s.ErrorIs(err, airline.ErrReservationNotFound, "rolled back reservation is gone")

	// Codes consumed by the rollback are not reused.
	b, err := s.reg.Book("Córdoba", "Mendoza")
	s.Require().NoError(err)
	s.Equal("RES-000032", b.Codes()[0])

	m := s.reg.Metrics()
	s.Equal(1.0, testutil.ToFloat64(m.RollbacksTotal))
	s.Equal(1.0, testutil.ToFloat64(m.CompensatedTotal))
	s.Equal(31.0, testutil.ToFloat64(m.SeatsOccupied))
}

func (s *RegistrySuite) TestBookErrors() {
	_, err := s.reg.Book("Rosario", "Córdoba")
	s.ErrorIs(err, core.ErrCityNotFound)
	var nf *core.CityNotFoundError
	s.Require().True(errors.As(err, &nf))
	s.Len(nf.Known, 7)

	_, err = s.reg.Book("Córdoba", "Buenos Aires")
	s.ErrorIs(err, airline.ErrNoRouteExists, "hub legs are one-way")

	_, err = s.reg.Book("Mendoza", "mendoza")
	s.ErrorIs(err, airline.ErrEmptyItinerary)

	s.Empty(s.reg.Flights())
	s.Equal(1.0, testutil.ToFloat64(s.reg.Metrics().BookingsTotal.WithLabelValues("no_route")))
	s.Equal(2.0, testutil.ToFloat64(s.reg.Metrics().BookingsTotal.WithLabelValues("invalid")))
}

func (s *RegistrySuite) TestCancel() {
	b, err := s.reg.Book("Buenos Aires", "Santa Fe")
	s.Require().NoError(err)
	r := b.Legs[0].Reservation

	f, err := s.reg.Flight(r.FlightCode())
	s.Require().NoError(err)
	s.True(f.IsSeatOccupied(r.Seat()))

	s.Require().NoError(s.reg.Cancel(" res-000001 "))
	s.False(f.IsSeatOccupied(r.Seat()))
	s.Zero(f.ReservationCount())

	err = s.reg.Cancel("RES-000001")
	s.ErrorIs(err, airline.ErrReservationNotFound)

	m := s.reg.Metrics()
	s.Equal(1.0, testutil.ToFloat64(m.CancellationsTotal.WithLabelValues("cancelled")))
	s.Equal(1.0, testutil.ToFloat64(m.CancellationsTotal.WithLabelValues("not_found")))
	s.Zero(testutil.ToFloat64(m.SeatsOccupied))

	// The cancelled code is never handed out again.
	b, err = s.reg.Book("Buenos Aires", "Santa Fe")
	s.Require().NoError(err)
	s.Equal("RES-000002", b.Codes()[0])
}

func (s *RegistrySuite) TestCancelKeepsOtherReservations() {
	s.fill("Buenos Aires", "Posadas", 5)
	s.Require().NoError(s.reg.Cancel("RES-000003"))

	f, err := s.reg.Flight("vuelo-0001")
	s.Require().NoError(err)
	var codes []string
	for r := range f.Reservations() {
		codes = append(codes, r.Code())
	}
	s.Equal([]string{"RES-000001", "RES-000002", "RES-000004", "RES-000005"}, codes)
	s.consistent()
}

func (s *RegistrySuite) TestRegisterRoute() {
	it, err := s.reg.Route("Buenos Aires", "Santa Cruz")
	s.Require().NoError(err)
	s.Equal("Bariloche", it.Cities()[1].Name())

	created, err := s.reg.RegisterRoute(it)
	s.Require().NoError(err)
	s.Len(created, 2)
	s.Equal("VUELO-0001", created[0].Code())
	s.True(created[0].IsDirect())
	s.False(created[1].IsDirect())

	again, err := s.reg.RegisterRoute(it)
	s.ErrorIs(err, airline.ErrRouteAlreadyRegistered)
	s.Empty(again)
	s.Len(s.reg.Flights(), 2)

	_, err = s.reg.RegisterRoute(nil)
	s.ErrorIs(err, airline.ErrEmptyItinerary)
}

func (s *RegistrySuite) TestRegisterRoutePartiallyCovered() {
	// Bariloche → Santa Cruz gets a flight through a booking first.
	s.fill("Bariloche", "Santa Cruz", 1)

	created, err := s.reg.RegisterRouteBetween("Buenos Aires", "Santa Cruz")
	s.Require().NoError(err)
	s.Require().Len(created, 2, "one new flight per leg, covered or not")

	fs, err := s.reg.FlightsFor("Bariloche", "Santa Cruz")
	s.Require().NoError(err)
	s.Require().Len(fs, 2)
	s.Equal("VUELO-0001", fs[0].Code())

	// Bookings keep using the first flight of a pair.
	b, err := s.reg.Book("Bariloche", "Santa Cruz")
	s.Require().NoError(err)
	s.Equal("VUELO-0001", b.Legs[0].Reservation.FlightCode())
	s.Equal(3.0, testutil.ToFloat64(s.reg.Metrics().FlightsCreatedTotal))
}

func (s *RegistrySuite) TestQuote() {
	q, err := s.reg.Quote("Buenos Aires", "Córdoba")
	s.Require().NoError(err)
	s.True(q.DirectSurcharge)
	s.Empty(q.Legs[0].Flight)
	s.InDelta(144000.0, q.Total, 1e-6)
	s.Empty(s.reg.Flights(), "quotes create no flights")

	s.fill("Buenos Aires", "Córdoba", 29)
	q, err = s.reg.Quote("Buenos Aires", "Córdoba")
	s.Require().NoError(err)
	s.Equal("VUELO-0001", q.Legs[0].Flight)
	s.True(q.Legs[0].OccupancySurcharge)

	b, err := s.reg.Book("Buenos Aires", "Córdoba")
	s.Require().NoError(err)
	s.InDelta(q.Total, b.Total(), 1e-6, "quote matches the booking that follows")
}

func (s *RegistrySuite) TestFlightLookup() {
	s.fill("Buenos Aires", "Mendoza", 1)
	s.fill("Buenos Aires", "Bariloche", 1)

	f, err := s.reg.Flight("  vuelo-0002 ")
	s.Require().NoError(err)
	s.Equal("Bariloche", f.Destination().Name())

	_, err = s.reg.Flight("VUELO-9999")
	s.ErrorIs(err, airline.ErrFlightNotFound)

	var codes []string
	for _, f := range s.reg.Flights() {
		codes = append(codes, f.Code())
	}
	s.Equal([]string{"VUELO-0001", "VUELO-0002"}, codes)

	r, err := s.reg.Reservation("res-000002")
	s.Require().NoError(err)
	s.Equal("VUELO-0002", r.FlightCode())
}

func (s *RegistrySuite) TestConcurrentBookingsNeverOverbook() {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		ok, bad int
	)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.reg.Book("Buenos Aires", "Santa Fe")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, airline.ErrNoSeatAvailable) {
				bad++
			}
		}()
	}
	wg.Wait()

	s.Equal(seating.Capacity, ok)
	s.Equal(10, bad)
	s.consistent()
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func TestBookingCodesAreFormatted(t *testing.T) {
	reg, err := airline.NewRegistry(builder.DefaultNetwork())
	if err != nil {
		t.Fatal(err)
	}
	b, err := reg.Book("Santa Fe", "Posadas")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.Codes()[0], flight.FormatReservationCode(1); got != want {
		t.Fatalf("code = %s, want %s", got, want)
	}
}
