// Package console is the interactive text front end of airnet. It reads
// menu choices, city names and codes line by line and prints itineraries,
// receipts and occupancy reports.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/airnet/airline"
	"github.com/katalvlaran/airnet/bfs"
	"github.com/katalvlaran/airnet/core"
	"github.com/katalvlaran/airnet/dfs"
	"github.com/katalvlaran/airnet/flight"
)

// Console drives one interactive session over a Registry.
type Console struct {
	reg *airline.Registry
	in  *bufio.Scanner
	out io.Writer
}

// New returns a console reading from in and writing to out.
func New(reg *airline.Registry, in io.Reader, out io.Writer) *Console {
	return &Console{reg: reg, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the user exits, input ends or ctx is done.
// End of input is a normal exit.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.menu()
		choice, ok := c.prompt("Select: ")
		if !ok {
			return c.in.Err()
		}
		switch choice {
		case "1":
			c.registerRoute()
		case "2":
			c.queryRoute()
		case "3":
			c.book()
		case "4":
			c.cancel()
		case "5":
			c.occupancy()
		case "6":
			c.listFlights()
		case "7":
			c.traversals()
		case "0":
			c.printf("Goodbye.\n")
			return nil
		default:
			c.printf("Invalid option, try again.\n")
		}
	}
}

func (c *Console) menu() {
	c.printf("\n=== AIRNET ===\n" +
		"1. Register route flights\n" +
		"2. Query route\n" +
		"3. Book ticket\n" +
		"4. Cancel reservation\n" +
		"5. Flight occupancy\n" +
		"6. List flights\n" +
		"7. Graph traversals (BFS/DFS/components)\n" +
		"0. Exit\n")
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// prompt prints msg and returns the next trimmed line.
func (c *Console) prompt(msg string) (string, bool) {
	c.printf("%s", msg)
	if !c.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(c.in.Text()), true
}

// city reads a city name and resolves it, listing the known cities on a miss.
func (c *Console) city(msg string) (core.City, bool) {
	name, ok := c.prompt(msg)
	if !ok {
		return core.City{}, false
	}
	city, err := c.reg.Graph().Lookup(name)
	if err == nil {
		return city, true
	}
	var nf *core.CityNotFoundError
	if errors.As(err, &nf) {
		c.printf("City not found. Available cities:\n")
		for _, k := range nf.Known {
			c.printf("  - %s\n", k)
		}
	} else {
		c.printf("Please enter a city name.\n")
	}

	return core.City{}, false
}

func (c *Console) pair() (core.City, core.City, bool) {
	from, ok := c.city("Origin: ")
	if !ok {
		return core.City{}, core.City{}, false
	}
	to, ok := c.city("Destination: ")

	return from, to, ok
}

func (c *Console) registerRoute() {
	c.printf("\n--- REGISTER ROUTE ---\n")
	from, to, ok := c.pair()
	if !ok {
		return
	}
	it, err := c.reg.Route(from.Name(), to.Name())
	if err != nil {
		c.report(err, from, to)
		return
	}
	created, err := c.reg.RegisterRoute(it)
	switch {
	case errors.Is(err, airline.ErrRouteAlreadyRegistered):
		c.printf("Route %s -> %s is already registered.\n", from, to)
		return
	case err != nil:
		c.report(err, from, to)
		return
	}

	if len(created) == 1 {
		c.printf("Direct flight created: %s\n", created[0])
		return
	}
	c.printf("No direct flight, created %d legs:\n", len(created))
	for _, f := range created {
		c.printf("  - %s\n", f)
	}
}

func (c *Console) queryRoute() {
	c.printf("\n--- QUERY ROUTE ---\n")
	from, to, ok := c.pair()
	if !ok {
		return
	}
	it, err := c.reg.Route(from.Name(), to.Name())
	if err != nil {
		c.report(err, from, to)
		return
	}

	direct := "no"
	if it.IsDirect() {
		direct = "yes"
	}
	c.printf("Route: %s\n", it)
	c.printf("Total time: %.2f hours\n", it.TotalTime())
	c.printf("Total base price: $%.2f\n", it.TotalPrice())
	c.printf("Direct: %s\n", direct)
	c.printf("Legs:\n")
	for _, l := range it.Legs() {
		c.printf("  %s\n", l)
	}
}

func (c *Console) book() {
	c.printf("\n--- BOOK TICKET ---\n")
	from, to, ok := c.pair()
	if !ok {
		return
	}
	b, err := c.reg.Book(from.Name(), to.Name())
	if err != nil {
		c.report(err, from, to)
		return
	}

	c.printf("\n=== BOOKING RECEIPT ===\n")
	c.printf("Itinerary: %s -> %s\n", from, to)
	c.printf("Reservations:\n")
	for _, r := range b.Reservations() {
		c.printf("  %s\n", r)
	}
	c.printf("Total: $%.2f\n", b.Total())
	c.printf("Surcharges:\n")
	for _, l := range b.Legs {
		c.printf("  Flight %s: occupancy before booking %.2f%%", l.Reservation.FlightCode(), l.OccupancyBefore)
		if l.OccupancySurcharge {
			c.printf(", +10%% occupancy surcharge")
		}
		c.printf("\n")
	}
	if b.DirectSurcharge {
		c.printf("  +20%% direct flight surcharge\n")
	}
}

func (c *Console) cancel() {
	c.printf("\n--- CANCEL RESERVATION ---\n")
	code, ok := c.prompt("Reservation code: ")
	if !ok {
		return
	}
	if err := c.reg.Cancel(code); err != nil {
		c.printf("Reservation not found.\n")
		return
	}
	c.printf("Reservation %s cancelled.\n", flight.NormalizeCode(code))
}

func (c *Console) occupancy() {
	c.printf("\n--- FLIGHT OCCUPANCY ---\n")
	code, ok := c.prompt("Flight code: ")
	if !ok {
		return
	}
	f, err := c.reg.Flight(code)
	if err != nil {
		c.printf("Flight not found.\n")
		return
	}

	occ := f.Occupancy()
	c.printf("%s\n", f)
	c.printf("Occupancy: %.2f%%\n", occ.Percent)
	c.printf("Seats taken: %d / %d\n", occ.Occupied, occ.Capacity)
	c.printf("By section:\n")
	for _, s := range occ.Sections {
		c.printf("  Section %s: %d / %d\n", s.Section, s.Occupied, s.Capacity)
	}
	c.printf("Reservations:\n")
	if f.ReservationCount() == 0 {
		c.printf("  none\n")
		return
	}
	for r := range f.Reservations() {
		c.printf("  %s\n", r)
	}
}

func (c *Console) listFlights() {
	c.printf("\n--- FLIGHTS ---\n")
	flights := c.reg.Flights()
	if len(flights) == 0 {
		c.printf("No flights registered.\n")
		return
	}
	for _, f := range flights {
		c.printf("%s | occupancy %.2f%%\n", f, f.OccupancyPercent())
	}
}

func (c *Console) traversals() {
	c.printf("\n--- GRAPH TRAVERSALS ---\n" +
		"1. BFS from a city\n" +
		"2. DFS from a city\n" +
		"3. Connected components\n")
	choice, ok := c.prompt("Select: ")
	if !ok {
		return
	}

	g := c.reg.Graph()
	switch choice {
	case "1":
		origin, ok := c.city("Origin city: ")
		if !ok {
			return
		}
		res, err := bfs.Reachable(g, origin)
		if err != nil {
			c.printf("Error: %v\n", err)
			return
		}
		c.printf("Reachable (BFS): %v\n", res.Names())
	case "2":
		origin, ok := c.city("Origin city: ")
		if !ok {
			return
		}
		res, err := dfs.Reachable(g, origin)
		if err != nil {
			c.printf("Error: %v\n", err)
			return
		}
		c.printf("Reachable (DFS): %v\n", res.Names())
	case "3":
		comps, err := dfs.Components(g)
		if err != nil {
			c.printf("Error: %v\n", err)
			return
		}
		c.printf("Components: %d\n", len(comps))
		for i, comp := range comps {
			c.printf("  Component %d: %v\n", i+1, comp)
		}
	default:
		c.printf("Invalid option.\n")
	}
}

// report prints a user-facing message for a registry error.
func (c *Console) report(err error, from, to core.City) {
	switch {
	case errors.Is(err, airline.ErrNoRouteExists):
		c.printf("No route between %s and %s.\n", from, to)
	case errors.Is(err, airline.ErrEmptyItinerary):
		c.printf("Origin and destination are the same city.\n")
	case errors.Is(err, airline.ErrNoSeatAvailable):
		c.printf("Booking failed: no seats left on a leg of %s -> %s.\n", from, to)
	default:
		c.printf("Error: %v\n", err)
	}
}
