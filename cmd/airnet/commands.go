package main

import (
	"errors"
	"fmt"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/airnet/bfs"
	"github.com/katalvlaran/airnet/dfs"
	"github.com/katalvlaran/airnet/internal/console"
)

var errBadTimes = errors.New("--times must be at least 1")

func (a *app) routeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <origin> <destination>",
		Short: "Print the fastest itinerary between two cities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.reg.Route(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, it)
			fmt.Fprintf(out, "total: %.2fh $%.2f\n", it.TotalTime(), it.TotalPrice())
			return nil
		},
	}
}

func (a *app) traverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Reachability and connected components",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "bfs <city>",
			Short: "Cities reachable from a city, breadth first",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				origin, err := a.reg.Graph().Lookup(args[0])
				if err != nil {
					return err
				}
				res, err := bfs.Reachable(a.reg.Graph(), origin, bfs.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.Names())
				return nil
			},
		},
		&cobra.Command{
			Use:   "dfs <city>",
			Short: "Cities reachable from a city, depth first",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				origin, err := a.reg.Graph().Lookup(args[0])
				if err != nil {
					return err
				}
				res, err := dfs.Reachable(a.reg.Graph(), origin, dfs.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.Names())
				return nil
			},
		},
		&cobra.Command{
			Use:   "components",
			Short: "Partition the network by repeated depth-first search",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				comps, err := dfs.Components(a.reg.Graph(), dfs.WithContext(cmd.Context()))
				if err != nil {
					return err
				}
				for i, c := range comps {
					fmt.Fprintf(cmd.OutOrStdout(), "%d: %v\n", i+1, c)
				}
				return nil
			},
		},
	)

	return cmd
}

func (a *app) bookCmd() *cobra.Command {
	var times int
	cmd := &cobra.Command{
		Use:   "book <origin> <destination>",
		Short: "Book seats along the fastest itinerary",
		Long: `Book reserves one seat on every leg of the fastest itinerary. With
--times N the booking is repeated N times in the same process, which shows
the occupancy surcharge and the failure once the aircraft is full.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if times < 1 {
				return errBadTimes
			}
			out := cmd.OutOrStdout()
			failed := 0
			for i := 1; i <= times; i++ {
				b, err := a.reg.Book(args[0], args[1])
				if err != nil {
					if times == 1 {
						return err
					}
					fmt.Fprintf(out, "booking %d failed: %v\n", i, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "booking %d: total $%.2f\n", i, b.Total())
				for _, r := range b.Reservations() {
					fmt.Fprintf(out, "  %s\n", r)
				}
			}
			if failed == times {
				return fmt.Errorf("all %d bookings failed", times)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&times, "times", 1, "number of bookings to make")

	return cmd
}

// demoBookings drive the stats command.
var demoBookings = [][2]string{
	{"Buenos Aires", "Santa Cruz"},
	{"Córdoba", "Santa Cruz"},
	{"Buenos Aires", "Posadas"},
	{"Santa Fe", "Posadas"},
	{"Santa Cruz", "Buenos Aires"},
}

func (a *app) statsCmd() *cobra.Command {
	var fill int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Run a demo booking session and print its metrics",
		Long: `stats books a fixed set of itineraries on the loaded network, fills the
Buenos Aires -> Córdoba flight with --fill bookings, cancels the first
reservation and prints the Prometheus text exposition of the registry
metrics. Bookings that fail are counted, not reported as errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, p := range demoBookings {
				_, _ = a.reg.Book(p[0], p[1])
			}
			for i := 0; i < fill; i++ {
				_, _ = a.reg.Book("Buenos Aires", "Córdoba")
			}
			_ = a.reg.Cancel("RES-000001")

			families, err := a.metrics.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&fill, "fill", 31, "bookings on Buenos Aires -> Córdoba")

	return cmd
}

func (a *app) shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return console.New(a.reg, cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context())
		},
	}
}
