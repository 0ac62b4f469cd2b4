// SPDX-License-Identifier: MIT
// Package: airnet/builder
//
// impl_argentina.go - the default seven-city network.
//
// Buenos Aires is the hub: it has direct one-way legs to five cities. The
// remaining connections are two-way, non-direct routes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/airnet/core"
)

const methodArgentina = "Argentina"

// Argentina returns a Constructor for the default network.
func Argentina() Constructor {
	return FromSpec(NetworkSpec{
		Cities: []string{
			"Buenos Aires", "Córdoba", "Mendoza", "Bariloche",
			"Santa Fe", "Posadas", "Santa Cruz",
		},
		Legs: []LegSpec{
			{From: "Buenos Aires", To: "Córdoba", Time: 1.2, Price: 120000, Direct: true},
			{From: "Buenos Aires", To: "Mendoza", Time: 1.7, Price: 150000, Direct: true},
			{From: "Buenos Aires", To: "Bariloche", Time: 2.2, Price: 220000, Direct: true},
			{From: "Buenos Aires", To: "Santa Fe", Time: 1.0, Price: 100000, Direct: true},
			{From: "Buenos Aires", To: "Posadas", Time: 1.5, Price: 140000, Direct: true},
		},
		Routes: []RouteSpec{
			{A: "Córdoba", B: "Mendoza", Time: 1.1, Price: 90000},
			{A: "Córdoba", B: "Santa Fe", Time: 0.8, Price: 70000},
			{A: "Mendoza", B: "Bariloche", Time: 1.6, Price: 120000},
			{A: "Bariloche", B: "Santa Cruz", Time: 2.0, Price: 160000},
			{A: "Mendoza", B: "Santa Cruz", Time: 2.6, Price: 170000},
			{A: "Santa Fe", B: "Posadas", Time: 1.2, Price: 80000},
		},
	}).named(methodArgentina)
}

// named relabels a constructor's error context.
func (c Constructor) named(method string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := c(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		return nil
	}
}
