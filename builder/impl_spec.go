// SPDX-License-Identifier: MIT
// Package: airnet/builder
//
// impl_spec.go - declarative networks and the YAML loader.
//
// Document shape:
//
//	cities: [Buenos Aires, Córdoba]
//	legs:
//	  - {from: Buenos Aires, to: Córdoba, time: 1.2, price: 120000, direct: true}
//	routes:
//	  - {a: Córdoba, b: Mendoza, time: 1.1, price: 90000}
//
// Contract:
//   - cities are added first, in document order; leg and route endpoints
//     not listed are added on first use.
//   - legs are one-way; routes add two non-direct legs (a→b, b→a).
//   - unknown fields, blank names and negative weights are rejected with
//     ErrBadNetworkSpec.

package builder

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/airnet/core"
)

const methodFromSpec = "FromSpec"

// NetworkSpec declares a network.
type NetworkSpec struct {
	Cities []string    `yaml:"cities"`
	Legs   []LegSpec   `yaml:"legs"`
	Routes []RouteSpec `yaml:"routes"`
}

// LegSpec is one directed leg.
type LegSpec struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Time   float64 `yaml:"time"`
	Price  float64 `yaml:"price"`
	Direct bool    `yaml:"direct"`
}

// RouteSpec is a two-way, non-direct route.
type RouteSpec struct {
	A     string  `yaml:"a"`
	B     string  `yaml:"b"`
	Time  float64 `yaml:"time"`
	Price float64 `yaml:"price"`
}

// FromSpec returns a Constructor that adds spec's cities, legs and routes.
func FromSpec(spec NetworkSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, name := range spec.Cities {
			c := core.NewCity(name)
			if c.IsZero() {
				return fmt.Errorf("%s: cities[%d] is blank: %w", methodFromSpec, i, ErrBadNetworkSpec)
			}
			g.AddCity(c)
		}
		for i, l := range spec.Legs {
			if err := g.AddEdge(core.NewCity(l.From), core.NewCity(l.To), l.Time, l.Price, l.Direct); err != nil {
				return fmt.Errorf("%s: legs[%d] %q->%q: %w: %w", methodFromSpec, i, l.From, l.To, ErrBadNetworkSpec, err)
			}
		}
		for i, r := range spec.Routes {
			if err := g.AddBidirectionalEdge(core.NewCity(r.A), core.NewCity(r.B), r.Time, r.Price); err != nil {
				return fmt.Errorf("%s: routes[%d] %q<->%q: %w: %w", methodFromSpec, i, r.A, r.B, ErrBadNetworkSpec, err)
			}
		}

		return nil
	}
}

// DecodeSpec reads one YAML document into a NetworkSpec. Unknown fields
// are rejected; an empty document yields an empty spec.
func DecodeSpec(r io.Reader) (NetworkSpec, error) {
	var spec NetworkSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
		return NetworkSpec{}, fmt.Errorf("DecodeSpec: %w: %w", ErrBadNetworkSpec, err)
	}

	return spec, nil
}

// LoadNetwork decodes a YAML network from r and builds it.
func LoadNetwork(r io.Reader, bopts ...BuilderOption) (*core.Graph, error) {
	spec, err := DecodeSpec(r)
	if err != nil {
		return nil, err
	}

	return BuildNetwork(bopts, FromSpec(spec))
}
