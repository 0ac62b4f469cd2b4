// SPDX-License-Identifier: MIT

// Package builder assembles route networks (core.Graph) for the airline.
//
// One orchestrator, BuildNetwork(bopts, cons...), creates an empty graph,
// resolves a builderConfig from functional options and applies the
// constructors in order. Constructors return sentinel errors and never
// panic; option constructors panic on meaningless input.
//
// Constructors:
//
//   - Argentina():          the seven-city default network.
//   - FromSpec(spec):       cities, directed legs and two-way routes from a
//     NetworkSpec (usually decoded from YAML by DecodeSpec).
//   - Star(n):              hub-and-spoke; direct legs hub → leaf.
//   - Path(n):              chain of two-way routes.
//   - Complete(n):          two-way route between every pair.
//   - RandomSparse(n, p):   each ordered pair gets a leg with probability p.
//
// Helpers:
//
//   - DefaultNetwork() returns the Argentina network directly.
//   - LoadNetwork(r) decodes YAML and builds it.
//
// Determinism: equal options, seed and constructor order produce identical
// networks, including leg insertion order.
package builder
