// Package seating allocates seats on a fixed-layout aircraft.
//
// Layout: three sections (A, B, C) of ten seats each; labels read "A1"…"C10".
//
// Allocation policy (AssignSeat):
//
//  1. Collect the sections whose occupied count is the current minimum.
//  2. Pick one of them uniformly at random.
//  3. Pick one of its free seats uniformly at random and occupy it.
//
// The policy keeps sections within one seat of each other while seats are
// only assigned; releases can unbalance them again and the next assignments
// fill the emptiest section first.
//
// Randomness comes from a RandSource. The default draws from the
// math/rand/v2 global generator; WithSeed or WithRand make allocation
// reproducible.
//
// Concurrency: an Aircraft is not safe for concurrent use. Each flight owns
// exactly one Aircraft and serializes access to it.
package seating
