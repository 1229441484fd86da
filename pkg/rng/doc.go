// Package rng provides deterministic random number generation for the item
// randomizer.
//
// # Overview
//
// Quantities sampled while producing a Randomization — which start location
// is tried, the item precedence order, which doors receive which lock
// colors — flow through an RNG constructed from the attempt's seed. The
// filler shuffle in pkg/placement is seeded from the step number alone, so
// it draws the same sequence whatever the attempt seed. Given the same seed
// and the same inputs (game data, map, difficulty), the full sequence of
// draws is identical, which is what makes a seed reproducible.
//
// # Seed derivation
//
// NewFromSeed embeds the 64-bit attempt seed as the first 8 bytes of a
// 32-byte array (the remaining bytes zero) before seeding the underlying
// source, mirroring the wire encoding documented for randomize(attempt,
// seed, display_seed). NewRNG additionally supports deriving an isolated
// sub-seed for a named stage (e.g. "doors", "precedence") from a master seed
// and a config hash, via SHA-256, so that two stages never draw from the
// same stream even when both are seeded from one attempt.
//
// # Thread safety
//
// RNG is not safe for concurrent use. The core places one RNG per attempt;
// callers that parallelize across attempts (see the errgroup-based retry
// driver in cmd/randoserver) must construct one RNG per goroutine.
package rng
