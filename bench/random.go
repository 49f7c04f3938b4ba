// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import "math/rand/v2"

// Random wraps a seeded generator so a whole benchmark run is
// reproducible: the same -seed flag always produces the same sequence
// of case values. This is the Go-idiomatic counterpart of the
// original's random_source_generator.hpp, which defines one generator
// per serialisable type and threads a single random engine through
// all of them; here that becomes one rand.Rand plus a handful of
// per-scalar-type helper methods that benchmark cases compose.
type Random struct {
	r *rand.Rand
}

// NewRandom seeds a Random from a single uint64, so a run is
// reproducible across processes given the same seed.
func NewRandom(seed uint64) *Random {
	return &Random{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (g *Random) I32() int32   { return int32(g.r.Uint32()) }
func (g *Random) U32() uint32  { return g.r.Uint32() }
func (g *Random) I64() int64   { return int64(g.r.Uint64()) }
func (g *Random) U64() uint64  { return g.r.Uint64() }
func (g *Random) U16() uint16  { return uint16(g.r.Uint32()) }
func (g *Random) Byte() byte   { return byte(g.r.Uint32()) }
func (g *Random) Bool() bool   { return g.r.Uint32()&1 == 1 }
func (g *Random) F64() float64 { return g.r.Float64() }

// Bytes returns a slice of n pseudo-random bytes.
func (g *Random) Bytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = g.Byte()
	}
	return out
}

// IntN returns a pseudo-random int in [0, n).
func (g *Random) IntN(n int) int { return g.r.IntN(n) }
