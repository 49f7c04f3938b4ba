// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

// PairSource holds the two values a pair<A,B> writer needs.
type PairSource[A, B any] struct {
	First  A
	Second B
}

// PairReader is the lazily-projected view over a written pair<A,B>.
type PairReader[TA, TB any] struct {
	src        []byte
	readFirst  readFunc[TA]
	readSecond readFunc[TB]
	firstOff   int
	secondOff  int
}

// First decodes (or, if A is itself composite, sub-projects) the pair's
// first element.
func (r *PairReader[TA, TB]) First() (TA, error) {
	return r.readFirst(r.src, r.firstOff)
}

// Second decodes the pair's second element.
func (r *PairReader[TA, TB]) Second() (TB, error) {
	return r.readSecond(r.src, r.secondOff)
}

// Pair builds the Codec for pair<A,B>: its fixed size is the sum of its
// parts' fixed sizes, its fixed bytes are the concatenation of A's then
// B's fixed parts, and its variable bytes are A's variable part
// followed by B's.
func Pair[SA, TA, SB, TB any](a Codec[SA, TA], b Codec[SB, TB]) Codec[PairSource[SA, SB], *PairReader[TA, TB]] {
	size := a.Size + b.Size
	return Codec[PairSource[SA, SB], *PairReader[TA, TB]]{
		Size: size,
		Write: func(buf Buffer, fixedOffset int, v PairSource[SA, SB]) error {
			if err := a.Write(buf, fixedOffset, v.First); err != nil {
				return err
			}
			return b.Write(buf, fixedOffset+a.Size, v.Second)
		},
		Read: func(src []byte, fixedOffset int) (*PairReader[TA, TB], error) {
			if err := checkFixedRegion(src, fixedOffset, size); err != nil {
				return nil, err
			}
			return &PairReader[TA, TB]{
				src:        src,
				readFirst:  a.Read,
				readSecond: b.Read,
				firstOff:   fixedOffset,
				secondOff:  fixedOffset + a.Size,
			}, nil
		},
	}
}
