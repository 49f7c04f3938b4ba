// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

// Tuple is the Codec builder for tuple<T1...Tn>: fixed parts are laid
// out in index order at contiguous offsets, variable parts follow in
// the same order.
type Tuple struct {
	elems []AnyCodec
	offs  []int
	size  int
}

// NewTuple constructs a Tuple from its member codecs, in declaration
// order.
func NewTuple(elems ...AnyCodec) Tuple {
	sizes := make([]int, len(elems))
	for i, e := range elems {
		sizes[i] = e.Size
	}
	offs, size := sumFixedSizes(sizes)
	return Tuple{elems: elems, offs: offs, size: size}
}

// Size is fixed_size(tuple<T1...Tn>).
func (t Tuple) Size() int { return t.size }

// Write emits each member's fixed part at its declared offset, then its
// variable part, in member order.
func (t Tuple) Write(buf Buffer, fixedOffset int, values ...any) error {
	if len(values) != len(t.elems) {
		return newErr(BadValue, "tuple expects %d values, got %d", len(t.elems), len(values))
	}
	for i, e := range t.elems {
		if err := e.Write(buf, fixedOffset+t.offs[i], values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Read validates the tuple's fixed region and returns a lazy reader.
func (t Tuple) Read(src []byte, fixedOffset int) (*TupleReader, error) {
	if err := checkFixedRegion(src, fixedOffset, t.size); err != nil {
		return nil, err
	}
	return &TupleReader{src: src, t: t, base: fixedOffset}, nil
}

// AsCodec exposes this Tuple through the uniform Codec[S, T] shape used
// by Serialise/Deserialise.
func (t Tuple) AsCodec() Codec[[]any, *TupleReader] {
	return Codec[[]any, *TupleReader]{
		Size: t.size,
		Write: func(buf Buffer, fixedOffset int, v []any) error {
			return t.Write(buf, fixedOffset, v...)
		},
		Read: t.Read,
	}
}

// TupleReader is the lazily-projected view over a written tuple.
type TupleReader struct {
	src  []byte
	t    Tuple
	base int
}

// Len returns the number of members in the tuple.
func (r *TupleReader) Len() int { return len(r.t.elems) }

// Get decodes (or sub-projects) the member at index i.
func (r *TupleReader) Get(i int) (any, error) {
	if i < 0 || i >= len(r.t.elems) {
		return nil, newErr(OutOfBounds, "tuple index %d out of range [0,%d)", i, len(r.t.elems))
	}
	return r.t.elems[i].Read(r.src, r.base+r.t.offs[i])
}
