// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

// StaticArray is the Codec builder for static_array<T,N>: a
// homogeneous, fixed-arity combinator expressible with plain generics
// (unlike tuple/record/variant, which need type erasure).
type StaticArray[S, T any] struct {
	elem Codec[S, T]
	n    int
}

// NewStaticArray builds a static_array<T,N> Codec from an element
// Codec and a length N. N=0 and a zero-sized element type are both
// permitted and produce no bytes, per spec.md's zero-sized-types note.
func NewStaticArray[S, T any](elem Codec[S, T], n int) StaticArray[S, T] {
	return StaticArray[S, T]{elem: elem, n: n}
}

// Size is fixed_size(static_array<T,N)) = N * fixed_size(T).
func (a StaticArray[S, T]) Size() int { return a.elem.Size * a.n }

// Write emits the N fixed parts in index order, then their variable
// parts in the same order (each element's Write call appends its own
// variable content to the buffer's tail as it is processed).
func (a StaticArray[S, T]) Write(buf Buffer, fixedOffset int, values []S) error {
	if len(values) != a.n {
		return newErr(BadValue, "static_array expects %d elements, got %d", a.n, len(values))
	}
	for i, v := range values {
		if err := a.elem.Write(buf, fixedOffset+i*a.elem.Size, v); err != nil {
			return err
		}
	}
	return nil
}

// Read validates the array's fixed region and returns a lazy reader.
func (a StaticArray[S, T]) Read(src []byte, fixedOffset int) (*StaticArrayReader[T], error) {
	size := a.Size()
	if err := checkFixedRegion(src, fixedOffset, size); err != nil {
		return nil, err
	}
	return &StaticArrayReader[T]{src: src, read: a.elem.Read, base: fixedOffset, elemSize: a.elem.Size, n: a.n}, nil
}

// AsCodec exposes this StaticArray through the uniform Codec[S, T]
// shape used by Serialise/Deserialise.
func (a StaticArray[S, T]) AsCodec() Codec[[]S, *StaticArrayReader[T]] {
	return Codec[[]S, *StaticArrayReader[T]]{
		Size:  a.Size(),
		Write: a.Write,
		Read:  a.Read,
	}
}

// StaticArrayReader is the lazily-projected view over a written
// static_array<T,N>.
type StaticArrayReader[T any] struct {
	src      []byte
	read     readFunc[T]
	base     int
	elemSize int
	n        int
}

// Len returns N.
func (r *StaticArrayReader[T]) Len() int { return r.n }

// At is the checked accessor: an out-of-range index fails with
// OutOfBounds instead of panicking.
func (r *StaticArrayReader[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= r.n {
		return zero, newErr(OutOfBounds, "static_array index %d out of range [0,%d)", i, r.n)
	}
	return r.read(r.src, r.base+i*r.elemSize)
}

// Index is the unchecked accessor named in spec.md §4.4 ("[]"); it
// panics on an out-of-range index or a decode failure, mirroring the
// precondition-violation-is-a-bug semantics of an unchecked operator.
func (r *StaticArrayReader[T]) Index(i int) T {
	v, err := r.At(i)
	if err != nil {
		panic(err)
	}
	return v
}

// StaticArrayCursor is a lazy, one-element-at-a-time view over a
// StaticArrayReader, decoding only as Next is called.
type StaticArrayCursor[T any] struct {
	r   *StaticArrayReader[T]
	idx int
}

// Cursor returns a lazy element view starting at index 0.
func (r *StaticArrayReader[T]) Cursor() *StaticArrayCursor[T] {
	return &StaticArrayCursor[T]{r: r}
}

// Next decodes the next element, or returns (zero, false) once the
// cursor is exhausted.
func (c *StaticArrayCursor[T]) Next() (T, bool) {
	var zero T
	if c.idx >= c.r.n {
		return zero, false
	}
	v, err := c.r.At(c.idx)
	c.idx++
	if err != nil {
		return zero, false
	}
	return v, true
}
