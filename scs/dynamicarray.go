// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

import (
	"encoding/binary"
	"math"
)

// SizeDynamicArray is fixed_size(dynamic_array<T>): a u32 count
// followed by a u32 offset, regardless of T.
const SizeDynamicArray = 8

// Range is the minimal forward-iterable, sized input range a
// dynamic_array<T> source can be built from, per spec.md §4.8's
// "braced list of element sources, or any forward-iterable, sized
// input range". A Range is consumed through this interface, so its
// methods are dispatched dynamically. Pair, StaticArray and
// DynamicArray are otherwise fully generic; Tuple, Record and Variant
// also dispatch dynamically, through the type-erased AnyCodec.
type Range[S any] interface {
	Len() int
	Each(func(S) error) error
}

// DynamicArraySource is the realized, ready-to-write source for a
// dynamic_array<T>: a forward-ordered sequence of element sources.
type DynamicArraySource[S any] struct {
	items []S
}

// NewDynamicArraySource builds a source from a literal list of element
// sources (the "braced list" form of spec.md §4.8).
func NewDynamicArraySource[S any](items ...S) DynamicArraySource[S] {
	return DynamicArraySource[S]{items: items}
}

// FromRange builds a source by draining any Range, the type-erased
// input-range form of spec.md §4.8. A Go slice already has minimal,
// GC-friendly overhead for small element counts, so unlike the
// original's inline small-object storage (a pure C++ allocation-avoidance
// trick, explicitly non-observable in the wire format per spec.md §4.8),
// this implementation always materialises into a slice; see DESIGN.md.
func FromRange[S any](r Range[S]) (DynamicArraySource[S], error) {
	items := make([]S, 0, r.Len())
	err := r.Each(func(v S) error {
		items = append(items, v)
		return nil
	})
	if err != nil {
		return DynamicArraySource[S]{}, err
	}
	return DynamicArraySource[S]{items: items}, nil
}

// Len returns the number of elements the source holds.
func (s DynamicArraySource[S]) Len() int { return len(s.items) }

// DynamicArrayReader is the lazily-projected view over a written
// dynamic_array<T>.
type DynamicArrayReader[T any] struct {
	src      []byte
	read     readFunc[T]
	count    uint32
	offset   int
	elemSize int
}

// Len returns the element count.
func (r *DynamicArrayReader[T]) Len() int { return int(r.count) }

// At is the checked accessor.
func (r *DynamicArrayReader[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || uint32(i) >= r.count {
		return zero, newErr(OutOfBounds, "dynamic_array index %d out of range [0,%d)", i, r.count)
	}
	pos := r.offset + i*r.elemSize
	if err := checkFixedRegion(r.src, pos, r.elemSize); err != nil {
		return zero, err
	}
	return r.read(r.src, pos)
}

// Index is the unchecked accessor named in spec.md §4.8 ("[]"); it
// panics on an out-of-range index or decode failure.
func (r *DynamicArrayReader[T]) Index(i int) T {
	v, err := r.At(i)
	if err != nil {
		panic(err)
	}
	return v
}

// DynamicArrayCursor is a lazy, one-element-at-a-time view, decoding
// only as Next is called.
type DynamicArrayCursor[T any] struct {
	r   *DynamicArrayReader[T]
	idx int
}

// Elements returns a lazy cursor that decodes one element per call to
// Next, in index order. The cursor has no random access; At and Index
// on the reader itself are the indexed accessors.
func (r *DynamicArrayReader[T]) Elements() *DynamicArrayCursor[T] {
	return &DynamicArrayCursor[T]{r: r}
}

// Next decodes the next element, or returns (zero, false) once
// exhausted.
func (c *DynamicArrayCursor[T]) Next() (T, bool) {
	var zero T
	if c.idx >= c.r.Len() {
		return zero, false
	}
	v, err := c.r.At(c.idx)
	c.idx++
	if err != nil {
		return zero, false
	}
	return v, true
}

// DynamicArray builds the Codec for dynamic_array<T>. Per spec.md
// §4.8's write protocol: the elements' fixed parts are reserved as one
// contiguous region at the buffer's current tail before any element is
// written (so an element's own variable content, appended afterward,
// cannot displace a sibling's already-reserved fixed slot), then the
// count and starting offset are recorded in the dynamic_array's own
// fixed slot (offset 0 when count is 0).
func DynamicArray[S, T any](elem Codec[S, T]) Codec[DynamicArraySource[S], *DynamicArrayReader[T]] {
	return Codec[DynamicArraySource[S], *DynamicArrayReader[T]]{
		Size: SizeDynamicArray,
		Write: func(buf Buffer, fixedOffset int, v DynamicArraySource[S]) error {
			n := len(v.items)
			if uint64(n) > math.MaxUint32 {
				return newErr(ObjectTooLarge, "dynamic_array has %d elements, exceeds u32", n)
			}
			var varPos int
			if n > 0 {
				pos, err := pushVariableSubobjects(buf, n, elem.Size, func(varStart int) error {
					for i, item := range v.items {
						if err := elem.Write(buf, varStart+i*elem.Size, item); err != nil {
							return err
						}
					}
					return nil
				})
				if err != nil {
					return err
				}
				if uint64(pos) > math.MaxUint32 {
					return newErr(ObjectTooLarge, "dynamic_array offset %d exceeds u32", pos)
				}
				varPos = pos
			}
			return pushFixedSubobject(buf, fixedOffset, SizeDynamicArray, func(dst []byte) error {
				binary.LittleEndian.PutUint32(dst[0:4], uint32(n))
				binary.LittleEndian.PutUint32(dst[4:8], uint32(varPos))
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (*DynamicArrayReader[T], error) {
			if err := checkFixedRegion(src, fixedOffset, SizeDynamicArray); err != nil {
				return nil, err
			}
			count := binary.LittleEndian.Uint32(src[fixedOffset : fixedOffset+4])
			offset := binary.LittleEndian.Uint32(src[fixedOffset+4 : fixedOffset+8])
			return &DynamicArrayReader[T]{src: src, read: elem.Read, count: count, offset: int(offset), elemSize: elem.Size}, nil
		},
	}
}
