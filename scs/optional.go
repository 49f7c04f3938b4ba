// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

import (
	"encoding/binary"
	"math"
)

// SizeOptional is fixed_size(optional<T>): a single u16 offset slot,
// regardless of T.
const SizeOptional = 2

// OptionalReader is the lazily-projected view over a written
// optional<T>.
type OptionalReader[T any] struct {
	src  []byte
	read readFunc[T]
	raw  uint16
}

// HasValue reports whether the optional is present.
func (r *OptionalReader[T]) HasValue() bool { return r.raw != 0 }

// Value decodes the held value, or fails with NoValue if the optional
// is empty.
func (r *OptionalReader[T]) Value() (T, error) {
	var zero T
	if r.raw == 0 {
		return zero, newErr(NoValue, "optional has no value")
	}
	pos := int(r.raw) - 1
	return r.read(r.src, pos)
}

// Optional builds the Codec for optional<T>. An empty value writes a
// zero u16; a present value reserves fixed_size(T) bytes at the
// buffer's tail, writes value_position+1 into the fixed slot (failing
// with ObjectTooLarge if that does not fit a u16), and then emits the
// value's fixed and variable parts.
func Optional[S, T any](inner Codec[S, T]) Codec[*S, *OptionalReader[T]] {
	return Codec[*S, *OptionalReader[T]]{
		Size: SizeOptional,
		Write: func(buf Buffer, fixedOffset int, v *S) error {
			if v == nil {
				return pushFixedSubobject(buf, fixedOffset, SizeOptional, func(dst []byte) error {
					binary.LittleEndian.PutUint16(dst, 0)
					return nil
				})
			}
			pos, err := pushVariableSubobjects(buf, 1, inner.Size, func(varStart int) error {
				return inner.Write(buf, varStart, *v)
			})
			if err != nil {
				return err
			}
			if pos+1 > math.MaxUint16 {
				return newErr(ObjectTooLarge, "optional value position %d+1 exceeds u16", pos)
			}
			return pushFixedSubobject(buf, fixedOffset, SizeOptional, func(dst []byte) error {
				binary.LittleEndian.PutUint16(dst, uint16(pos+1))
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (*OptionalReader[T], error) {
			if err := checkFixedRegion(src, fixedOffset, SizeOptional); err != nil {
				return nil, err
			}
			raw := binary.LittleEndian.Uint16(src[fixedOffset : fixedOffset+SizeOptional])
			return &OptionalReader[T]{src: src, read: inner.Read, raw: raw}, nil
		},
	}
}
