// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

// Codec is the per-type descriptor the rest of this package composes:
// a fixed size, a function that writes a source value S's fixed (and,
// recursively, variable) bytes, and a function that reads a value back
// out of a byte span at a fixed offset.
//
// For scalar types S and T coincide: reading a scalar materialises its
// value directly. For composite types T is instead a lazily-projected
// reader (e.g. *PairReader[TA, TB]), matching the auto-deserialise
// policy named in spec.md's glossary: scalars decode to a value,
// composites decode to a sub-reader.
type Codec[S, T any] struct {
	// Size is fixed_size(T) in spec.md's terms: a compile-time constant
	// for any given Codec value, computed once at construction.
	Size int

	// Write emits v's fixed part at fixedOffset (via pushFixedSubobject)
	// and, if S has variable content, appends it to buf's tail (via
	// pushVariableSubobjects).
	Write func(buf Buffer, fixedOffset int, v S) error

	// Read validates and returns the value, or reader, found at
	// fixedOffset in src.
	Read func(src []byte, fixedOffset int) (T, error)
}

// readFunc is the shape combinators close over when they only need to
// resolve a child's value lazily, without needing the child's source
// type or Write function.
type readFunc[T any] func(src []byte, fixedOffset int) (T, error)
