// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scs implements a statically-typed binary serialization scheme.
//
// For every supported type the package defines a Codec: a deterministic
// byte layout, a writer that produces those bytes from an in-memory
// value, and a reader that yields a lazily-projected view over a byte
// buffer without a full decode step.
//
// The type grammar is closed and compositional: null, scalars, Pair,
// Tuple, StaticArray, Optional, Variant, DynamicArray and Record. Any
// legal composition of these is itself serializable, and the layout of
// a composite is a pure function of the layouts of its parts.
//
// Every serialized value splits into a fixed-size portion, whose length
// is known statically from the Codec, and an appended variable-size
// portion sized at write time. Variable-size and optional subobjects
// are placed after their parents without moving them and are addressed
// from the fixed portion by an offset measured from the start of the
// buffer.
package scs
