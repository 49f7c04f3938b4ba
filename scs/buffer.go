// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

// Buffer is the contract writers use for storage, independent of
// whether the backing store grows, is preallocated, or is an
// append-only arena. Concrete policies (see package membuf) are
// pluggable and are not part of the layout itself.
type Buffer interface {
	// Initialise sets the logical size to exactly n bytes and returns a
	// mutable span of that length. The contents of newly exposed bytes
	// are unspecified.
	Initialise(n int) ([]byte, error)

	// Extend grows the logical size by k bytes, preserving existing
	// content, and returns the new mutable span. Implementations may
	// reallocate; callers must not cache a span across a call to Extend.
	Extend(k int) ([]byte, error)

	// Span returns the current mutable view of the buffer.
	Span() []byte
}
