// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membuf

import "github.com/solidcoredata/scs"

// Fixed is a non-growing scs.Buffer backed by a caller-provided
// capacity. Extend fails with scs.CapacityExceeded once that capacity
// is exhausted, and leaves the buffer's observable state unchanged
// (the strong exception guarantee spec.md §4.1 requires).
type Fixed struct {
	data     []byte
	capacity int
}

// NewFixed returns a Fixed buffer that can never grow past capacity
// bytes.
func NewFixed(capacity int) *Fixed {
	return &Fixed{data: make([]byte, 0, capacity), capacity: capacity}
}

// Initialise sets the logical size to exactly n bytes, failing if n
// exceeds the buffer's capacity.
func (f *Fixed) Initialise(n int) ([]byte, error) {
	if n > f.capacity {
		return nil, scs.NewCapacityExceededError(n, f.capacity)
	}
	f.data = f.data[:n]
	return f.data, nil
}

// Extend grows the logical size by k bytes, failing without mutating
// state if that would exceed the buffer's capacity.
func (f *Fixed) Extend(k int) ([]byte, error) {
	newLen := len(f.data) + k
	if newLen > f.capacity {
		return nil, scs.NewCapacityExceededError(newLen, f.capacity)
	}
	f.data = f.data[:newLen]
	return f.data, nil
}

// Span returns the current mutable view.
func (f *Fixed) Span() []byte { return f.data }
