// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

// pushFixedSubobject writes size bytes at the absolute offset
// fixedOffset by invoking emit with that destination slice. The buffer
// must already be at least fixedOffset+size bytes long: true for a
// top-level fixed region (reserved by Serialise) and true for an
// element inside a region just reserved by pushVariableSubobjects.
// It never grows the buffer.
func pushFixedSubobject(buf Buffer, fixedOffset, size int, emit func(dst []byte) error) error {
	span := buf.Span()
	if fixedOffset < 0 || fixedOffset+size > len(span) {
		return newErr(CapacityExceeded, "fixed region [%d,%d) exceeds buffer of length %d", fixedOffset, fixedOffset+size, len(span))
	}
	if size == 0 {
		return emit(span[fixedOffset:fixedOffset])
	}
	return emit(span[fixedOffset : fixedOffset+size])
}

// pushVariableSubobjects reserves count*elemSize bytes at the buffer's
// current tail, then invokes emit with the absolute offset of that new
// region. emit is expected to write the count fixed parts into that
// region (via pushFixedSubobject) and may itself grow the buffer
// further, past the reserved region, to hold its elements' own
// variable parts. The variable region of the caller's object is
// therefore [varRegionStart, buf.Span() length after emit returns).
//
// This, together with pushFixedSubobject, is the pattern spec.md names
// two-phase emission: fixed bytes for variable-size subobjects must be
// reserved before recursing into their writers, because the writer may
// extend the tail further while emitting its own variable content.
func pushVariableSubobjects(buf Buffer, count, elemSize int, emit func(varRegionStart int) error) (int, error) {
	varRegionStart := len(buf.Span())
	if count > 0 {
		if _, err := buf.Extend(count * elemSize); err != nil {
			return 0, err
		}
	}
	if err := emit(varRegionStart); err != nil {
		return 0, err
	}
	return varRegionStart, nil
}

// checkFixedRegion validates that [offset, offset+size) lies within src,
// the bounds-checking policy every reader constructor applies (spec.md
// §4.2).
func checkFixedRegion(src []byte, offset, size int) error {
	if offset < 0 || size < 0 || offset+size > len(src) {
		return newErr(OutOfBounds, "fixed region [%d,%d) exceeds buffer of length %d", offset, offset+size, len(src))
	}
	return nil
}
