// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

import (
	"encoding/binary"
	"math"
)

// Sizes of a variant's fixed region: a u8 tag followed by a u16 offset.
const (
	SizeVariantTag    = 1
	SizeVariantOffset = 2
	SizeVariant       = SizeVariantTag + SizeVariantOffset
)

// VariantValue is the source representation of a variant<T0...Tk-1>:
// the index of the active alternative and its value. A Tag outside
// [0, k) when k > 0 is a programming error (spec.md §4.7) and fails
// serialisation with BadVariantAccess.
type VariantValue struct {
	Tag   int
	Value any
}

// Variant is the Codec builder for variant<T0...Tk-1>.
type Variant struct {
	alts []AnyCodec
}

// NewVariant builds a variant from its alternative codecs, in
// declaration order. At most 255 alternatives are permitted, since the
// tag is a u8 (spec.md §3.3).
func NewVariant(alts ...AnyCodec) (Variant, error) {
	if len(alts) > 255 {
		return Variant{}, newErr(ObjectTooLarge, "variant has %d alternatives, max is 255", len(alts))
	}
	return Variant{alts: alts}, nil
}

// Size is fixed_size(variant<...>) = 3, regardless of k.
func (v Variant) Size() int { return SizeVariant }

// Write emits the tag and offset, followed by the selected
// alternative's fixed and variable parts. With k=0 alternatives the
// variant carries no value: Write emits three zero bytes and Visit on
// read is a no-op.
func (v Variant) Write(buf Buffer, fixedOffset int, val VariantValue) error {
	if len(v.alts) == 0 {
		return pushFixedSubobject(buf, fixedOffset, SizeVariant, func(dst []byte) error {
			for i := range dst {
				dst[i] = 0
			}
			return nil
		})
	}
	if val.Tag < 0 || val.Tag >= len(v.alts) {
		return newErr(BadVariantAccess, "variant source holds invalid alternative %d of %d", val.Tag, len(v.alts))
	}
	alt := v.alts[val.Tag]
	pos, err := pushVariableSubobjects(buf, 1, alt.Size, func(varStart int) error {
		return alt.Write(buf, varStart, val.Value)
	})
	if err != nil {
		return err
	}
	if pos > math.MaxUint16 {
		return newErr(ObjectTooLarge, "variant value position %d exceeds u16", pos)
	}
	return pushFixedSubobject(buf, fixedOffset, SizeVariant, func(dst []byte) error {
		dst[0] = byte(val.Tag)
		binary.LittleEndian.PutUint16(dst[1:3], uint16(pos))
		return nil
	})
}

// Read validates the variant's fixed region, checks the tag against
// the alternative count (failing with CorruptTag if it is too large
// for a nonempty variant), and returns a lazy reader.
func (v Variant) Read(src []byte, fixedOffset int) (*VariantReader, error) {
	if err := checkFixedRegion(src, fixedOffset, SizeVariant); err != nil {
		return nil, err
	}
	tag := int(src[fixedOffset])
	off := int(binary.LittleEndian.Uint16(src[fixedOffset+SizeVariantTag : fixedOffset+SizeVariant]))
	if len(v.alts) > 0 && tag >= len(v.alts) {
		return nil, newErr(CorruptTag, "variant tag %d is not less than alternative count %d", tag, len(v.alts))
	}
	return &VariantReader{src: src, v: v, tag: tag, off: off}, nil
}

// AsCodec exposes this Variant through the uniform Codec[S, T] shape
// used by Serialise/Deserialise.
func (v Variant) AsCodec() Codec[VariantValue, *VariantReader] {
	return Codec[VariantValue, *VariantReader]{Size: SizeVariant, Write: v.Write, Read: v.Read}
}

// VariantReader is the lazily-projected view over a written variant.
type VariantReader struct {
	src []byte
	v   Variant
	tag int
	off int
}

// Tag returns the active alternative's index.
func (r *VariantReader) Tag() int { return r.tag }

// Get succeeds iff the variant's tag equals i, returning a sub-reader
// (or decoded value, for a scalar alternative) anchored at the
// variant's offset; otherwise it fails with BadVariantAccess.
func (r *VariantReader) Get(i int) (any, error) {
	if len(r.v.alts) == 0 || i != r.tag {
		return nil, newErr(BadVariantAccess, "variant tag is %d, requested %d", r.tag, i)
	}
	return r.v.alts[i].Read(r.src, r.off)
}

// Visit dispatches to f with the active tag, its decoded value, and
// any decode error. With k=0 alternatives it is a no-op.
func (r *VariantReader) Visit(f func(tag int, value any, err error)) {
	if len(r.v.alts) == 0 {
		return
	}
	v, err := r.v.alts[r.tag].Read(r.src, r.off)
	f(r.tag, v, err)
}
