// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

import "sync/atomic"

// recordDefSeq assigns each RecordDef a unique id at construction, so
// RecordReader.As can check genuine lineage instead of just comparing
// sizes. This is the runtime counterpart of the original's R::bases
// type list (original_source/include/serialpp/record.hpp's
// record_derived_from concept).
var recordDefSeq uint64

// FieldDef names one field of a record: its wire name and its Codec.
// This mirrors the teacher's ts.Col (a named, typed column definition)
// generalized from table columns to record fields.
type FieldDef struct {
	Name  string
	Codec AnyCodec
}

// RecordValue is the source (and decoded-field) representation of a
// record: a named bag of values, the same shape the teacher's
// ts.Writer.Insert takes as `values ...interface{}` but keyed by name
// instead of positional since records are named-field aggregates.
type RecordValue map[string]any

// RecordDef is the compiled layout of a record<...fields...>: field
// fixed offsets, total fixed size, and a name index. Construct one
// with NewRecord, or NewRecord extended via Extend for single
// inheritance. ancestors holds the id of every RecordDef this one was
// (transitively) Extend-ed from, letting RecordReader.As verify actual
// lineage rather than just comparing sizes.
type RecordDef struct {
	fields    []FieldDef
	offs      []int
	size      int
	index     map[string]int
	id        uint64
	ancestors map[uint64]bool
}

// NewRecord builds a RecordDef from an ordered field list. Duplicate
// field names are a definition-time error, per spec.md §4.5.
func NewRecord(fields ...FieldDef) (RecordDef, error) {
	index := make(map[string]int, len(fields))
	sizes := make([]int, len(fields))
	for i, f := range fields {
		if _, dup := index[f.Name]; dup {
			return RecordDef{}, newErr(BadFieldAccess, "duplicate record field name %q", f.Name)
		}
		index[f.Name] = i
		sizes[i] = f.Codec.Size
	}
	offs, size := sumFixedSizes(sizes)
	id := atomic.AddUint64(&recordDefSeq, 1)
	return RecordDef{fields: fields, offs: offs, size: size, index: index, id: id}, nil
}

// Extend implements record single inheritance: the resulting record's
// field list is base.fields followed by own, in that order (spec.md
// §4.5). All names, inherited and own, must remain unique. The derived
// RecordDef records base (and everything base descends from) as an
// ancestor.
func Extend(base RecordDef, own ...FieldDef) (RecordDef, error) {
	all := make([]FieldDef, 0, len(base.fields)+len(own))
	all = append(all, base.fields...)
	all = append(all, own...)
	derived, err := NewRecord(all...)
	if err != nil {
		return RecordDef{}, err
	}
	derived.ancestors = make(map[uint64]bool, len(base.ancestors)+1)
	for id := range base.ancestors {
		derived.ancestors[id] = true
	}
	derived.ancestors[base.id] = true
	return derived, nil
}

// isAncestorOf reports whether d is other itself or one of other's
// Extend-ed ancestors.
func (d RecordDef) isAncestorOf(other RecordDef) bool {
	return d.id == other.id || other.ancestors[d.id]
}

// Size is fixed_size(record<...>): the sum of its fields' fixed sizes.
func (d RecordDef) Size() int { return d.size }

// FieldCount returns the number of fields, inherited and own.
func (d RecordDef) FieldCount() int { return len(d.fields) }

// SetAt sets the value of the field at index i on a source value by
// position, the by-index counterpart to v[name] = value.
func (d RecordDef) SetAt(v RecordValue, i int, value any) error {
	if i < 0 || i >= len(d.fields) {
		return newErr(OutOfBounds, "record field index %d out of range [0,%d)", i, len(d.fields))
	}
	v[d.fields[i].Name] = value
	return nil
}

// Write emits each field's fixed part at its declared offset, in
// declaration order (inherited fields first), then each field's
// variable part in the same order.
func (d RecordDef) Write(buf Buffer, fixedOffset int, v RecordValue) error {
	for i, f := range d.fields {
		fv, ok := v[f.Name]
		if !ok {
			return newErr(BadFieldAccess, "record missing field %q", f.Name)
		}
		if err := f.Codec.Write(buf, fixedOffset+d.offs[i], fv); err != nil {
			return err
		}
	}
	return nil
}

// Read validates the record's fixed region and returns a lazy reader.
func (d RecordDef) Read(src []byte, fixedOffset int) (*RecordReader, error) {
	if err := checkFixedRegion(src, fixedOffset, d.size); err != nil {
		return nil, err
	}
	return &RecordReader{src: src, def: d, base: fixedOffset}, nil
}

// AsCodec exposes this RecordDef through the uniform Codec[S, T] shape
// used by Serialise/Deserialise.
func (d RecordDef) AsCodec() Codec[RecordValue, *RecordReader] {
	return Codec[RecordValue, *RecordReader]{Size: d.size, Write: d.Write, Read: d.Read}
}

// RecordReader is the lazily-projected view over a written record.
type RecordReader struct {
	src  []byte
	def  RecordDef
	base int
}

// Field decodes (or sub-projects) the named field.
func (r *RecordReader) Field(name string) (any, error) {
	i, ok := r.def.index[name]
	if !ok {
		return nil, newErr(OutOfBounds, "record has no field %q", name)
	}
	return r.def.fields[i].Codec.Read(r.src, r.base+r.def.offs[i])
}

// FieldAt decodes the field at position i.
func (r *RecordReader) FieldAt(i int) (any, error) {
	if i < 0 || i >= len(r.def.fields) {
		return nil, newErr(OutOfBounds, "record field index %d out of range [0,%d)", i, len(r.def.fields))
	}
	return r.def.fields[i].Codec.Read(r.src, r.base+r.def.offs[i])
}

// As implements reader widening: a reader for a record R may be viewed
// as a reader for an ancestor record B, because B's fields occupy the
// prefix of R's fixed region at the same offsets (spec.md §4.5). base
// must genuinely be R or one of the records R was Extend-ed from —
// the runtime counterpart of the original's record_derived_from<R, B>
// constraint — or As fails with BadFieldAccess instead of silently
// projecting unrelated fields.
func (r *RecordReader) As(base RecordDef) (*RecordReader, error) {
	if !base.isAncestorOf(r.def) {
		return nil, newErr(BadFieldAccess, "record is not derived from the given ancestor")
	}
	if base.size > r.def.size {
		return nil, newErr(OutOfBounds, "ancestor record of size %d is larger than this record's %d", base.size, r.def.size)
	}
	return &RecordReader{src: r.src, def: base, base: r.base}, nil
}

// RecordSource is a positional builder for a RecordValue, for callers
// who would rather supply field values in declaration order than by
// name. It plays the role the original's plain struct sources do
// (original_source/include/serialpp/struct.hpp): a pure construction
// convenience with no effect on the wire format or on RecordReader.
type RecordSource struct {
	def RecordDef
	v   RecordValue
}

// NewRecordSource starts a positional builder for def.
func NewRecordSource(def RecordDef) *RecordSource {
	return &RecordSource{def: def, v: make(RecordValue, def.FieldCount())}
}

// Set assigns the value of the field at position i and returns the
// builder, so calls can be chained in field declaration order.
func (s *RecordSource) Set(i int, value any) *RecordSource {
	_ = s.def.SetAt(s.v, i, value)
	return s
}

// Value returns the RecordValue built so far, ready to pass to
// RecordDef.Write or a record's Codec.
func (s *RecordSource) Value() RecordValue { return s.v }
