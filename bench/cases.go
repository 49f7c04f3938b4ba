// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bench

import (
	"github.com/solidcoredata/scs"
)

// Case is a single registered benchmark: a name, a set of tags a -tag
// flag can filter on, and a Run function that generates one random
// value and serialises it into buf. Run returns the number of bytes
// the serialised value occupied; it does not deserialise the value.
//
// This is the Go shape of the original's tagging.hpp: there, a
// benchmark case is a type paired with a random_source_generator
// specialisation and a list of string tags; here it collapses to one
// closure per case, since Go has no template specialisation to
// dispatch on.
type Case struct {
	Name string
	Tags []string
	Run  func(rnd *Random, buf scs.Buffer) (int, error)
}

// HasTag reports whether c carries the given tag.
func (c Case) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

var (
	i64Codec    = scs.I64()
	u32Codec    = scs.U32()
	pairCodec   = scs.Pair(scs.I32(), scs.U16())
	optCodec    = scs.Optional(scs.I32())
	dynU32Codec = scs.DynamicArray(scs.U32())
)

var recordDef = mustRecord(scs.NewRecord(
	scs.FieldDef{Name: "id", Codec: scs.Erase(scs.U32())},
	scs.FieldDef{Name: "flag", Codec: scs.Erase(scs.Bool())},
	scs.FieldDef{Name: "value", Codec: scs.Erase(scs.I64())},
))

func mustRecord(d scs.RecordDef, err error) scs.RecordDef {
	if err != nil {
		panic(err)
	}
	return d
}

var variantDef = mustVariant(scs.NewVariant(
	scs.Erase(scs.U32()),
	scs.Erase(scs.U8()),
	scs.Erase(scs.I64()),
))

func mustVariant(v scs.Variant, err error) scs.Variant {
	if err != nil {
		panic(err)
	}
	return v
}

// DefaultCases is the built-in benchmark suite: two bare scalars (i64
// and u32), a pair, an optional, a dynamic_array, a record, and a
// variant.
func DefaultCases() []Case {
	return []Case{
		{
			Name: "scalar/i64",
			Tags: []string{"scalar", "fixed"},
			Run: func(rnd *Random, buf scs.Buffer) (int, error) {
				v := rnd.I64()
				if err := scs.Serialise(i64Codec, v, buf); err != nil {
					return 0, err
				}
				return len(buf.Span()), nil
			},
		},
		{
			Name: "scalar/u32",
			Tags: []string{"scalar", "fixed"},
			Run: func(rnd *Random, buf scs.Buffer) (int, error) {
				v := rnd.U32()
				if err := scs.Serialise(u32Codec, v, buf); err != nil {
					return 0, err
				}
				return len(buf.Span()), nil
			},
		},
		{
			Name: "pair/i32-u16",
			Tags: []string{"aggregate", "fixed"},
			Run: func(rnd *Random, buf scs.Buffer) (int, error) {
				v := scs.PairSource[int32, uint16]{First: rnd.I32(), Second: rnd.U16()}
				if err := scs.Serialise(pairCodec, v, buf); err != nil {
					return 0, err
				}
				return len(buf.Span()), nil
			},
		},
		{
			Name: "optional/i32",
			Tags: []string{"optional", "variable"},
			Run: func(rnd *Random, buf scs.Buffer) (int, error) {
				var v *int32
				if rnd.Bool() {
					x := rnd.I32()
					v = &x
				}
				if err := scs.Serialise(optCodec, v, buf); err != nil {
					return 0, err
				}
				return len(buf.Span()), nil
			},
		},
		{
			Name: "dynamic_array/u32",
			Tags: []string{"dynamic_array", "variable"},
			Run: func(rnd *Random, buf scs.Buffer) (int, error) {
				n := rnd.IntN(32)
				items := make([]uint32, n)
				for i := range items {
					items[i] = rnd.U32()
				}
				v := scs.NewDynamicArraySource(items...)
				if err := scs.Serialise(dynU32Codec, v, buf); err != nil {
					return 0, err
				}
				return len(buf.Span()), nil
			},
		},
		{
			Name: "record/mixed",
			Tags: []string{"record", "fixed"},
			Run: func(rnd *Random, buf scs.Buffer) (int, error) {
				v := scs.NewRecordSource(recordDef).
					Set(0, rnd.U32()).
					Set(1, rnd.Bool()).
					Set(2, rnd.I64()).
					Value()
				if err := scs.Serialise(recordDef.AsCodec(), v, buf); err != nil {
					return 0, err
				}
				return len(buf.Span()), nil
			},
		},
		{
			Name: "variant/u32-u8-i64",
			Tags: []string{"variant", "variable"},
			Run: func(rnd *Random, buf scs.Buffer) (int, error) {
				tag := rnd.IntN(3)
				var value any
				switch tag {
				case 0:
					value = rnd.U32()
				case 1:
					value = byte(rnd.Byte())
				case 2:
					value = rnd.I64()
				}
				v := scs.VariantValue{Tag: tag, Value: value}
				if err := scs.Serialise(variantDef.AsCodec(), v, buf); err != nil {
					return 0, err
				}
				return len(buf.Span()), nil
			},
		},
	}
}
