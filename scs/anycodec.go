// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

// AnyCodec is a type-erased Codec. Go generics cannot express a
// combinator over an arbitrary-arity, heterogeneously-typed list of
// type parameters (needed for tuple<T1...Tn>, record<...fields...> and
// variant<T0...Tk-1>), so those three combinators hold a slice of
// AnyCodec instead and box values through `any`, the same way the
// teacher's ts.Col/ts.Writer.Insert pass heterogeneous row values
// through `interface{}`. Pair, StaticArray and DynamicArray stay fully
// generic because they are homogeneous or fixed-arity.
type AnyCodec struct {
	Size  int
	Write func(buf Buffer, fixedOffset int, v any) error
	Read  func(src []byte, fixedOffset int) (any, error)
}

// Erase adapts a statically-typed Codec into an AnyCodec for use as a
// tuple/record/variant member.
func Erase[S, T any](c Codec[S, T]) AnyCodec {
	return AnyCodec{
		Size: c.Size,
		Write: func(buf Buffer, fixedOffset int, v any) error {
			sv, ok := v.(S)
			if !ok {
				return newErr(BadValue, "expected value of type %T, got %T", sv, v)
			}
			return c.Write(buf, fixedOffset, sv)
		},
		Read: func(src []byte, fixedOffset int) (any, error) {
			return c.Read(src, fixedOffset)
		},
	}
}

// GetAs reads an AnyCodec-typed result and asserts it to T, for callers
// that know the static type of a tuple/record/variant member.
func GetAs[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, newErr(BadValue, "expected value of type %T, got %T", zero, v)
	}
	return tv, nil
}
