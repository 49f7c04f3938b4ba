// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs_test

import (
	"testing"

	"github.com/solidcoredata/scs"
	"github.com/solidcoredata/scs/membuf"
	"github.com/stretchr/testify/require"
)

func TestOptionalEmpty(t *testing.T) {
	codec := scs.Optional(scs.I16())
	buf := membuf.NewGrowing(0)
	var v *int16
	require.NoError(t, scs.Serialise(codec, v, buf))
	require.Equal(t, []byte{0x00, 0x00}, buf.Span())

	reader, err := scs.Deserialise(codec, buf.Span())
	require.NoError(t, err)
	require.False(t, reader.HasValue())
	_, err = reader.Value()
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.NoValue))
}

func TestOptionalBitExactPresent(t *testing.T) {
	// fixed_size(optional<i16>) == 2, so a present value's fixed part
	// starts immediately after it at absolute position 2, encoded as
	// value_pos + 1 == 3, per spec.md 3.2 and its worked example.
	codec := scs.Optional(scs.I16())
	buf := membuf.NewGrowing(0)
	v := int16(-8962)
	require.NoError(t, scs.Serialise(codec, &v, buf))
	require.Equal(t, []byte{0x03, 0x00, 0xFE, 0xDC}, buf.Span())

	reader, err := scs.Deserialise(codec, buf.Span())
	require.NoError(t, err)
	require.True(t, reader.HasValue())
	got, err := reader.Value()
	require.NoError(t, err)
	require.Equal(t, int16(-8962), got)
}

func TestOptionalOfOptionalPresent(t *testing.T) {
	// Nested optionals apply the same value_pos+1 formula at each
	// level: the outer 2-byte slot reserves room for the inner
	// optional's 2-byte slot, which in turn reserves room for the i32.
	inner := scs.Optional(scs.I32())
	outer := scs.Optional[*int32](inner)
	buf := membuf.NewGrowing(0)
	v := int32(-1_912_447_038)
	pv := &v
	require.NoError(t, scs.Serialise(outer, &pv, buf))

	span := buf.Span()
	require.Len(t, span, 8)
	require.Equal(t, []byte{0xC2, 0x5F, 0x02, 0x8E}, span[4:8])

	reader, err := scs.Deserialise(outer, span)
	require.NoError(t, err)
	require.True(t, reader.HasValue())
	innerReader, err := reader.Value()
	require.NoError(t, err)
	require.True(t, innerReader.HasValue())
	got, err := innerReader.Value()
	require.NoError(t, err)
	require.Equal(t, int32(-1_912_447_038), got)
}

func TestOptionalObjectTooLargeOnWrite(t *testing.T) {
	// A value_pos that would not fit a u16 once incremented fails with
	// ObjectTooLarge rather than silently truncating.
	codec := scs.Optional(scs.Byte())
	buf := membuf.NewGrowing(0)
	_, err := buf.Initialise(2)
	require.NoError(t, err)
	// Pad the buffer so the reserved byte's position overflows a u16.
	_, err = buf.Extend(65535)
	require.NoError(t, err)
	v := byte(1)
	err = codec.Write(buf, 0, &v)
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.ObjectTooLarge))
}
