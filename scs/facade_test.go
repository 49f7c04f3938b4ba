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

func TestDeserialiseFailsOnShortBuffer(t *testing.T) {
	_, err := scs.Deserialise(scs.I64(), []byte{1, 2, 3})
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.OutOfBounds))
}

func TestDeserialiseFailsOnShortCompositeBuffer(t *testing.T) {
	codec := scs.Pair(scs.I32(), scs.U32())
	_, err := scs.Deserialise(codec, []byte{1, 2, 3, 4, 5})
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.OutOfBounds))
}

func TestSerialiseWithFixedBufferPolicy(t *testing.T) {
	codec := scs.I32()
	buf := membuf.NewFixed(4)
	require.NoError(t, scs.Serialise(codec, int32(42), buf))

	got, err := scs.Deserialise(codec, buf.Span())
	require.NoError(t, err)
	require.Equal(t, int32(42), got)
}

func TestSerialiseFixedBufferTooSmallForVariableContent(t *testing.T) {
	codec := scs.DynamicArray(scs.U32())
	buf := membuf.NewFixed(8) // room only for the count+offset header
	src := scs.NewDynamicArraySource[uint32](1, 2, 3)
	err := scs.Serialise(codec, src, buf)
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.CapacityExceeded))
}

func TestTruncatedDynamicArrayElementOutOfBounds(t *testing.T) {
	// A dynamic_array whose element offset resolves past the buffer's
	// end once truncated fails with OutOfBounds rather than reading
	// garbage.
	codec := scs.DynamicArray(scs.U16())
	buf := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(codec, scs.NewDynamicArraySource[uint16](10, 20, 30), buf))

	truncated := buf.Span()[:len(buf.Span())-2]
	reader, err := scs.Deserialise(codec, truncated)
	require.NoError(t, err) // the fixed header itself is still intact
	require.Equal(t, 3, reader.Len())
	_, err = reader.At(2)
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.OutOfBounds))
}
