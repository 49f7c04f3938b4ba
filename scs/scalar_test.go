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

func TestScalarBitExactI64(t *testing.T) {
	buf := membuf.NewGrowing(0)
	err := scs.Serialise(scs.I64(), int64(-567865433565765), buf)
	require.NoError(t, err)
	require.Equal(t, []byte{0xBB, 0x55, 0x8D, 0x86, 0x87, 0xFB, 0xFD, 0xFF}, buf.Span())

	got, err := scs.Deserialise(scs.I64(), buf.Span())
	require.NoError(t, err)
	require.Equal(t, int64(-567865433565765), got)
}

func TestScalarBitExactU32(t *testing.T) {
	buf := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(scs.U32(), uint32(43_834_534), buf))
	require.Equal(t, []byte{0xA6, 0xDC, 0x9C, 0x02}, buf.Span())
}

func TestScalarBoolAndByte(t *testing.T) {
	buf := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(scs.Bool(), true, buf))
	require.Equal(t, []byte{0x01}, buf.Span())

	buf2 := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(scs.Bool(), false, buf2))
	require.Equal(t, []byte{0x00}, buf2.Span())

	buf3 := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(scs.Byte(), byte(0x7F), buf3))
	got, err := scs.Deserialise(scs.Byte(), buf3.Span())
	require.NoError(t, err)
	require.Equal(t, byte(0x7F), got)
}

func TestScalarFloatRoundTrip(t *testing.T) {
	buf := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(scs.F64(), 3.1415926535, buf))
	got, err := scs.Deserialise(scs.F64(), buf.Span())
	require.NoError(t, err)
	require.InDelta(t, 3.1415926535, got, 1e-12)

	buf32 := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(scs.F32(), float32(-2.5), buf32))
	got32, err := scs.Deserialise(scs.F32(), buf32.Span())
	require.NoError(t, err)
	require.Equal(t, float32(-2.5), got32)
}

func TestScalarNullWritesNoBytes(t *testing.T) {
	buf := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(scs.Null(), struct{}{}, buf))
	require.Len(t, buf.Span(), 0)
}

func TestScalarBoundsSafety(t *testing.T) {
	_, err := scs.Deserialise(scs.I32(), []byte{0x01, 0x02})
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.OutOfBounds))
}

func TestScalarDeterministicBytes(t *testing.T) {
	buf1 := membuf.NewGrowing(0)
	buf2 := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(scs.I64(), int64(123456789), buf1))
	require.NoError(t, scs.Serialise(scs.I64(), int64(123456789), buf2))
	require.Equal(t, buf1.Span(), buf2.Span())
}
