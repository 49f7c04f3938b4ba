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

func TestTupleRoundTrip(t *testing.T) {
	tup := scs.NewTuple(scs.Erase(scs.I32()), scs.Erase(scs.Bool()), scs.Erase(scs.U16()))
	buf := membuf.NewGrowing(0)
	_, err := buf.Initialise(tup.Size())
	require.NoError(t, err)
	require.NoError(t, tup.Write(buf, 0, int32(-42), true, uint16(999)))

	reader, err := tup.Read(buf.Span(), 0)
	require.NoError(t, err)
	require.Equal(t, 3, reader.Len())

	v0, err := reader.Get(0)
	require.NoError(t, err)
	require.Equal(t, int32(-42), v0)

	v1, err := reader.Get(1)
	require.NoError(t, err)
	require.Equal(t, true, v1)

	v2, err := reader.Get(2)
	require.NoError(t, err)
	require.Equal(t, uint16(999), v2)

	_, err = reader.Get(3)
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.OutOfBounds))
}

func TestTupleWithVariableMember(t *testing.T) {
	tup := scs.NewTuple(scs.Erase(scs.U8()), scs.Erase(scs.Optional(scs.I32())))
	buf := membuf.NewGrowing(0)
	_, err := buf.Initialise(tup.Size())
	require.NoError(t, err)
	var v int32 = 77
	require.NoError(t, tup.Write(buf, 0, uint8(9), &v))

	reader, err := tup.Read(buf.Span(), 0)
	require.NoError(t, err)
	first, err := reader.Get(0)
	require.NoError(t, err)
	require.Equal(t, uint8(9), first)

	second, err := reader.Get(1)
	require.NoError(t, err)
	opt, ok := second.(*scs.OptionalReader[int32])
	require.True(t, ok)
	require.True(t, opt.HasValue())
	got, err := opt.Value()
	require.NoError(t, err)
	require.Equal(t, int32(77), got)
}
