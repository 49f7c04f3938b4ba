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

func TestStaticArrayBitExact(t *testing.T) {
	arr := scs.NewStaticArray(scs.I32(), 3)
	buf := membuf.NewGrowing(0)
	_, err := buf.Initialise(arr.Size())
	require.NoError(t, err)
	require.NoError(t, arr.Write(buf, 0, []int32{1_170_411_248, -1_630_057_274, 838_860_801}))
	require.Equal(t, []byte{
		0xF0, 0x0E, 0xC3, 0x45,
		0xC6, 0x4C, 0xD7, 0x9E,
		0x01, 0x00, 0x00, 0x32,
	}, buf.Span())
}

func TestStaticArrayWrongArity(t *testing.T) {
	arr := scs.NewStaticArray(scs.I32(), 3)
	buf := membuf.NewGrowing(0)
	_, err := buf.Initialise(arr.Size())
	require.NoError(t, err)
	err = arr.Write(buf, 0, []int32{1, 2})
	require.Error(t, err)
}

func TestStaticArrayIndexAndCursor(t *testing.T) {
	arr := scs.NewStaticArray(scs.U16(), 4)
	buf := membuf.NewGrowing(0)
	_, err := buf.Initialise(arr.Size())
	require.NoError(t, err)
	require.NoError(t, arr.Write(buf, 0, []uint16{10, 20, 30, 40}))

	reader, err := arr.Read(buf.Span(), 0)
	require.NoError(t, err)
	require.Equal(t, 4, reader.Len())
	require.Equal(t, uint16(30), reader.Index(2))

	_, err = reader.At(4)
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.OutOfBounds))

	cursor := reader.Cursor()
	var collected []uint16
	for {
		v, ok := cursor.Next()
		if !ok {
			break
		}
		collected = append(collected, v)
	}
	require.Equal(t, []uint16{10, 20, 30, 40}, collected)
}

func TestStaticArrayOfZeroSized(t *testing.T) {
	arr := scs.NewStaticArray(scs.Null(), 5)
	require.Equal(t, 0, arr.Size())
	buf := membuf.NewGrowing(0)
	require.NoError(t, arr.Write(buf, 0, make([]struct{}, 5)))
	require.Len(t, buf.Span(), 0)
}
