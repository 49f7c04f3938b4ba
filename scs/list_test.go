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

func TestListProducesIdenticalWireFormatToBracedSource(t *testing.T) {
	codec := scs.DynamicArray(scs.U32())

	var l scs.List[uint32]
	l.Append(1)
	l.Append(2)
	l.Append(3)
	require.Equal(t, 3, l.Len())

	listBuf := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(codec, l.Source(), listBuf))

	bracedBuf := membuf.NewGrowing(0)
	require.NoError(t, scs.Serialise(codec, scs.NewDynamicArraySource[uint32](1, 2, 3), bracedBuf))

	require.Equal(t, bracedBuf.Span(), listBuf.Span())
}

func TestListAppendOrderIsPreserved(t *testing.T) {
	var l scs.List[string]
	l.Append("a")
	l.Append("b")
	l.Append("c")

	var got []string
	require.NoError(t, l.Each(func(s string) error {
		got = append(got, s)
		return nil
	}))
	require.Equal(t, []string{"a", "b", "c"}, got)
}
