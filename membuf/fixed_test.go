// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package membuf

import (
	"testing"

	"github.com/solidcoredata/scs"
	"github.com/stretchr/testify/require"
)

func TestFixedInitialiseWithinCapacity(t *testing.T) {
	f := NewFixed(8)
	span, err := f.Initialise(8)
	require.NoError(t, err)
	require.Len(t, span, 8)
}

func TestFixedInitialiseExceedsCapacity(t *testing.T) {
	f := NewFixed(4)
	_, err := f.Initialise(5)
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.CapacityExceeded))
}

func TestFixedExtendExceedsCapacity(t *testing.T) {
	f := NewFixed(4)
	_, err := f.Initialise(4)
	require.NoError(t, err)

	_, err = f.Extend(1)
	require.Error(t, err)
	require.True(t, scs.Is(err, scs.CapacityExceeded))
	require.Len(t, f.Span(), 4, "a failed Extend must not change the buffer's observable state")
}
