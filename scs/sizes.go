// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

// sumFixedSizes computes each member's fixed offset and the aggregate's
// total fixed size, in declaration order. tuple, record, and
// static_array all reduce to this same arithmetic; it is the Go
// counterpart of the original's compile-time size-list summation
// (original_source/include/serialpp/record.hpp's fields_fixed_data_size
// and struct.hpp's FieldsFixedDataSize), done here at construction time
// since Go codecs carry their size as a runtime field rather than a
// template constant.
func sumFixedSizes(sizes []int) (offs []int, total int) {
	offs = make([]int, len(sizes))
	for i, s := range sizes {
		offs[i] = total
		total += s
	}
	return offs, total
}
