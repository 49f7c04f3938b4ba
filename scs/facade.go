// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

// Serialise writes a complete value: it initialises buf to the Codec's
// fixed size and dispatches to the Codec's writer at fixed offset 0.
// Any variable content the value needs is appended to buf's tail by
// the writer itself.
func Serialise[S, T any](codec Codec[S, T], value S, buf Buffer) error {
	if _, err := buf.Initialise(codec.Size); err != nil {
		return err
	}
	return codec.Write(buf, 0, value)
}

// Deserialise validates that bytes is at least the Codec's fixed size
// and returns a reader (or, for a scalar Codec, the decoded value
// itself) anchored at fixed offset 0. The full byte slice, not just
// the fixed prefix, remains reachable for variable-part resolution.
func Deserialise[S, T any](codec Codec[S, T], bytes []byte) (T, error) {
	var zero T
	if len(bytes) < codec.Size {
		return zero, newErr(OutOfBounds, "buffer of length %d is smaller than fixed size %d", len(bytes), codec.Size)
	}
	return codec.Read(bytes, 0)
}
