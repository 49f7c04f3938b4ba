// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package membuf provides the two concrete scs.Buffer policies spec.md
// §4.1 calls for: a Growing buffer that doubles geometrically, and a
// Fixed buffer with a caller-provided capacity that refuses to grow
// past it. Neither is part of the serialization core; both are
// pluggable implementations of its buffer contract.
package membuf
