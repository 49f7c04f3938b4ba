// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scs

import (
	"encoding/binary"
	"math"
)

// Sizes of the primitive scalars, per spec.md §3.1/§3.2. All multi-byte
// integers are little-endian two's complement; floats transfer their
// IEEE-754 bit pattern as-is.
const (
	SizeNull = 0
	SizeI8   = 1
	SizeU8   = 1
	SizeI16  = 2
	SizeU16  = 2
	SizeI32  = 4
	SizeU32  = 4
	SizeI64  = 8
	SizeU64  = 8
	SizeF32  = 4
	SizeF64  = 8
	SizeBool = 1
	SizeByte = 1
)

// Null is the zero-sized scalar: it writes and reads no bytes.
func Null() Codec[struct{}, struct{}] {
	return Codec[struct{}, struct{}]{
		Size: SizeNull,
		Write: func(buf Buffer, fixedOffset int, v struct{}) error {
			return pushFixedSubobject(buf, fixedOffset, SizeNull, func([]byte) error { return nil })
		},
		Read: func(src []byte, fixedOffset int) (struct{}, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeNull); err != nil {
				return struct{}{}, err
			}
			return struct{}{}, nil
		},
	}
}

// Bool writes 0x00/0x01 and reads any nonzero byte as true.
func Bool() Codec[bool, bool] {
	return Codec[bool, bool]{
		Size: SizeBool,
		Write: func(buf Buffer, fixedOffset int, v bool) error {
			return pushFixedSubobject(buf, fixedOffset, SizeBool, func(dst []byte) error {
				if v {
					dst[0] = 0x01
				} else {
					dst[0] = 0x00
				}
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (bool, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeBool); err != nil {
				return false, err
			}
			return src[fixedOffset] != 0, nil
		},
	}
}

// Byte is the raw, untyped single-byte scalar.
func Byte() Codec[byte, byte] {
	return Codec[byte, byte]{
		Size: SizeByte,
		Write: func(buf Buffer, fixedOffset int, v byte) error {
			return pushFixedSubobject(buf, fixedOffset, SizeByte, func(dst []byte) error {
				dst[0] = v
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (byte, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeByte); err != nil {
				return 0, err
			}
			return src[fixedOffset], nil
		},
	}
}

func I8() Codec[int8, int8] {
	return Codec[int8, int8]{
		Size: SizeI8,
		Write: func(buf Buffer, fixedOffset int, v int8) error {
			return pushFixedSubobject(buf, fixedOffset, SizeI8, func(dst []byte) error {
				dst[0] = byte(v)
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (int8, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeI8); err != nil {
				return 0, err
			}
			return int8(src[fixedOffset]), nil
		},
	}
}

func U8() Codec[uint8, uint8] {
	return Codec[uint8, uint8]{
		Size: SizeU8,
		Write: func(buf Buffer, fixedOffset int, v uint8) error {
			return pushFixedSubobject(buf, fixedOffset, SizeU8, func(dst []byte) error {
				dst[0] = v
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (uint8, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeU8); err != nil {
				return 0, err
			}
			return src[fixedOffset], nil
		},
	}
}

func I16() Codec[int16, int16] {
	return Codec[int16, int16]{
		Size: SizeI16,
		Write: func(buf Buffer, fixedOffset int, v int16) error {
			return pushFixedSubobject(buf, fixedOffset, SizeI16, func(dst []byte) error {
				binary.LittleEndian.PutUint16(dst, uint16(v))
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (int16, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeI16); err != nil {
				return 0, err
			}
			return int16(binary.LittleEndian.Uint16(src[fixedOffset:])), nil
		},
	}
}

func U16() Codec[uint16, uint16] {
	return Codec[uint16, uint16]{
		Size: SizeU16,
		Write: func(buf Buffer, fixedOffset int, v uint16) error {
			return pushFixedSubobject(buf, fixedOffset, SizeU16, func(dst []byte) error {
				binary.LittleEndian.PutUint16(dst, v)
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (uint16, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeU16); err != nil {
				return 0, err
			}
			return binary.LittleEndian.Uint16(src[fixedOffset:]), nil
		},
	}
}

func I32() Codec[int32, int32] {
	return Codec[int32, int32]{
		Size: SizeI32,
		Write: func(buf Buffer, fixedOffset int, v int32) error {
			return pushFixedSubobject(buf, fixedOffset, SizeI32, func(dst []byte) error {
				binary.LittleEndian.PutUint32(dst, uint32(v))
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (int32, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeI32); err != nil {
				return 0, err
			}
			return int32(binary.LittleEndian.Uint32(src[fixedOffset:])), nil
		},
	}
}

func U32() Codec[uint32, uint32] {
	return Codec[uint32, uint32]{
		Size: SizeU32,
		Write: func(buf Buffer, fixedOffset int, v uint32) error {
			return pushFixedSubobject(buf, fixedOffset, SizeU32, func(dst []byte) error {
				binary.LittleEndian.PutUint32(dst, v)
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (uint32, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeU32); err != nil {
				return 0, err
			}
			return binary.LittleEndian.Uint32(src[fixedOffset:]), nil
		},
	}
}

func I64() Codec[int64, int64] {
	return Codec[int64, int64]{
		Size: SizeI64,
		Write: func(buf Buffer, fixedOffset int, v int64) error {
			return pushFixedSubobject(buf, fixedOffset, SizeI64, func(dst []byte) error {
				binary.LittleEndian.PutUint64(dst, uint64(v))
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (int64, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeI64); err != nil {
				return 0, err
			}
			return int64(binary.LittleEndian.Uint64(src[fixedOffset:])), nil
		},
	}
}

func U64() Codec[uint64, uint64] {
	return Codec[uint64, uint64]{
		Size: SizeU64,
		Write: func(buf Buffer, fixedOffset int, v uint64) error {
			return pushFixedSubobject(buf, fixedOffset, SizeU64, func(dst []byte) error {
				binary.LittleEndian.PutUint64(dst, v)
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (uint64, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeU64); err != nil {
				return 0, err
			}
			return binary.LittleEndian.Uint64(src[fixedOffset:]), nil
		},
	}
}

func F32() Codec[float32, float32] {
	return Codec[float32, float32]{
		Size: SizeF32,
		Write: func(buf Buffer, fixedOffset int, v float32) error {
			return pushFixedSubobject(buf, fixedOffset, SizeF32, func(dst []byte) error {
				binary.LittleEndian.PutUint32(dst, math.Float32bits(v))
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (float32, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeF32); err != nil {
				return 0, err
			}
			return math.Float32frombits(binary.LittleEndian.Uint32(src[fixedOffset:])), nil
		},
	}
}

func F64() Codec[float64, float64] {
	return Codec[float64, float64]{
		Size: SizeF64,
		Write: func(buf Buffer, fixedOffset int, v float64) error {
			return pushFixedSubobject(buf, fixedOffset, SizeF64, func(dst []byte) error {
				binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
				return nil
			})
		},
		Read: func(src []byte, fixedOffset int) (float64, error) {
			if err := checkFixedRegion(src, fixedOffset, SizeF64); err != nil {
				return 0, err
			}
			return math.Float64frombits(binary.LittleEndian.Uint64(src[fixedOffset:])), nil
		},
	}
}
