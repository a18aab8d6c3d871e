package cbor

import (
	"encoding/binary"
	"math"
)

// AppendHead appends the shortest head encoding major type m with argument u.
// It is the inverse of the validator's header decoding.
func AppendHead(b []byte, m MajorType, u uint64) []byte {
	major := uint8(m)
	switch {
	case u <= addInfoDirect:
		return append(b, makeByte(major, uint8(u)))
	case u <= math.MaxUint8:
		return append(b, makeByte(major, addInfoUint8), uint8(u))
	case u <= math.MaxUint16:
		return binary.BigEndian.AppendUint16(append(b, makeByte(major, addInfoUint16)), uint16(u))
	case u <= math.MaxUint32:
		return binary.BigEndian.AppendUint32(append(b, makeByte(major, addInfoUint32)), uint32(u))
	default:
		return binary.BigEndian.AppendUint64(append(b, makeByte(major, addInfoUint64)), u)
	}
}

// AppendIndefinite appends an indefinite-length header (0x5f, 0x7f, 0x9f or 0xbf
// for the major types that have one). Close the item with AppendBreak.
func AppendIndefinite(b []byte, m MajorType) []byte {
	return append(b, makeByte(uint8(m), addInfoIndefinite))
}

// AppendBreak appends the "break" stop code (0xff)
func AppendBreak(b []byte) []byte {
	return append(b, breakByte)
}

// AppendMapHeader appends a map header with the given number of pairs
func AppendMapHeader(b []byte, sz uint64) []byte {
	return AppendHead(b, MajorMap, sz)
}

// AppendArrayHeader appends an array header with the given size
func AppendArrayHeader(b []byte, sz uint64) []byte {
	return AppendHead(b, MajorArray, sz)
}

// AppendInt64 appends an int64 using canonical CBOR integer encoding.
func AppendInt64(b []byte, i int64) []byte {
	if i < 0 {
		// CBOR encodes negative integers as -1-n with unsigned argument n.
		return AppendHead(b, MajorNegInt, uint64(-1-i))
	}
	return AppendHead(b, MajorUint, uint64(i))
}

// AppendUint64 appends a uint64
func AppendUint64(b []byte, u uint64) []byte {
	return AppendHead(b, MajorUint, u)
}

// AppendBytes appends a byte string
func AppendBytes(b []byte, data []byte) []byte {
	b = AppendHead(b, MajorBytes, uint64(len(data)))
	return append(b, data...)
}

// AppendString appends a text string
func AppendString(b []byte, s string) []byte {
	b = AppendHead(b, MajorText, uint64(len(s)))
	return append(b, s...)
}

// AppendTag appends a semantic tag number; exactly one item must follow.
func AppendTag(b []byte, tag uint64) []byte {
	return AppendHead(b, MajorTag, tag)
}

// AppendBool appends true (0xf5) or false (0xf4).
func AppendBool(b []byte, val bool) []byte {
	v := uint8(simpleFalse)
	if val {
		v = simpleTrue
	}
	return AppendSimpleValue(b, v)
}

// AppendNil appends null (0xf6).
func AppendNil(b []byte) []byte {
	return AppendSimpleValue(b, simpleNull)
}

// AppendUndefined appends undefined (0xf7).
func AppendUndefined(b []byte) []byte {
	return AppendSimpleValue(b, simpleUndefined)
}

// AppendSimpleValue appends simple value val: directly for 0..23 and as
// 0xf8 val otherwise. For 24..31 the result is not well-formed.
func AppendSimpleValue(b []byte, val uint8) []byte {
	if val <= addInfoDirect {
		return append(b, makeByte(majorTypeSimple, val))
	}
	return append(b, makeByte(majorTypeSimple, addInfoUint8), val)
}

// AppendFloat16Bits appends a half-precision float given its IEEE 754 bits.
func AppendFloat16Bits(b []byte, h uint16) []byte {
	return binary.BigEndian.AppendUint16(append(b, makeByte(majorTypeSimple, simpleFloat16)), h)
}

// AppendFloat32 appends f as a single-precision float (0xfa).
func AppendFloat32(b []byte, f float32) []byte {
	return binary.BigEndian.AppendUint32(append(b, makeByte(majorTypeSimple, simpleFloat32)), math.Float32bits(f))
}

// AppendFloat64 appends f as a double-precision float (0xfb). No shorter
// form is chosen even when it would be exact.
func AppendFloat64(b []byte, f float64) []byte {
	return binary.BigEndian.AppendUint64(append(b, makeByte(majorTypeSimple, simpleFloat64)), math.Float64bits(f))
}
