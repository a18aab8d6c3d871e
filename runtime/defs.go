// This package checks that bytes are well-formed CBOR (RFC 8949) without decoding them.
//
// The validator walks exactly one data item, consuming the bytes that belong to it and
// nothing more. It never interprets values and never builds an in-memory model, so it can
// sit in front of a full decoder as a gate for untrusted input.
//
// This package defines three "families" of functions:
//   - ValidateXxxx() checks an in-memory []byte and returns the remaining bytes.
//   - (*Validator).Validate() checks one item from an arbitrary Source.
//   - (*StreamValidator).Next() checks consecutive items from an io.Reader.
//
// Every failure is a *MalformedError that unwraps to one of the package sentinels
// (ErrTruncated, ErrReserved, ...) and records the byte offset where it was detected.
package cbor

const (
	// DefaultMaxDepth is the nesting limit used when Options.MaxDepth is zero.
	// It bounds the call depth of the validator on adversarial input.
	DefaultMaxDepth = 100000
)

// CBOR major types (3 bits)
const (
	majorTypeUint   = 0 // unsigned integer
	majorTypeNegInt = 1 // negative integer
	majorTypeBytes  = 2 // byte string
	majorTypeText   = 3 // text string (UTF-8)
	majorTypeArray  = 4 // array
	majorTypeMap    = 5 // map
	majorTypeTag    = 6 // semantic tag
	majorTypeSimple = 7 // float, simple values, break
)

// Additional info values (5 bits)
const (
	// 0-23: literal value
	addInfoDirect     = 23 // max direct value
	addInfoUint8      = 24 // 1-byte uint8 follows
	addInfoUint16     = 25 // 2-byte uint16 follows
	addInfoUint32     = 26 // 4-byte uint32 follows
	addInfoUint64     = 27 // 8-byte uint64 follows
	addInfoIndefinite = 31 // indefinite length (for bytes, text, array, map)
)

// Simple values in major type 7
const (
	simpleFalse     = 20
	simpleTrue      = 21
	simpleNull      = 22
	simpleUndefined = 23
	simpleFloat16   = 25
	simpleFloat32   = 26
	simpleFloat64   = 27
	simpleBreak     = 31

	// simpleMinExtended is the smallest simple value that may use the
	// one-byte extended form (0xf8 xx).
	simpleMinExtended = 32
)

// breakByte is the "break" stop code closing indefinite-length items.
const breakByte = byte(majorTypeSimple<<5 | simpleBreak)

// makeByte creates a CBOR initial byte from major type and additional info
func makeByte(majorType, addInfo uint8) byte {
	return byte((majorType << 5) | addInfo)
}

// getMajorType extracts the major type from a CBOR initial byte
func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

// getAddInfo extracts the additional info from a CBOR initial byte
func getAddInfo(b byte) uint8 {
	return b & 0x1f
}

// isReservedAddInfo reports whether add is one of the values 28, 29, 30
// that are not well-formed in any context.
func isReservedAddInfo(add uint8) bool {
	return add >= 28 && add <= 30
}

// MajorType is the 3-bit type field of a CBOR initial byte.
type MajorType uint8

// CBOR major types
const (
	MajorUint   MajorType = majorTypeUint
	MajorNegInt MajorType = majorTypeNegInt
	MajorBytes  MajorType = majorTypeBytes
	MajorText   MajorType = majorTypeText
	MajorArray  MajorType = majorTypeArray
	MajorMap    MajorType = majorTypeMap
	MajorTag    MajorType = majorTypeTag
	MajorSimple MajorType = majorTypeSimple
)

// String implements fmt.Stringer
func (m MajorType) String() string {
	switch m {
	case MajorUint:
		return "uint"
	case MajorNegInt:
		return "negint"
	case MajorBytes:
		return "bytes"
	case MajorText:
		return "text"
	case MajorArray:
		return "array"
	case MajorMap:
		return "map"
	case MajorTag:
		return "tag"
	case MajorSimple:
		return "simple"
	default:
		return "<invalid>"
	}
}

// Item describes one well-formed data item.
type Item struct {
	Major      MajorType // major type of the item's initial byte
	Indefinite bool      // the item used indefinite-length encoding
	Size       int64     // bytes consumed, header and content included
}

// String returns e.g. "array" or "indefinite bytes".
func (it Item) String() string {
	if it.Indefinite {
		return "indefinite " + it.Major.String()
	}
	return it.Major.String()
}
