package cbor

//go:generate go run ../tablegen -o initial_byte_table.go

// InitialByteRange is one row of the RFC 8949 Appendix B jump table:
// the initial bytes First..Last (inclusive) share Description.
type InitialByteRange struct {
	First       byte
	Last        byte
	Description string
}

// DescribeInitialByte returns the RFC 8949 Appendix B meaning of an initial
// byte, e.g. "array (0x00..0x17 data items follow)" for 0x83. Bytes that the
// table does not list describe as not well-formed.
func DescribeInitialByte(b byte) string {
	return describeInitialByte(b)
}

// InitialByteTable returns a copy of the Appendix B rows in ascending order.
func InitialByteTable() []InitialByteRange {
	out := make([]InitialByteRange, len(initialByteTable))
	copy(out, initialByteTable)
	return out
}
