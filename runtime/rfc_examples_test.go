package cbor

import (
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
)

// rfcWellFormed are the encoded examples of RFC 8949 Appendix A.
var rfcWellFormed = []string{
	"00", "01", "0a", "17", "1818", "1819", "1864", "1903e8", "1a000f4240",
	"1b000000e8d4a51000", "1bffffffffffffffff", "c249010000000000000000",
	"3bffffffffffffffff", "c349010000000000000000", "20", "29", "3863", "3903e7",
	"f90000", "f98000", "f93c00", "fb3ff199999999999a", "f93e00", "f97bff",
	"fa47c35000", "fa7f7fffff", "fb7e37e43c8800759c", "f90001", "f90400", "f9c400",
	"fbc010666666666666", "f97c00", "f97e00", "f9fc00", "fa7f800000", "fa7fc00000",
	"faff800000", "fb7ff0000000000000", "fb7ff8000000000000", "fbfff0000000000000",
	"f4", "f5", "f6", "f7", "f0", "f8ff",
	"c074323031332d30332d32315432303a30343a30305a", "c11a514b67b0",
	"c1fb41d452d9ec200000", "d74401020304", "d818456449455446",
	"d82076687474703a2f2f7777772e6578616d706c652e636f6d",
	"40", "4401020304", "60", "6161", "6449455446", "62225c", "62c3bc", "63e6b0b4",
	"64f0908591", "80", "83010203", "8301820203820405",
	"98190102030405060708090a0b0c0d0e0f101112131415161718181819",
	"a0", "a201020304", "a26161016162820203", "826161a161626163",
	"a56161614161626142616361436164614461656145",
	"5f42010243030405ff", "7f657374726561646d696e67ff", "9fff",
	"9f018202039f0405ffff", "9f01820203820405ff", "83018202039f0405ff",
	"83019f0203ff820405",
	"9f0102030405060708090a0b0c0d0e0f101112131415161718181819ff",
	"bf61610161629f0203ffff", "826161bf61626163ff", "bf6346756ef563416d7421ff",
}

func TestRFCExamplesWellFormed(t *testing.T) {
	for _, h := range rfcWellFormed {
		t.Run(h, func(t *testing.T) {
			msg := mustHex(t, h)
			it, err := NewValidator(Options{}).Validate(NewSliceSource(msg))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if it.Size != int64(len(msg)) {
				t.Fatalf("consumed %d bytes, want %d", it.Size, len(msg))
			}
			if uint8(it.Major) != getMajorType(msg[0]) {
				t.Fatalf("major %v, want %d", it.Major, getMajorType(msg[0]))
			}
			if err := fxcbor.Wellformed(msg); err != nil {
				t.Fatalf("reference decoder rejects example: %v", err)
			}
		})
	}
}

// rfcNotWellFormed are the examples of RFC 8949 Appendix F.1.
var rfcNotWellFormed = []struct {
	hex  string
	kind Kind
}{
	// End of input in a head
	{"18", KindTruncated}, {"19", KindTruncated}, {"1a", KindTruncated},
	{"1b", KindTruncated}, {"1901", KindTruncated}, {"1a0102", KindTruncated},
	{"1b01020304050607", KindTruncated}, {"38", KindTruncated}, {"58", KindTruncated},
	{"78", KindTruncated}, {"98", KindTruncated}, {"9a01ff00", KindTruncated},
	{"b8", KindTruncated}, {"d8", KindTruncated}, {"f8", KindTruncated},
	{"f900", KindTruncated}, {"fa0000", KindTruncated}, {"fb000000", KindTruncated},

	// Definite-length strings with short data
	{"41", KindTruncated}, {"61", KindTruncated}, {"5affffffff00", KindTruncated},
	{"5bffffffffffffffff010203", KindTruncated}, {"7affffffff00", KindTruncated},
	{"7b7fffffffffffffff010203", KindTruncated},

	// Definite-length maps and arrays not closed with enough items
	{"81", KindTruncated}, {"818181818181818181", KindTruncated}, {"8200", KindTruncated},
	{"a1", KindTruncated}, {"a20102", KindTruncated}, {"a100", KindTruncated},
	{"a2000000", KindTruncated},

	// Tag number not followed by tag content
	{"c0", KindTruncated},

	// Indefinite-length strings not closed by a break
	{"5f4100", KindTruncated}, {"7f6100", KindTruncated},

	// Indefinite-length maps and arrays not closed by a break
	{"9f", KindTruncated}, {"9f0102", KindTruncated}, {"bf", KindTruncated},
	{"bf01020102", KindTruncated}, {"819f", KindTruncated}, {"9f8000", KindTruncated},
	{"9f9f9f9f9fffffffff", KindTruncated}, {"9f819f819f9fffffff", KindTruncated},

	// Reserved additional information values
	{"1c", KindReserved}, {"1d", KindReserved}, {"1e", KindReserved},
	{"3c", KindReserved}, {"3d", KindReserved}, {"3e", KindReserved},
	{"5c", KindReserved}, {"5d", KindReserved}, {"5e", KindReserved},
	{"7c", KindReserved}, {"7d", KindReserved}, {"7e", KindReserved},
	{"9c", KindReserved}, {"9d", KindReserved}, {"9e", KindReserved},
	{"bc", KindReserved}, {"bd", KindReserved}, {"be", KindReserved},
	{"dc", KindReserved}, {"dd", KindReserved}, {"de", KindReserved},
	{"fc", KindReserved}, {"fd", KindReserved}, {"fe", KindReserved},

	// Reserved two-byte encodings of simple values
	{"f800", KindInvalidSimple}, {"f801", KindInvalidSimple},
	{"f818", KindInvalidSimple}, {"f81f", KindInvalidSimple},

	// Indefinite-length string chunks not of the correct type
	{"5f00ff", KindInvalidChunkType}, {"5f21ff", KindInvalidChunkType},
	{"5f6100ff", KindInvalidChunkType}, {"5f80ff", KindInvalidChunkType},
	{"5fa0ff", KindInvalidChunkType}, {"5fc000ff", KindInvalidChunkType},
	{"5fe0ff", KindInvalidChunkType}, {"7f4100ff", KindInvalidChunkType},

	// Indefinite-length string chunks not definite length
	{"5f5f4100ffff", KindInvalidChunkType}, {"7f7f6100ffff", KindInvalidChunkType},

	// Break occurring on its own outside of an indefinite-length item
	{"ff", KindUnexpectedBreak},

	// Break occurring in a definite-length array or map or a tag
	{"81ff", KindUnexpectedBreak}, {"8200ff", KindUnexpectedBreak},
	{"a1ff", KindUnexpectedBreak}, {"a1ff00", KindUnexpectedBreak},
	{"a100ff", KindUnexpectedBreak}, {"a20000ff", KindUnexpectedBreak},
	{"9f81ff", KindUnexpectedBreak}, {"9f829f819f9fffffffff", KindUnexpectedBreak},

	// Break in an indefinite-length map that would lead to an odd number of items
	{"bf00ff", KindUnexpectedBreak}, {"bf000000ff", KindUnexpectedBreak},

	// Major type 0, 1, 6 with additional information 31
	{"1f", KindInvalidIndefiniteMajorType}, {"3f", KindInvalidIndefiniteMajorType},
	{"df", KindInvalidIndefiniteMajorType},
}

func TestRFCNotWellFormed(t *testing.T) {
	for _, ex := range rfcNotWellFormed {
		t.Run(ex.hex, func(t *testing.T) {
			msg := mustHex(t, ex.hex)
			_, err := ValidateWellFormedBytes(msg)
			if err == nil {
				t.Fatalf("expected %v, got no error", ex.kind)
			}
			if got := ErrorKind(err); got != ex.kind {
				t.Fatalf("kind %v, want %v (%v)", got, ex.kind, err)
			}
			if err := fxcbor.Wellformed(msg); err == nil {
				t.Fatalf("reference decoder accepts %s", ex.hex)
			}
		})
	}
}
