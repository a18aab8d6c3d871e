package cbor

import (
	"strings"
	"testing"
)

func TestInitialByteTableOrdered(t *testing.T) {
	rows := InitialByteTable()
	if len(rows) == 0 {
		t.Fatal("empty table")
	}
	for i, r := range rows {
		if r.Last < r.First {
			t.Fatalf("row %d reversed: %+v", i, r)
		}
		if i > 0 && r.First <= rows[i-1].Last {
			t.Fatalf("row %d overlaps row %d", i, i-1)
		}
		if r.Description == "" {
			t.Fatalf("row %d has no description", i)
		}
	}

	// Callers get a copy.
	rows[0].Description = "changed"
	if InitialByteTable()[0].Description == "changed" {
		t.Fatal("InitialByteTable returned shared storage")
	}
}

func TestDescribeInitialByteMatchesTable(t *testing.T) {
	listed := make(map[byte]string)
	for _, r := range InitialByteTable() {
		for b := int(r.First); b <= int(r.Last); b++ {
			listed[byte(b)] = r.Description
		}
	}
	for b := 0; b < 256; b++ {
		got := DescribeInitialByte(byte(b))
		want, ok := listed[byte(b)]
		if !ok {
			want = "not well-formed (reserved or unassigned initial byte)"
		}
		if got != want {
			t.Fatalf("0x%02x: got %q want %q", b, got, want)
		}
	}
}

// Every byte the table lists starts a well-formed item or one that merely
// needs more input; every other byte is rejected outright. The break stop
// code is listed but cannot stand alone.
func TestDescribeInitialByteAgreesWithValidator(t *testing.T) {
	for b := 0; b < 256; b++ {
		_, err := ValidateWellFormedBytes([]byte{byte(b)})
		desc := DescribeInitialByte(byte(b))
		notWF := strings.HasPrefix(desc, "not well-formed")
		switch kind := ErrorKind(err); {
		case b == 0xff:
			if kind != KindUnexpectedBreak {
				t.Fatalf("0xff: got %v", kind)
			}
		case notWF:
			if kind != KindReserved && kind != KindInvalidIndefiniteMajorType {
				t.Fatalf("0x%02x (%s): got %v", b, desc, kind)
			}
		default:
			if kind != KindNone && kind != KindTruncated {
				t.Fatalf("0x%02x (%s): got %v", b, desc, kind)
			}
		}
	}
}

func TestDescribeInitialByteSamples(t *testing.T) {
	cases := map[byte]string{
		0x00: "unsigned integer 0x00..0x17 (0..23)",
		0x5f: `byte string, byte strings follow, terminated by "break"`,
		0x83: "array (0x00..0x17 data items follow)",
		0xd9: "(more tags; 1/2/4/8 bytes of tag number and then a data item follow)",
		0xf8: "(simple value, one byte follows)",
		0xff: `"break" stop code`,
		0x1c: "not well-formed (reserved or unassigned initial byte)",
	}
	for b, want := range cases {
		if got := DescribeInitialByte(b); got != want {
			t.Fatalf("0x%02x: got %q want %q", b, got, want)
		}
	}
}
