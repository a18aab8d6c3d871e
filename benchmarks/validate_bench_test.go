package benchmarks

import (
	"bytes"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	msgp "github.com/tinylib/msgp/msgp"

	cbor "github.com/synadia-labs/cborwf/runtime"
)

// Well-formedness microbenchmarks comparing this validator against
// fxamacker/cbor's Wellformed and tinylib/msgp's structural Skip over
// equivalent payloads.

func BenchmarkValidate_TestData(b *testing.B) {
	msg := encodeCBORTestData(sampleTestData())
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cbor.ValidateWellFormedBytes(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate_TestDataIndefinite(b *testing.B) {
	msg := encodeCBORStreamingTestData(sampleTestData())
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cbor.ValidateWellFormedBytes(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate_TestDataReader(b *testing.B) {
	msg := encodeCBORTestData(sampleTestData())
	v := cbor.NewValidator(cbor.Options{})
	r := bytes.NewReader(msg)
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Reset(msg)
		if _, err := v.Validate(cbor.NewReaderSource(r)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFxamacker_Wellformed_TestData(b *testing.B) {
	msg := encodeCBORTestData(sampleTestData())
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := fxcbor.Wellformed(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMsgp_Skip_TestData(b *testing.B) {
	msg := encodeMsgpTestData(sampleTestData())
	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := msgp.Skip(msg); err != nil {
			b.Fatal(err)
		}
	}
}

// deepArrays nests n single-element arrays around a zero.
func deepArrays(n int) []byte {
	msg := bytes.Repeat([]byte{0x81}, n)
	return append(msg, 0x00)
}

func BenchmarkValidate_Nested30(b *testing.B) {
	msg := deepArrays(30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cbor.ValidateWellFormedBytes(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFxamacker_Wellformed_Nested30(b *testing.B) {
	msg := deepArrays(30)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := fxcbor.Wellformed(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate_Sequence(b *testing.B) {
	item := encodeCBORTestData(sampleTestData())
	var seq []byte
	for i := 0; i < 64; i++ {
		seq = cbor.AppendSequence(seq, item)
	}
	b.SetBytes(int64(len(seq)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := cbor.ValidateDocument(seq); err != nil {
			b.Fatal(err)
		}
	}
}
