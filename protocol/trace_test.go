package protocol

import (
	"errors"
	"testing"
)

func TestTraceRecordRoundTrip(t *testing.T) {
	recs := []TraceRecord{
		{Timestamp: 0, Type: 0, Category: 0, Handle: 0},
		{Timestamp: 0xFFFFFFFF, Type: 96, Category: 7, Handle: 3},
		{Timestamp: 123456, Type: DropMarker, Category: 0, Handle: 17},
	}
	dec := NewBlockDecoder(0)
	var enc Encoder
	for _, r := range recs {
		out := NewScratchOutput()
		if err := enc.Encode(out, func(o OutputBuffer) { EncodeTraceRecord(o, r) }); err != nil {
			t.Fatal(err)
		}
		dec.Feed(out.Result())
		b, err := dec.Next()
		if err != nil {
			t.Fatal(err)
		}
		got, err := DecodeTraceRecord(b.Payload)
		if err != nil {
			t.Fatal(err)
		}
		if got != r {
			t.Fatalf("round trip %+v = %+v", r, got)
		}
	}
	if !recs[2].IsDropMarker() || recs[1].IsDropMarker() {
		t.Fatal("IsDropMarker")
	}
}

func TestDecodeTraceRecordErrors(t *testing.T) {
	if _, err := DecodeTraceRecord([]byte{1, 2, 3}); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("short record: %v", err)
	}
	if _, err := DecodeTraceRecord([]byte{1, 2, 3, 4, 5}); !errors.Is(err, ErrBadFrame) {
		t.Fatalf("trailing byte: %v", err)
	}

	out := NewScratchOutput()
	EncodeVLQUint(out, 1)
	EncodeVLQUint(out, 0x10000)
	EncodeVLQUint(out, 1)
	EncodeVLQUint(out, 1)
	if _, err := DecodeTraceRecord(out.Result()); !errors.Is(err, ErrBadFrame) {
		t.Fatalf("oversized type: %v", err)
	}
}
