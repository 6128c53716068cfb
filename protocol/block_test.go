package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func frame(t *testing.T, seq uint8, payload []byte) []byte {
	t.Helper()
	out := NewScratchOutput()
	if err := EncodeBlock(out, seq, func(o OutputBuffer) { o.Output(payload) }); err != nil {
		t.Fatal(err)
	}
	return append([]byte(nil), out.Result()...)
}

func TestEncodeBlockLayout(t *testing.T) {
	b := frame(t, 3, []byte{0xAA, 0xBB})
	if len(b) != 7 {
		t.Fatalf("len = %d, want 7", len(b))
	}
	if b[0] != 7 || b[1] != SeqDest|3 || b[6] != SyncByte {
		t.Fatalf("block = % x", b)
	}
	crc := CRC16(b[:4])
	if b[4] != byte(crc>>8) || b[5] != byte(crc) {
		t.Fatalf("crc bytes % x, want %#04x", b[4:6], crc)
	}
}

func TestEncodeBlockTooLarge(t *testing.T) {
	out := NewScratchOutput()
	err := EncodeBlock(out, 0, func(o OutputBuffer) { o.Output(make([]byte, PayloadMax+1)) })
	if !errors.Is(err, ErrBlockTooLarge) {
		t.Fatalf("err = %v, want ErrBlockTooLarge", err)
	}

	out.Reset()
	if err := EncodeBlock(out, 0, func(o OutputBuffer) { o.Output(make([]byte, PayloadMax)) }); err != nil {
		t.Fatalf("max payload: %v", err)
	}
	if len(out.Result()) != BlockMax {
		t.Fatalf("max block = %d bytes", len(out.Result()))
	}
}

func TestEncoderSequence(t *testing.T) {
	var enc Encoder
	dec := NewBlockDecoder(0)
	for i := 0; i < 20; i++ {
		out := NewScratchOutput()
		if err := enc.Encode(out, func(o OutputBuffer) { EncodeVLQUint(o, uint32(i)) }); err != nil {
			t.Fatal(err)
		}
		dec.Feed(out.Result())
		b, err := dec.Next()
		if err != nil {
			t.Fatalf("block %d: %v", i, err)
		}
		if b.Seq != uint8(i)&SeqMask {
			t.Fatalf("block %d seq = %d", i, b.Seq)
		}
	}
}

func TestDecoderPartialInput(t *testing.T) {
	b := frame(t, 1, []byte{1, 2, 3})
	dec := NewBlockDecoder(0)

	dec.Feed(b[:4])
	if _, err := dec.Next(); !errors.Is(err, ErrNoBlock) {
		t.Fatalf("partial block: %v", err)
	}
	dec.Feed(b[4:])
	got, err := dec.Next()
	if err != nil || !bytes.Equal(got.Payload, []byte{1, 2, 3}) {
		t.Fatalf("Next() = %+v, %v", got, err)
	}
	if _, err := dec.Next(); !errors.Is(err, ErrNoBlock) {
		t.Fatalf("drained decoder: %v", err)
	}
}

func TestDecoderResync(t *testing.T) {
	good1 := frame(t, 1, []byte{0x11})
	bad := frame(t, 2, []byte{0x22, 0x23})
	bad[2] ^= 0xFF // payload corruption, CRC no longer matches
	good2 := frame(t, 3, []byte{0x33})

	var stream []byte
	stream = append(stream, 0x01, 0x02) // line noise
	stream = append(stream, SyncByte)
	stream = append(stream, good1...)
	stream = append(stream, bad...)
	stream = append(stream, good2...)

	dec := NewBlockDecoder(0)
	dec.Feed(stream)

	var payloads [][]byte
	var errs []error
	for {
		b, err := dec.Next()
		if errors.Is(err, ErrNoBlock) {
			break
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		payloads = append(payloads, b.Payload)
	}

	if len(payloads) != 2 || payloads[0][0] != 0x11 || payloads[1][0] != 0x33 {
		t.Fatalf("payloads = % x", payloads)
	}
	if len(errs) < 2 {
		t.Fatalf("errors = %v, want noise and crc failures", errs)
	}
	sawCRC := false
	for _, err := range errs {
		if errors.Is(err, ErrBadCRC) {
			sawCRC = true
		}
	}
	if !sawCRC {
		t.Fatalf("no ErrBadCRC in %v", errs)
	}
	blocks, rejected, _ := dec.Stats()
	if blocks != 2 || rejected != uint32(len(errs)) {
		t.Fatalf("stats blocks=%d rejected=%d", blocks, rejected)
	}
}

func TestDecoderOverflowCounted(t *testing.T) {
	dec := NewBlockDecoder(0)
	n := dec.Feed(make([]byte, 4*BlockMax))
	_, _, skipped := dec.Stats()
	if n == 4*BlockMax || skipped != uint32(4*BlockMax-n) {
		t.Fatalf("fed %d skipped %d", n, skipped)
	}
}
