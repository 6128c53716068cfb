package main

import (
	"bytes"
	"strings"
	"testing"

	"nilai/core"
	"nilai/protocol"
)

func encode(t *testing.T, enc *protocol.Encoder, r protocol.TraceRecord) []byte {
	t.Helper()
	out := protocol.NewScratchOutput()
	if err := enc.Encode(out, func(o protocol.OutputBuffer) { protocol.EncodeTraceRecord(o, r) }); err != nil {
		t.Fatal(err)
	}
	return append([]byte(nil), out.Result()...)
}

func TestDumperPrintsRecords(t *testing.T) {
	var enc protocol.Encoder
	var stream []byte
	stream = append(stream, encode(t, &enc, protocol.TraceRecord{
		Timestamp: 1500, Type: uint16(core.UARTRxCplt), Category: uint8(core.CategoryUART), Handle: 2,
	})...)
	stream = append(stream, 0x00, 0x13) // noise
	stream = append(stream, protocol.SyncByte)
	stream = append(stream, encode(t, &enc, protocol.TraceRecord{
		Timestamp: 1600, Type: protocol.DropMarker, Handle: 4,
	})...)

	var out bytes.Buffer
	d := newDumper(&out, false)
	if err := d.copy(bytes.NewReader(stream)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("output:\n%s", out.String())
	}
	if !strings.Contains(lines[0], "UART_RxCplt") || !strings.Contains(lines[0], "Uart") ||
		!strings.HasSuffix(lines[0], " 2") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "dropped 4 records") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestDumperVerboseReportsErrors(t *testing.T) {
	var out bytes.Buffer
	d := newDumper(&out, true)
	d.feed([]byte{0x01, 0x02, 0x03, 0x04, 0x05, protocol.SyncByte})
	d.printStats()
	if !strings.Contains(out.String(), "malformed block") || !strings.Contains(out.String(), "1 rejected") {
		t.Fatalf("output:\n%s", out.String())
	}
}
