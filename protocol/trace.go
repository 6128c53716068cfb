package protocol

import "fmt"

// DropMarker is the record type announcing lost records. Its Handle carries
// the number dropped since the previous marker.
const DropMarker = 0xFFFF

// TraceRecord is one dispatched event as seen by the board's tracer.
type TraceRecord struct {
	Timestamp uint32
	Type      uint16
	Category  uint8
	Handle    uint32
}

// EncodeTraceRecord writes r as four VLQ fields.
func EncodeTraceRecord(out OutputBuffer, r TraceRecord) {
	EncodeVLQUint(out, r.Timestamp)
	EncodeVLQUint(out, uint32(r.Type))
	EncodeVLQUint(out, uint32(r.Category))
	EncodeVLQUint(out, r.Handle)
}

// DecodeTraceRecord parses a block payload holding exactly one record.
func DecodeTraceRecord(payload []byte) (TraceRecord, error) {
	var f [4]uint32
	for i := range f {
		v, err := DecodeVLQUint(&payload)
		if err != nil {
			return TraceRecord{}, fmt.Errorf("trace record field %d: %w", i, err)
		}
		f[i] = v
	}
	if len(payload) != 0 {
		return TraceRecord{}, fmt.Errorf("trace record: %w: %d trailing bytes", ErrBadFrame, len(payload))
	}
	if f[1] > 0xFFFF || f[2] > 0xFF {
		return TraceRecord{}, fmt.Errorf("trace record: %w: type %d category %d", ErrBadFrame, f[1], f[2])
	}
	return TraceRecord{
		Timestamp: f[0],
		Type:      uint16(f[1]),
		Category:  uint8(f[2]),
		Handle:    f[3],
	}, nil
}

// IsDropMarker reports whether r counts lost records rather than an event.
func (r TraceRecord) IsDropMarker() bool { return r.Type == DropMarker }
