package protocol

import "fmt"

// Block is one decoded frame.
type Block struct {
	Seq     uint8
	Payload []byte
}

// EncodeBlock frames the bytes written by fill into out. seq is masked to
// four bits. fill must not write more than PayloadMax bytes.
func EncodeBlock(out OutputBuffer, seq uint8, fill func(OutputBuffer)) error {
	start := out.CurPosition()
	out.Output([]byte{0, seq&SeqMask | SeqDest})
	if fill != nil {
		fill(out)
	}
	n := len(out.DataSince(start)) + BlockTrailerSize
	if n > BlockMax {
		return fmt.Errorf("%w: %d bytes", ErrBlockTooLarge, n)
	}
	out.Update(start+posLen, byte(n))

	var trailer [BlockTrailerSize]byte
	putCRC(trailer[:2], CRC16(out.DataSince(start)))
	trailer[2] = SyncByte
	out.Output(trailer[:])
	return nil
}

// Encoder frames payloads with a rolling sequence number.
type Encoder struct {
	seq uint8
}

// Encode frames one payload into out and advances the sequence.
func (e *Encoder) Encode(out OutputBuffer, fill func(OutputBuffer)) error {
	if err := EncodeBlock(out, e.seq, fill); err != nil {
		return err
	}
	e.seq = (e.seq + 1) & SeqMask
	return nil
}

// BlockDecoder reassembles blocks from a byte stream. After garbage or a bad
// block it drops bytes up to the next sync byte and carries on.
type BlockDecoder struct {
	in     *FifoBuffer
	synced bool

	blocks  uint32
	errors  uint32
	skipped uint32
}

// NewBlockDecoder returns a decoder buffering up to capacity bytes. Capacities
// below two blocks are raised.
func NewBlockDecoder(capacity int) *BlockDecoder {
	if capacity < 2*BlockMax+1 {
		capacity = 2*BlockMax + 1
	}
	return &BlockDecoder{in: NewFifoBuffer(capacity), synced: true}
}

// Feed buffers received bytes. Bytes that do not fit are dropped and counted.
func (d *BlockDecoder) Feed(data []byte) int {
	n := d.in.Write(data)
	d.skipped += uint32(len(data) - n)
	return n
}

// Next returns the next good block. It returns ErrNoBlock when more input is
// needed, and ErrBadCRC or ErrBadFrame after discarding a corrupt block; the
// caller may call Next again in both cases.
func (d *BlockDecoder) Next() (Block, error) {
	for {
		data := d.in.Data()
		if len(data) == 0 {
			return Block{}, ErrNoBlock
		}
		if !d.synced {
			d.resync(data)
			continue
		}
		if data[0] == SyncByte {
			d.in.Pop(1)
			continue
		}
		if len(data) < BlockMin {
			return Block{}, ErrNoBlock
		}

		n := int(data[posLen])
		if n < BlockMin || n > BlockMax || data[posSeq]&^SeqMask != SeqDest {
			return Block{}, d.fail(ErrBadFrame)
		}
		if len(data) < n {
			return Block{}, ErrNoBlock
		}
		if data[n-1] != SyncByte {
			return Block{}, d.fail(ErrBadFrame)
		}
		want := uint16(data[n-3])<<8 | uint16(data[n-2])
		if CRC16(data[:n-BlockTrailerSize]) != want {
			return Block{}, d.fail(ErrBadCRC)
		}

		b := Block{
			Seq:     data[posSeq] & SeqMask,
			Payload: append([]byte(nil), data[BlockHeaderSize:n-BlockTrailerSize]...),
		}
		d.in.Pop(n)
		d.blocks++
		return b, nil
	}
}

func (d *BlockDecoder) fail(err error) error {
	d.errors++
	d.synced = false
	return err
}

// resync drops everything up to and including the next sync byte.
func (d *BlockDecoder) resync(data []byte) {
	for i, b := range data {
		if b == SyncByte {
			d.skipped += uint32(i)
			d.in.Pop(i + 1)
			d.synced = true
			return
		}
	}
	d.skipped += uint32(len(data))
	d.in.Pop(len(data))
}

// Stats returns the number of good blocks, rejected blocks and skipped bytes.
func (d *BlockDecoder) Stats() (blocks, errors, skipped uint32) {
	return d.blocks, d.errors, d.skipped
}
