// Package protocol is the wire format between a Nilai board and host tools:
// VLQ integers inside CRC16-checked blocks on a byte stream.
//
// Block layout:
//
//	[len][seq|0x10][payload...][crc hi][crc lo][0x7E]
//
// len counts the whole block. The CRC covers len, seq and payload.
package protocol

import "errors"

const (
	BlockHeaderSize  = 2
	BlockTrailerSize = 3
	BlockMin         = BlockHeaderSize + BlockTrailerSize
	BlockMax         = 64
	PayloadMax       = BlockMax - BlockMin

	posLen = 0
	posSeq = 1

	SyncByte = 0x7E
	SeqDest  = 0x10
	SeqMask  = 0x0F
)

var (
	ErrShortBuffer   = errors.New("protocol: short buffer")
	ErrBlockTooLarge = errors.New("protocol: payload exceeds block size")
	ErrBadCRC        = errors.New("protocol: crc mismatch")
	ErrBadFrame      = errors.New("protocol: malformed block")
	ErrNoBlock       = errors.New("protocol: no complete block")
)
