package protocol

// CRC16 is the CCITT-style checksum that trails every block. An empty input
// yields 0xFFFF.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		b ^= uint8(crc)
		b ^= b << 4
		w := uint16(b)
		crc = (w<<8 | crc>>8) ^ (w >> 4) ^ (w << 3)
	}
	return crc
}

func putCRC(dst []byte, crc uint16) {
	dst[0] = byte(crc >> 8)
	dst[1] = byte(crc)
}
