package protocol

// VLQ packs 7 bits per byte, most significant group first, with the high bit
// set on every byte but the last. Small negative values stay short: a leading
// group of 0x60..0x7F sign-extends.

// vlqBounds are the per-length ranges that fit without another leading byte.
var vlqBounds = [...]struct{ shift, lo, hi int64 }{
	{28, -(1 << 26), 3 << 26},
	{21, -(1 << 19), 3 << 19},
	{14, -(1 << 12), 3 << 12},
	{7, -(1 << 5), 3 << 5},
}

// EncodeVLQInt writes v to out in one to five bytes.
func EncodeVLQInt(out OutputBuffer, v int32) {
	var tmp [5]byte
	n := 0
	for _, b := range vlqBounds {
		if int64(v) < b.lo || int64(v) >= b.hi {
			tmp[n] = byte(v>>b.shift)&0x7F | 0x80
			n++
		}
	}
	tmp[n] = byte(v) & 0x7F
	out.Output(tmp[:n+1])
}

// EncodeVLQUint writes v using the signed encoding of its bit pattern.
func EncodeVLQUint(out OutputBuffer, v uint32) {
	EncodeVLQInt(out, int32(v))
}

// DecodeVLQInt reads one value from the front of *data and advances it.
func DecodeVLQInt(data *[]byte) (int32, error) {
	buf := *data
	if len(buf) == 0 {
		return 0, ErrShortBuffer
	}
	c := uint32(buf[0])
	v := c & 0x7F
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F)
	}
	i := 1
	for c&0x80 != 0 {
		if i >= len(buf) {
			return 0, ErrShortBuffer
		}
		c = uint32(buf[i])
		i++
		v = v<<7 | c&0x7F
	}
	*data = buf[i:]
	return int32(v), nil
}

func DecodeVLQUint(data *[]byte) (uint32, error) {
	v, err := DecodeVLQInt(data)
	return uint32(v), err
}

// EncodeVLQBytes writes a length-prefixed byte string.
func EncodeVLQBytes(out OutputBuffer, b []byte) {
	EncodeVLQUint(out, uint32(len(b)))
	out.Output(b)
}

// DecodeVLQBytes reads a length-prefixed byte string. The result aliases *data.
func DecodeVLQBytes(data *[]byte) ([]byte, error) {
	rest := *data
	n, err := DecodeVLQUint(&rest)
	if err != nil {
		return nil, err
	}
	if uint32(len(rest)) < n {
		return nil, ErrShortBuffer
	}
	*data = rest[n:]
	return rest[:n], nil
}

func EncodeVLQString(out OutputBuffer, s string) {
	EncodeVLQUint(out, uint32(len(s)))
	out.Output([]byte(s))
}

func DecodeVLQString(data *[]byte) (string, error) {
	b, err := DecodeVLQBytes(data)
	return string(b), err
}
