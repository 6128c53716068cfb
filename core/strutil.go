package core

// Allocation-light formatting for log lines. fmt pulls in too much on small
// targets.

// itoa converts a signed integer to decimal.
func itoa(n int) string {
	if n < 0 {
		return "-" + formatUint(uint64(-int64(n)))
	}
	return formatUint(uint64(n))
}

// utoa converts an unsigned integer to decimal.
func utoa(n uint32) string {
	return formatUint(uint64(n))
}

func formatUint(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

const hexDigits = "0123456789abcdef"

// hex formats v as 0x-prefixed lowercase hex with at least width digits.
func hex(v uint32, width int) string {
	var buf [8]byte
	pos := len(buf)
	for v > 0 || len(buf)-pos < width {
		pos--
		buf[pos] = hexDigits[v&0xF]
		v >>= 4
		if pos == 0 {
			break
		}
	}
	if pos == len(buf) {
		return "0x0"
	}
	return "0x" + string(buf[pos:])
}

// Itoa is the exported form of itoa for modules.
func Itoa(n int) string { return itoa(n) }

// Utoa is the exported form of utoa for modules.
func Utoa(n uint32) string { return utoa(n) }

// Hex is the exported form of hex for modules.
func Hex(v uint32, width int) string { return hex(v, width) }
