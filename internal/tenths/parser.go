// Package tenths parses the fixed-format temperature grammar used by the
// measurement file into signed tenths-of-a-degree integers, without
// allocation and without floating point.
package tenths

// Min and Max bound every value Parse can return.
const (
	Min = -999
	Max = 999
)

// Parse converts a temperature byte slice of the form "[-]D[D].D" into
// tenths (e.g. "-12.3" -> -123). It accepts only lengths 3, 4 and 5 and
// rejects anything that deviates from the grammar, returning ok == false.
func Parse(b []byte) (v int16, ok bool) {
	n := len(b)
	if n < 3 || n > 5 {
		return 0, false
	}
	if b[n-2] != '.' {
		return 0, false
	}

	frac := b[n-1]
	if frac < '0' || frac > '9' {
		return 0, false
	}

	onesPos := n - 3
	ones := b[onesPos]
	if ones < '0' || ones > '9' {
		return 0, false
	}

	negative := b[0] == '-'
	firstDigit := 0
	if negative {
		firstDigit = 1
	}

	switch onesPos - firstDigit {
	case 0:
		mag := int16(ones-'0')*10 + int16(frac-'0')
		if negative {
			return -mag, true
		}
		return mag, true
	case 1:
		tens := b[firstDigit]
		if tens < '0' || tens > '9' {
			return 0, false
		}
		mag := int16(tens-'0')*100 + int16(ones-'0')*10 + int16(frac-'0')
		if negative {
			return -mag, true
		}
		return mag, true
	default:
		return 0, false
	}
}
