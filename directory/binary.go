package directory

const (
	// controlCharRatio is the fraction of control characters above which a
	// value is treated as binary.
	controlCharRatio = 0.3

	// maxTextualLength is the value length (in code points) above which a
	// value is treated as binary regardless of content.
	maxTextualLength = 1000
)

// IsBinaryValue reports whether a raw attribute value looks like binary data
// rather than text. A value is binary when its control-character ratio
// exceeds controlCharRatio or its length exceeds maxTextualLength.
func IsBinaryValue(value string) bool {
	total := 0
	control := 0
	for _, r := range value {
		total++
		if r <= 0x1F || (r >= 0x7F && r <= 0x9F) {
			control++
		}
	}
	if total > maxTextualLength {
		return true
	}
	if total == 0 {
		return false
	}
	return float64(control)/float64(total) > controlCharRatio
}
