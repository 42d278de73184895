package numbering

import "strconv"

var romanNumerals = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
	"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX",
}

// RowLabel renders the zero-based logical row index for the given label type.
func RowLabel(t RowLabelType, index int) string {
	if index < 0 {
		index = 0
	}
	switch t {
	case RowLabelNumeric:
		return strconv.Itoa(index + 1)
	case RowLabelRoman:
		if index < len(romanNumerals) {
			return romanNumerals[index]
		}
		return strconv.Itoa(index + 1)
	default:
		return alphaLabel(index)
	}
}

// alphaLabel maps 0 -> A, 25 -> Z, 26 -> AA (bijective base 26).
func alphaLabel(index int) string {
	var buf []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('A' + (n-1)%26)}, buf...)
	}
	return string(buf)
}
