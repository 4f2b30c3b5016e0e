package internal

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToSignedInt converts a hex color such as "#FF5500" to the signed
// 32-bit ARGB integer the preference store expects.
func HexToSignedInt(hexColor string) (int32, error) {
	digits := strings.TrimPrefix(hexColor, "#")
	switch len(digits) {
	case 6:
		digits = "FF" + digits
	case 8:
	default:
		return 0, fmt.Errorf("Invalid hex color format: %s", hexColor)
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("Invalid hex color format: %s", hexColor)
	}
	return int32(uint32(value)), nil
}

// SignedIntToHex drops the alpha byte and formats the low 24 bits as
// "#RRGGBB".
func SignedIntToHex(colorInt int32) string {
	return fmt.Sprintf("#%06X", uint32(colorInt)&0xFFFFFF)
}
