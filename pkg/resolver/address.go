package resolver

import (
	"slices"
	"strings"
)

// EncodeAddress turns an address literal into byte escapes in little-endian order.
// The hex digits after 0x are left-padded to an even length, split into
// two-digit groups and emitted last group first: 0x1234 becomes \x34\x12.
func EncodeAddress(text string) string {
	digits := []rune(strings.ToLower(strings.TrimPrefix(text, "0x")))
	if len(digits)%2 == 1 {
		digits = append([]rune{'0'}, digits...)
	}

	groups := make([]string, 0, len(digits)/2)
	for i := 0; i < len(digits); i += 2 {
		groups = append(groups, string(digits[i:i+2]))
	}
	slices.Reverse(groups)

	var sb strings.Builder
	for _, group := range groups {
		sb.WriteString(`\x`)
		sb.WriteString(group)
	}
	return sb.String()
}
