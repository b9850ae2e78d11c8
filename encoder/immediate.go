package encoder

import (
	"strconv"
	"strings"
)

// ParseImmediate implements spec.md section 4.3: a "0x"/"0X"-prefixed
// hexadecimal literal (unsigned), or an optionally "-"-prefixed decimal
// literal parsed as signed 32-bit and bit-cast to unsigned 32-bit. The
// entire string must be consumed. Label references are not handled
// here; the caller falls back to symbol-table lookup when this fails.
func ParseImmediate(operand string) (uint32, error) {
	text := strings.TrimSpace(operand)
	if text == "" {
		return 0, badOperand(operand, "empty immediate")
	}

	if rest, ok := strings.CutPrefix(text, "0x"); ok {
		return parseHex(operand, rest)
	}
	if rest, ok := strings.CutPrefix(text, "0X"); ok {
		return parseHex(operand, rest)
	}

	negative := strings.HasPrefix(text, "-")
	digits := strings.TrimPrefix(text, "-")
	if digits == "" {
		return 0, badOperand(operand, "missing digits")
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, badOperand(operand, "not a valid decimal immediate")
	}
	if negative {
		value = -value
	}
	if value < int64(int32(-1<<31)) || value > int64(int32(1<<31-1)) {
		return 0, badOperand(operand, "out of signed 32-bit range")
	}

	return uint32(int32(value)), nil
}

func parseHex(operand, digits string) (uint32, error) {
	if digits == "" {
		return 0, badOperand(operand, "missing hex digits")
	}
	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, badOperand(operand, "not a valid hexadecimal immediate")
	}
	return uint32(value), nil
}
