package encoder

import "strings"

// ParseMemoryOperand splits an "offset(base)" operand (spec.md section
// 3, "imm(reg)") into its immediate and base-register parts. A bare
// "(base)" with no leading digits is treated as an implicit zero
// offset.
func ParseMemoryOperand(operand string) (offset string, base string, err error) {
	open := strings.IndexByte(operand, '(')
	close := strings.IndexByte(operand, ')')
	if open < 0 || close < open {
		return "", "", badOperand(operand, "expected offset(base) memory operand")
	}

	offset = strings.TrimSpace(operand[:open])
	if offset == "" {
		offset = "0"
	}
	base = strings.TrimSpace(operand[open+1 : close])
	return offset, base, nil
}
