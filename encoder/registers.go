package encoder

import (
	"strconv"
	"strings"
)

// ParseRegister implements spec.md section 4.2: an optional leading
// "$", then either a decimal register number 0..31 or a standard ABI
// name (zero, at, v0, v1, a0..a3, t0..t9, s0..s7, k0, k1, gp, sp, fp,
// ra). Anything else is an error.
func ParseRegister(operand string) (uint32, error) {
	name := strings.TrimPrefix(strings.TrimSpace(operand), "$")
	if name == "" {
		return 0, badOperand(operand, "empty register name")
	}

	if n, err := strconv.ParseUint(name, 10, 32); err == nil {
		if n > 31 {
			return 0, badOperand(operand, "register number out of range 0..31")
		}
		return uint32(n), nil
	}

	for num, abi := range registerNames {
		if abi == name {
			return uint32(num), nil
		}
	}

	return 0, badOperand(operand, "unknown register name")
}

// RegisterName returns the canonical ABI name for a register number
// 0..31, used by the disassembler.
func RegisterName(num uint32) string {
	if num > 31 {
		return "?"
	}
	return registerNames[num]
}
