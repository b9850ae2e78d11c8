package encoder

// packJ assembles the J-type word: [op:6][target:26] (spec.md section
// 4.5).
func packJ(op, target uint32) uint32 {
	return (op&OpMask)<<OpShift | (target & TargetMask)
}

// encodeJ encodes a j/jal instruction. The target operand is a label
// or literal absolute address; it is shifted right two bits to form
// the 26-bit word-aligned target field (spec.md section 4.6).
func encodeJ(op uint32, operands []string, sym Resolver) (uint32, error) {
	if len(operands) != 1 {
		return 0, badOperand("", "expected a single jump target")
	}
	target, err := resolveImmediate(operands[0], sym)
	if err != nil {
		return 0, err
	}
	return packJ(op, target>>2), nil
}
