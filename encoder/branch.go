package encoder

// branchOffset computes the signed word offset for a beq/bne target
// (spec.md section 4.6): (target - (addr + 4)) >> 2. addr is the
// address of the branch instruction itself, not the delay slot. An
// offset that doesn't fit in 16 signed bits is truncated, matching the
// reference assembler; callers that want to flag this instead should
// use tools.Lint, not a hard error here (spec.md section 9's open
// question on overflow policy).
func branchOffset(operand string, addr uint32, sym Resolver) (uint32, error) {
	target, err := resolveImmediate(operand, sym)
	if err != nil {
		return 0, err
	}

	delta := int32(target) - int32(addr+4)
	words := delta / 4

	return uint32(words) & ImmMask, nil
}

// BranchOffsetOverflows reports whether a branch from instrAddr to
// targetAddr would not survive truncation to a signed 16-bit word
// offset, for tools.Lint to surface as a warning.
func BranchOffsetOverflows(instrAddr, targetAddr uint32) bool {
	delta := int32(targetAddr) - int32(instrAddr+4)
	words := delta / 4
	return words < -(1<<15) || words > (1<<15)-1
}
