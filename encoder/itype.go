package encoder

import "strings"

// packI assembles the I-type word: [op:6][rs:5][rt:5][imm:16]
// (spec.md section 4.5).
func packI(op, rs, rt, imm uint32) uint32 {
	return (op&OpMask)<<OpShift | (rs&RegMask)<<RsShift | (rt&RegMask)<<RtShift | (imm & ImmMask)
}

// Resolver looks up a label's address. It is satisfied by
// *parser.SymbolTable.
type Resolver interface {
	Get(name string) (uint32, error)
}

// encodeI encodes an I-type instruction. operands are raw, unresolved
// operand strings in source order; addr is the address of this
// instruction, used to compute branch offsets (spec.md section 4.6).
func encodeI(mnemonic string, op uint32, operands []string, addr uint32, sym Resolver) (uint32, error) {
	mnemonic = strings.ToLower(mnemonic)

	switch {
	case IsMemoryInstruction(mnemonic):
		// rt, offset(base)
		if len(operands) != 2 {
			return 0, badOperand(strings.Join(operands, ","), "expected rt, offset(base)")
		}
		rt, err := ParseRegister(operands[0])
		if err != nil {
			return 0, err
		}
		offsetOperand, baseOperand, err := ParseMemoryOperand(operands[1])
		if err != nil {
			return 0, err
		}
		base, err := ParseRegister(baseOperand)
		if err != nil {
			return 0, err
		}
		imm, err := resolveImmediate(offsetOperand, sym)
		if err != nil {
			return 0, err
		}
		return packI(op, base, rt, imm), nil

	case IsBranchInstruction(mnemonic):
		// rs, rt, label
		if len(operands) != 3 {
			return 0, badOperand(strings.Join(operands, ","), "expected rs, rt, label")
		}
		rs, err := ParseRegister(operands[0])
		if err != nil {
			return 0, err
		}
		rt, err := ParseRegister(operands[1])
		if err != nil {
			return 0, err
		}
		offset, err := branchOffset(operands[2], addr, sym)
		if err != nil {
			return 0, err
		}
		return packI(op, rs, rt, offset), nil

	case mnemonic == "lui":
		// rt, imm
		if len(operands) != 2 {
			return 0, badOperand(strings.Join(operands, ","), "expected rt, imm")
		}
		rt, err := ParseRegister(operands[0])
		if err != nil {
			return 0, err
		}
		imm, err := resolveImmediate(operands[1], sym)
		if err != nil {
			return 0, err
		}
		return packI(op, 0, rt, imm), nil

	default:
		// rt, rs, imm — arithmetic/logical immediate family.
		if len(operands) != 3 {
			return 0, badOperand(strings.Join(operands, ","), "expected rt, rs, imm")
		}
		rt, err := ParseRegister(operands[0])
		if err != nil {
			return 0, err
		}
		rs, err := ParseRegister(operands[1])
		if err != nil {
			return 0, err
		}
		imm, err := resolveImmediate(operands[2], sym)
		if err != nil {
			return 0, err
		}
		return packI(op, rs, rt, imm), nil
	}
}

// resolveImmediate parses a literal immediate, falling back to a
// symbol-table lookup for label operands (e.g. ".word"-style address
// constants reaching lui/ori during "la" expansion).
func resolveImmediate(operand string, sym Resolver) (uint32, error) {
	if v, err := ParseImmediate(operand); err == nil {
		return v, nil
	}
	if sym == nil {
		return 0, badOperand(operand, "not a literal immediate and no symbol table available")
	}
	return sym.Get(operand)
}
