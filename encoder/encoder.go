// Package encoder translates MIPS I mnemonics and operands into
// 32-bit big-endian instruction words, and back again.
package encoder

import "fmt"

// Encode produces the instruction word(s) for one parsed line at
// address addr. Most mnemonics yield exactly one word; the
// pseudo-instructions (li, la, move, nop, b, beqz, bnez) may yield
// two. sym resolves label operands to their defined address and may
// be nil when encoding a self-contained R-type instruction.
func Encode(mnemonic string, operands []string, addr uint32, sym Resolver) ([]uint32, error) {
	desc, ok := Lookup(mnemonic)
	if !ok {
		return nil, fmt.Errorf("unknown mnemonic %q", mnemonic)
	}

	switch desc.Family {
	case FamilyR:
		word, err := encodeR(mnemonic, desc.Funct, operands)
		if err != nil {
			return nil, err
		}
		return []uint32{word}, nil

	case FamilyI:
		word, err := encodeI(mnemonic, desc.Op, operands, addr, sym)
		if err != nil {
			return nil, err
		}
		return []uint32{word}, nil

	case FamilyJ:
		word, err := encodeJ(desc.Op, operands, sym)
		if err != nil {
			return nil, err
		}
		return []uint32{word}, nil

	default:
		// Nop/LI/LA/Move/B/Beqz/Bnez all expand through the shared
		// pseudo-instruction lowering.
		return ExpandPseudo(mnemonic, operands, addr, sym)
	}
}

// Size reports the byte length Encode will produce for mnemonic
// without resolving any symbols, for use during pass 1.
func Size(mnemonic string, operands []string) (int, error) {
	desc, ok := Lookup(mnemonic)
	if !ok {
		return 0, fmt.Errorf("unknown mnemonic %q", mnemonic)
	}
	if desc.Family == FamilyR || desc.Family == FamilyI || desc.Family == FamilyJ {
		return 4, nil
	}
	return InstructionSize(mnemonic, operands)
}
