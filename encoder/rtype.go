package encoder

import "strings"

// packR assembles the R-type word: [op:6][rs:5][rt:5][rd:5][shamt:5][func:6],
// op = 0 (spec.md section 4.5).
func packR(rs, rt, rd, shamt, funct uint32) uint32 {
	return (rs&RegMask)<<RsShift | (rt&RegMask)<<RtShift | (rd&RegMask)<<RdShift | (shamt&ShamtMask)<<ShamtShift | (funct & FunctMask)
}

// encodeR encodes an R-type instruction given its already-classified
// function code and raw operand strings. Operand shapes vary by
// mnemonic per spec.md section 4.1 item 5 and section 4.5.
func encodeR(mnemonic string, funct uint32, operands []string) (uint32, error) {
	switch strings.ToLower(mnemonic) {
	case "add", "sub", "and", "or", "xor", "slt", "sltu":
		rd, rs, rt, err := threeRegs(operands)
		if err != nil {
			return 0, err
		}
		return packR(rs, rt, rd, 0, funct), nil

	case "sllv", "srlv", "srav":
		// rd, rt, rs
		if len(operands) != 3 {
			return 0, badOperand(strings.Join(operands, ","), "expected rd, rt, rs")
		}
		rd, err := ParseRegister(operands[0])
		if err != nil {
			return 0, err
		}
		rt, err := ParseRegister(operands[1])
		if err != nil {
			return 0, err
		}
		rs, err := ParseRegister(operands[2])
		if err != nil {
			return 0, err
		}
		return packR(rs, rt, rd, 0, funct), nil

	case "sll", "srl", "sra":
		// rd, rt, shamt
		if len(operands) != 3 {
			return 0, badOperand(strings.Join(operands, ","), "expected rd, rt, sa")
		}
		rd, err := ParseRegister(operands[0])
		if err != nil {
			return 0, err
		}
		rt, err := ParseRegister(operands[1])
		if err != nil {
			return 0, err
		}
		sa, err := ParseImmediate(operands[2])
		if err != nil {
			return 0, err
		}
		if sa > 31 {
			return 0, badOperand(operands[2], "shift amount out of range 0..31")
		}
		return packR(0, rt, rd, sa, funct), nil

	case "jr":
		if len(operands) != 1 {
			return 0, badOperand(strings.Join(operands, ","), "expected one register")
		}
		rs, err := ParseRegister(operands[0])
		if err != nil {
			return 0, err
		}
		return packR(rs, 0, 0, 0, funct), nil

	case "jalr":
		if len(operands) == 1 {
			rs, err := ParseRegister(operands[0])
			if err != nil {
				return 0, err
			}
			return packR(rs, 0, 31, 0, funct), nil // default rd = 31
		}
		if len(operands) == 2 {
			rd, err := ParseRegister(operands[0])
			if err != nil {
				return 0, err
			}
			rs, err := ParseRegister(operands[1])
			if err != nil {
				return 0, err
			}
			return packR(rs, 0, rd, 0, funct), nil
		}
		return 0, badOperand(strings.Join(operands, ","), "expected rs, or rd, rs")

	case "mfhi", "mflo":
		if len(operands) != 1 {
			return 0, badOperand(strings.Join(operands, ","), "expected one register")
		}
		rd, err := ParseRegister(operands[0])
		if err != nil {
			return 0, err
		}
		return packR(0, 0, rd, 0, funct), nil

	case "mthi", "mtlo":
		if len(operands) != 1 {
			return 0, badOperand(strings.Join(operands, ","), "expected one register")
		}
		rs, err := ParseRegister(operands[0])
		if err != nil {
			return 0, err
		}
		return packR(rs, 0, 0, 0, funct), nil

	case "mult", "multu", "div", "divu":
		if len(operands) != 2 {
			return 0, badOperand(strings.Join(operands, ","), "expected rs, rt")
		}
		rs, err := ParseRegister(operands[0])
		if err != nil {
			return 0, err
		}
		rt, err := ParseRegister(operands[1])
		if err != nil {
			return 0, err
		}
		return packR(rs, rt, 0, 0, funct), nil

	case "syscall":
		return packR(0, 0, 0, 0, funct), nil

	case "break":
		var code uint32
		if len(operands) == 1 {
			c, err := ParseImmediate(operands[0])
			if err != nil {
				return 0, err
			}
			code = c
		}
		// 20-bit code packed at bits 6..25 (spec.md section 4.5).
		return (code&0xFFFFF)<<ShamtShift | (funct & FunctMask), nil

	default:
		return 0, badOperand(mnemonic, "unhandled R-type mnemonic")
	}
}

func threeRegs(operands []string) (rd, rs, rt uint32, err error) {
	if len(operands) != 3 {
		return 0, 0, 0, badOperand(strings.Join(operands, ","), "expected rd, rs, rt")
	}
	if rd, err = ParseRegister(operands[0]); err != nil {
		return 0, 0, 0, err
	}
	if rs, err = ParseRegister(operands[1]); err != nil {
		return 0, 0, 0, err
	}
	if rt, err = ParseRegister(operands[2]); err != nil {
		return 0, 0, 0, err
	}
	return rd, rs, rt, nil
}
