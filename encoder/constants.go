package encoder

// Instruction word bit-field widths and shifts, shared by the R/I/J
// encoders and the decoder (spec.md section 4.5).
const (
	OpShift    = 26
	RsShift    = 21
	RtShift    = 16
	RdShift    = 11
	ShamtShift = 6

	OpMask    = 0x3F
	RegMask   = 0x1F
	ShamtMask = 0x1F
	FunctMask = 0x3F
	ImmMask   = 0xFFFF
	TargetMask = 0x3FFFFFF
)

// R-type function codes (op field is always 0 for R-type).
const (
	FuncAdd     = 0x20
	FuncAddu    = 0x21 // used internally by the "move" pseudo-op expansion
	FuncSub     = 0x22
	FuncAnd     = 0x24
	FuncOr      = 0x25
	FuncXor     = 0x26
	FuncSll     = 0x00
	FuncSrl     = 0x02
	FuncSra     = 0x03
	FuncSllv    = 0x04
	FuncSrlv    = 0x06
	FuncSrav    = 0x07
	FuncJr      = 0x08
	FuncJalr    = 0x09
	FuncSyscall = 0x0C
	FuncBreak   = 0x0D
	FuncMfhi    = 0x10
	FuncMthi    = 0x11
	FuncMflo    = 0x12
	FuncMtlo    = 0x13
	FuncMult    = 0x18
	FuncMultu   = 0x19
	FuncDiv     = 0x1A
	FuncDivu    = 0x1B
	FuncSlt     = 0x2A
	FuncSltu    = 0x2B
)

// I-type and J-type opcodes.
const (
	OpAddi  = 0x08
	OpAddiu = 0x09
	OpSlti  = 0x0A
	OpSltiu = 0x0B
	OpAndi  = 0x0C
	OpOri   = 0x0D
	OpXori  = 0x0E
	OpLui   = 0x0F
	OpLb    = 0x20
	OpLh    = 0x21
	OpLw    = 0x23
	OpLbu   = 0x24
	OpLhu   = 0x25
	OpSb    = 0x28
	OpSh    = 0x29
	OpSw    = 0x2B
	OpBeq   = 0x04
	OpBne   = 0x05
	OpJ     = 0x02
	OpJal   = 0x03
)

// Register ABI names, in register-number order (spec.md section 4.2).
var registerNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}
