package encoder

import "strings"

// Family identifies the bit layout (or pseudo-op expansion rule) a
// mnemonic maps to (spec.md section 4.4).
type Family int

const (
	FamilyR Family = iota
	FamilyI
	FamilyJ
	FamilyNop
	FamilyLI
	FamilyLA
	FamilyMove
	FamilyB
	FamilyBeqz
	FamilyBnez
)

// Descriptor is the closed mapping from a lower-case mnemonic to its
// instruction family and, for R/I/J families, its opcode/function
// fields.
type Descriptor struct {
	Family Family
	Op     uint32
	Funct  uint32
}

// mnemonics is the closed set of supported mnemonics (spec.md section
// 4.4 and 4.5). Unrecognized mnemonics are reported as UnknownMnemonic
// errors by the caller.
var mnemonics = map[string]Descriptor{
	// R-type
	"add":     {Family: FamilyR, Funct: FuncAdd},
	"sub":     {Family: FamilyR, Funct: FuncSub},
	"and":     {Family: FamilyR, Funct: FuncAnd},
	"or":      {Family: FamilyR, Funct: FuncOr},
	"xor":     {Family: FamilyR, Funct: FuncXor},
	"sll":     {Family: FamilyR, Funct: FuncSll},
	"srl":     {Family: FamilyR, Funct: FuncSrl},
	"sra":     {Family: FamilyR, Funct: FuncSra},
	"sllv":    {Family: FamilyR, Funct: FuncSllv},
	"srlv":    {Family: FamilyR, Funct: FuncSrlv},
	"srav":    {Family: FamilyR, Funct: FuncSrav},
	"jr":      {Family: FamilyR, Funct: FuncJr},
	"jalr":    {Family: FamilyR, Funct: FuncJalr},
	"syscall": {Family: FamilyR, Funct: FuncSyscall},
	"break":   {Family: FamilyR, Funct: FuncBreak},
	"mfhi":    {Family: FamilyR, Funct: FuncMfhi},
	"mthi":    {Family: FamilyR, Funct: FuncMthi},
	"mflo":    {Family: FamilyR, Funct: FuncMflo},
	"mtlo":    {Family: FamilyR, Funct: FuncMtlo},
	"mult":    {Family: FamilyR, Funct: FuncMult},
	"multu":   {Family: FamilyR, Funct: FuncMultu},
	"div":     {Family: FamilyR, Funct: FuncDiv},
	"divu":    {Family: FamilyR, Funct: FuncDivu},
	"slt":     {Family: FamilyR, Funct: FuncSlt},
	"sltu":    {Family: FamilyR, Funct: FuncSltu},

	// I-type
	"addi":  {Family: FamilyI, Op: OpAddi},
	"addiu": {Family: FamilyI, Op: OpAddiu},
	"slti":  {Family: FamilyI, Op: OpSlti},
	"sltiu": {Family: FamilyI, Op: OpSltiu},
	"andi":  {Family: FamilyI, Op: OpAndi},
	"ori":   {Family: FamilyI, Op: OpOri},
	"xori":  {Family: FamilyI, Op: OpXori},
	"lui":   {Family: FamilyI, Op: OpLui},
	"lb":    {Family: FamilyI, Op: OpLb},
	"lbu":   {Family: FamilyI, Op: OpLbu},
	"lh":    {Family: FamilyI, Op: OpLh},
	"lhu":   {Family: FamilyI, Op: OpLhu},
	"lw":    {Family: FamilyI, Op: OpLw},
	"sb":    {Family: FamilyI, Op: OpSb},
	"sh":    {Family: FamilyI, Op: OpSh},
	"sw":    {Family: FamilyI, Op: OpSw},
	"beq":   {Family: FamilyI, Op: OpBeq},
	"bne":   {Family: FamilyI, Op: OpBne},

	// J-type
	"j":   {Family: FamilyJ, Op: OpJ},
	"jal": {Family: FamilyJ, Op: OpJal},

	// Pseudo-instructions
	"nop":  {Family: FamilyNop},
	"li":   {Family: FamilyLI},
	"la":   {Family: FamilyLA},
	"move": {Family: FamilyMove},
	"b":    {Family: FamilyB},
	"beqz": {Family: FamilyBeqz},
	"bnez": {Family: FamilyBnez},
}

// Lookup returns the Descriptor for a mnemonic, case-insensitively.
func Lookup(mnemonic string) (Descriptor, bool) {
	d, ok := mnemonics[strings.ToLower(mnemonic)]
	return d, ok
}

// IsMemoryInstruction reports whether the mnemonic takes an
// "rt, offset(base)" operand shape (spec.md section 4.1 item 5, 4.5).
func IsMemoryInstruction(mnemonic string) bool {
	switch strings.ToLower(mnemonic) {
	case "lb", "lbu", "lh", "lhu", "lw", "sb", "sh", "sw":
		return true
	default:
		return false
	}
}

// IsBranchInstruction reports whether the mnemonic's 16-bit immediate
// is a PC-relative word offset rather than a literal value.
func IsBranchInstruction(mnemonic string) bool {
	switch strings.ToLower(mnemonic) {
	case "beq", "bne":
		return true
	default:
		return false
	}
}

// IsJumpInstruction reports whether the mnemonic's operand is an
// absolute jump target (spec.md section 4.6).
func IsJumpInstruction(mnemonic string) bool {
	switch strings.ToLower(mnemonic) {
	case "j", "jal":
		return true
	default:
		return false
	}
}
