package tools

import (
	"fmt"
	"sort"

	"github.com/cwilkes/mipsasm/assembler"
	"github.com/cwilkes/mipsasm/encoder"
	"github.com/cwilkes/mipsasm/parser"
)

// LintLevel is the severity of a lint finding.
type LintLevel int

const (
	LintWarning LintLevel = iota
	LintInfo
)

func (l LintLevel) String() string {
	if l == LintWarning {
		return "warning"
	}
	return "info"
}

// LintIssue is a single, non-fatal finding surfaced after a successful
// assembly. Lint never blocks output: every issue it reports is a
// policy-level warning, not one of the hard errors in parser.ErrorKind.
type LintIssue struct {
	Level   LintLevel
	Line    int
	Message string
	Code    string
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d: %s: %s [%s]", i.Line, i.Level, i.Message, i.Code)
}

var branchMnemonics = map[string]bool{
	"beq": true, "bne": true, "b": true, "beqz": true, "bnez": true,
}

// Lint inspects a successfully parsed program and its assembled result
// for two things spec.md section 9 calls out as policy choices rather
// than hard errors: labels that are defined but never referenced, and
// branch offsets that would not survive truncation to their encoded
// 16-bit field.
func Lint(program *parser.Program, result *assembler.Result) []*LintIssue {
	var issues []*LintIssue

	for _, sym := range result.Symbols.GetUnusedSymbols() {
		issues = append(issues, &LintIssue{
			Level:   LintWarning,
			Line:    sym.Pos.Line,
			Message: fmt.Sprintf("label %q defined but never referenced", sym.Name),
			Code:    "UNUSED_LABEL",
		})
	}

	issues = append(issues, checkBranchOverflow(program, result)...)

	sort.Slice(issues, func(i, j int) bool { return issues[i].Line < issues[j].Line })
	return issues
}

// checkBranchOverflow walks the program a second time, tracking each
// instruction's address from the final TEXT/DATA bases, the instruction
// sizes and the ".text"/".data" switches, and flags any branch whose
// target would not fit a signed 16-bit word offset. Bytes emitted by
// other directives (data values, strings, ".space", ".align") are not
// counted, so a branch placed after them in the same section is checked
// from a lower address than the one Assemble gave it.
func checkBranchOverflow(program *parser.Program, result *assembler.Result) []*LintIssue {
	var issues []*LintIssue

	textAddr, dataAddr := result.TextBase, result.DataBase
	active := &textAddr

	for _, line := range program.Lines {
		switch {
		case line.Directive != nil:
			switch line.Directive.Name {
			case "text":
				active = &textAddr
			case "data":
				active = &dataAddr
			}
			// Other directives are not sized here (that would duplicate
			// assembler.sizeDirective); the bytes they emit are not
			// added to the active section's address. Branch targets
			// come from result.Symbols, so they are exact.

		case line.Instruction != nil:
			inst := line.Instruction
			addr := *active
			n, err := encoder.Size(inst.Mnemonic, inst.Operands)
			if err == nil {
				*active += uint32(n)
			}

			if branchMnemonics[inst.Mnemonic] {
				targetOperand := inst.Operands[len(inst.Operands)-1]
				if target, err := result.Symbols.Get(targetOperand); err == nil {
					if encoder.BranchOffsetOverflows(addr, target) {
						issues = append(issues, &LintIssue{
							Level:   LintWarning,
							Line:    inst.Pos.Line,
							Message: fmt.Sprintf("branch target %q does not fit a signed 16-bit offset and will be truncated", targetOperand),
							Code:    "BRANCH_OFFSET_OVERFLOW",
						})
					}
				}
			}
		}
	}

	return issues
}
