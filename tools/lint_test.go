package tools

import (
	"testing"

	"github.com/cwilkes/mipsasm/assembler"
	"github.com/cwilkes/mipsasm/parser"
)

func lintSource(t *testing.T, source string) []*LintIssue {
	t.Helper()
	p := parser.NewParser(source)
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	result, err := assembler.Assemble(source, assembler.Options{})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	return Lint(program, &result)
}

func TestLint_UnusedLabel(t *testing.T) {
	issues := lintSource(t, `
_start:
	add $t0, $zero, $zero
	syscall

unused:
	add $t1, $zero, $zero
`)

	found := false
	for _, issue := range issues {
		if issue.Code == "UNUSED_LABEL" {
			found = true
		}
	}
	if !found {
		t.Error("expected an unused label warning for 'unused'")
	}
}

func TestLint_NoUnusedLabelWhenReferenced(t *testing.T) {
	issues := lintSource(t, `
start:
	b start
`)

	for _, issue := range issues {
		if issue.Code == "UNUSED_LABEL" {
			t.Errorf("did not expect unused label warning: %v", issue.Message)
		}
	}
}

func TestLint_BranchOffsetOverflow(t *testing.T) {
	// far is placed in DATA at 0x10010000, tens of millions of words past
	// the branch at 0x00400000: far outside a signed 16-bit word offset,
	// while the program stays within the default source/output limits.
	issues := lintSource(t, `
start:
	beq $zero, $zero, far
.data
far:	.word 0
`)

	found := false
	for _, issue := range issues {
		if issue.Code == "BRANCH_OFFSET_OVERFLOW" {
			found = true
		}
	}
	if !found {
		t.Error("expected a branch offset overflow warning")
	}
}

func TestLint_NoIssuesForSimpleProgram(t *testing.T) {
	issues := lintSource(t, `
_start:
	li $v0, 1
	syscall
	j _start
`)

	if len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestLint_IssuesSortedByLine(t *testing.T) {
	issues := lintSource(t, `
a:
	nop
b:
	nop
`)

	for i := 1; i < len(issues); i++ {
		if issues[i].Line < issues[i-1].Line {
			t.Error("issues not sorted by line number")
		}
	}
}

func TestLintLevel_String(t *testing.T) {
	if LintWarning.String() != "warning" {
		t.Errorf("expected \"warning\", got %q", LintWarning.String())
	}
	if LintInfo.String() != "info" {
		t.Errorf("expected \"info\", got %q", LintInfo.String())
	}
}
