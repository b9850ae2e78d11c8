package tools

import (
	"strings"
	"testing"

	"github.com/cwilkes/mipsasm/assembler"
)

func assembleOrFail(t *testing.T, source string) *assembler.Result {
	t.Helper()
	result, err := assembler.Assemble(source, assembler.Options{})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	return &result
}

func TestListing_BasicInstruction(t *testing.T) {
	result := assembleOrFail(t, `add $t0, $t1, $t2`)

	out := Listing(result, nil)
	if !strings.Contains(out, "0x00400000:") {
		t.Errorf("expected TEXT base address in listing, got: %s", out)
	}
	if !strings.Contains(out, "add") {
		t.Errorf("expected decoded mnemonic in listing, got: %s", out)
	}
}

func TestListing_MultipleInstructions(t *testing.T) {
	result := assembleOrFail(t, `
start:
	add $t0, $zero, $zero
	ori  $t0, $t0, 1
`)

	out := Listing(result, nil)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 listing lines, got %d: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "0x00400000:") {
		t.Errorf("expected first line at TEXT base, got: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0x00400004:") {
		t.Errorf("expected second line 4 bytes later, got: %s", lines[1])
	}
}

func TestListing_IncludesData(t *testing.T) {
	result := assembleOrFail(t, `
	.text
	nop
	.data
msg:	.word 42
`)

	out := Listing(result, nil)
	if !strings.Contains(out, "0x10010000:") {
		t.Errorf("expected DATA base address in listing, got: %s", out)
	}
}

func TestListing_NopDecodesAsSll(t *testing.T) {
	result := assembleOrFail(t, `nop`)

	out := Listing(result, nil)
	if !strings.Contains(out, "sll") {
		t.Errorf("expected nop to disassemble as sll, got: %s", out)
	}
}

func TestDefaultFormatOptions_ColumnOrdering(t *testing.T) {
	opts := DefaultFormatOptions()
	if opts.MnemonicColumn <= opts.BytesColumn {
		t.Error("expected mnemonic column to follow bytes column")
	}
}
