package encoder_test

import (
	"testing"

	"github.com/cwilkes/mipsasm/encoder"
)

func TestParseRegister_DecimalAndABINames(t *testing.T) {
	cases := map[string]uint32{
		"$0":    0,
		"0":     0,
		"$zero": 0,
		"$t0":   8,
		"t1":    9,
		"$ra":   31,
		"$sp":   29,
		"$31":   31,
	}
	for input, want := range cases {
		got, err := encoder.ParseRegister(input)
		if err != nil {
			t.Fatalf("ParseRegister(%q): unexpected error: %v", input, err)
		}
		if got != want {
			t.Errorf("ParseRegister(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestParseRegister_Invalid(t *testing.T) {
	for _, input := range []string{"$32", "$bogus", "", "$"} {
		if _, err := encoder.ParseRegister(input); err == nil {
			t.Errorf("ParseRegister(%q): expected error, got none", input)
		}
	}
}

func TestParseImmediate_Hex(t *testing.T) {
	got, err := encoder.ParseImmediate("0x1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x1234 {
		t.Errorf("got 0x%x, want 0x1234", got)
	}
}

func TestParseImmediate_NegativeDecimal(t *testing.T) {
	got, err := encoder.ParseImmediate("-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0xFFFFFFFF {
		t.Errorf("got 0x%x, want 0xFFFFFFFF", got)
	}
}

func TestParseImmediate_TrailingGarbageIsError(t *testing.T) {
	if _, err := encoder.ParseImmediate("123abc"); err == nil {
		t.Error("expected error for trailing non-digit characters")
	}
}

func TestParseImmediate_EmptyIsError(t *testing.T) {
	if _, err := encoder.ParseImmediate(""); err == nil {
		t.Error("expected error for empty immediate")
	}
}

func TestParseMemoryOperand(t *testing.T) {
	offset, base, err := encoder.ParseMemoryOperand("-4($sp)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offset != "-4" || base != "$sp" {
		t.Errorf("got offset=%q base=%q, want offset=-4 base=$sp", offset, base)
	}
}

func TestParseMemoryOperand_ImplicitZeroOffset(t *testing.T) {
	offset, base, err := encoder.ParseMemoryOperand("($t0)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offset != "0" || base != "$t0" {
		t.Errorf("got offset=%q base=%q, want offset=0 base=$t0", offset, base)
	}
}

func TestParseMemoryOperand_Malformed(t *testing.T) {
	if _, _, err := encoder.ParseMemoryOperand("$t0"); err == nil {
		t.Error("expected error for a register with no parens")
	}
}

func TestEncode_Lw(t *testing.T) {
	word, err := encoder.Encode("lw", []string{"$t0", "4($sp)"}, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(word) != 1 {
		t.Fatalf("expected one word, got %d", len(word))
	}
	// op=0x23, rs=sp(29), rt=t0(8), imm=4
	want := uint32(0x23)<<26 | 29<<21 | 8<<16 | 4
	if word[0] != want {
		t.Errorf("got 0x%08x, want 0x%08x", word[0], want)
	}
}

func TestEncode_JumpTarget(t *testing.T) {
	word, err := encoder.Encode("j", []string{"0x00400010"}, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := uint32(0x02)<<26 | (0x00400010 >> 2)
	if word[0] != want {
		t.Errorf("got 0x%08x, want 0x%08x", word[0], want)
	}
}

func TestEncode_UnknownMnemonic(t *testing.T) {
	if _, err := encoder.Encode("frobnicate", nil, 0, nil); err == nil {
		t.Error("expected error for unknown mnemonic")
	}
}

func TestEncode_ShiftAmountOutOfRange(t *testing.T) {
	if _, err := encoder.Encode("sll", []string{"$t0", "$t1", "32"}, 0, nil); err == nil {
		t.Error("expected error for shift amount > 31")
	}
}

func TestSize_RTypeAndPseudoAgreeWithEncode(t *testing.T) {
	n, err := encoder.Size("add", []string{"$t0", "$t1", "$t2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Errorf("got %d, want 4", n)
	}

	n, err = encoder.Size("la", []string{"$t0", "somewhere"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 8 {
		t.Errorf("la should always reserve 8 bytes, got %d", n)
	}
}

func TestDecode_RoundTripsRType(t *testing.T) {
	word, err := encoder.Encode("add", []string{"$t0", "$t1", "$t2"}, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := encoder.Decode(word[0], 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Mnemonic != "add" {
		t.Errorf("got mnemonic %q, want add", decoded.Mnemonic)
	}
	reencoded, err := encoder.Encode(decoded.Mnemonic, decoded.Operands, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error re-encoding: %v", err)
	}
	if reencoded[0] != word[0] {
		t.Errorf("round trip mismatch: 0x%08x != 0x%08x", reencoded[0], word[0])
	}
}

func TestDecode_NopIsSll(t *testing.T) {
	decoded, err := encoder.Decode(0x00000000, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Mnemonic != "sll" {
		t.Errorf("got %q, want sll", decoded.Mnemonic)
	}
}

func TestBranchOffsetOverflows(t *testing.T) {
	if encoder.BranchOffsetOverflows(0x00400000, 0x00400008) {
		t.Error("a nearby branch target should not overflow")
	}
	if !encoder.BranchOffsetOverflows(0x00400000, 0x01000000) {
		t.Error("a far branch target should overflow a signed 16-bit word offset")
	}
}
