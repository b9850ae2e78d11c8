package assembler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwilkes/mipsasm/assembler"
	"github.com/cwilkes/mipsasm/config"
)

// assembleOrFail runs a job and fails the test immediately on error,
// mirroring the teacher's own require.NoError-first test shape.
func assembleOrFail(t *testing.T, source string) assembler.Result {
	t.Helper()
	result, err := assembler.Assemble(source, assembler.Options{})
	require.NoError(t, err)
	return result
}

func TestAssemble_Nop(t *testing.T) {
	result := assembleOrFail(t, "nop")
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, result.Output)
}

func TestAssemble_AddRType(t *testing.T) {
	// spec.md section 8 scenario 2.
	result := assembleOrFail(t, "add $t0, $t1, $t2")
	assert.Equal(t, []byte{0x01, 0x2A, 0x40, 0x20}, result.Output)
}

func TestAssemble_OriImmediate(t *testing.T) {
	// spec.md section 8 scenario 3.
	result := assembleOrFail(t, "ori $v0, $zero, 0x1234")
	assert.Equal(t, []byte{0x34, 0x02, 0x12, 0x34}, result.Output)
}

func TestAssemble_LiLargeImmediate(t *testing.T) {
	// spec.md section 8 scenario 4.
	result := assembleOrFail(t, "li $a0, 0x12345678")
	expected := []byte{
		0x3C, 0x04, 0x12, 0x34,
		0x34, 0x84, 0x56, 0x78,
	}
	assert.Equal(t, expected, result.Output)
}

func TestAssemble_LiSmallImmediate_SingleWord(t *testing.T) {
	result := assembleOrFail(t, "li $a0, 5")
	require.Len(t, result.Output, 4)
	assert.Equal(t, []byte{0x34, 0x04, 0x00, 0x05}, result.Output) // ori $a0, $zero, 5
}

func TestAssemble_BranchToForwardLabel(t *testing.T) {
	// spec.md section 8 scenario 5.
	source := `
.text
.org 0x00400000
start: beq $t0, $t1, end
       nop
end:
`
	result := assembleOrFail(t, source)
	expected := []byte{
		0x11, 0x09, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, expected, result.Output)
}

func TestAssemble_DataAsciiz(t *testing.T) {
	// spec.md section 8 scenario 6.
	source := `
.data
.org 0x10010000
msg: .asciiz "Hi"
`
	result := assembleOrFail(t, source)
	assert.Equal(t, []byte{'H', 'i', 0x00}, result.Output)

	sym, ok := result.Symbols.Lookup("msg")
	require.True(t, ok)
	assert.Equal(t, uint32(0x10010000), sym.Value)
}

func TestAssemble_DuplicateLabelIsError(t *testing.T) {
	source := `
start: nop
start: nop
`
	_, err := assembler.Assemble(source, assembler.Options{})
	require.Error(t, err)
}

func TestAssemble_UndefinedLabelIsError(t *testing.T) {
	_, err := assembler.Assemble("beq $t0, $t1, nowhere", assembler.Options{})
	require.Error(t, err)
}

func TestAssemble_UnknownMnemonicIsError(t *testing.T) {
	_, err := assembler.Assemble("frobnicate $t0", assembler.Options{})
	require.Error(t, err)
}

func TestAssemble_SectionCursorsAreIndependent(t *testing.T) {
	source := `
.text
nop
.data
.word 1
.text
nop
`
	result := assembleOrFail(t, source)
	assert.Equal(t, uint32(8), result.TextSize)
	assert.Equal(t, uint32(4), result.DataSize)
}

func TestAssemble_ByteCountEqualsSectionSizes(t *testing.T) {
	// spec.md section 8: total output bytes equals TEXT+DATA sizes.
	source := `
.text
add $t0, $t1, $t2
nop
.data
.word 1, 2, 3
.byte 9
`
	result := assembleOrFail(t, source)
	assert.Equal(t, int(result.TextSize+result.DataSize), len(result.Output))
}

func TestAssemble_LaAlwaysTwoWords(t *testing.T) {
	// spec.md section 9 strategy (b): la always reserves/emits two
	// words, even when the label's low 16 bits are zero.
	source := `
.text
la $t0, aligned
.data
.org 0x10010000
aligned: .word 0
`
	result := assembleOrFail(t, source)
	assert.Equal(t, uint32(8), result.TextSize)
}

func TestAssemble_PassSymmetryForLi(t *testing.T) {
	// The size pass-1 chose must match what pass-2 actually emitted.
	source := "li $t0, 0x10000\nnop"
	result := assembleOrFail(t, source)
	// 0x10000's low 16 bits are zero: a single lui, so 4 + 4 = 8 bytes total.
	assert.Equal(t, uint32(8), result.TextSize)
}

func TestAssemble_LayoutModeUsesOrgShiftedBase(t *testing.T) {
	// A ".org" on an empty section moves its base (context.go's
	// SetOrigin). Layout mode must compute its TEXT/DATA gap from that
	// final base, not the pre-assembly default captured from Options.
	source := `
.text
.org 0x1010
nop
.data
msg: .word 1
`
	result, err := assembler.Assemble(source, assembler.Options{
		TextBase: 0x1000,
		DataBase: 0x2000,
		Layout:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1010), result.TextBase)
	assert.Equal(t, uint32(0x2000), result.DataBase)
	assert.Len(t, result.Output, 4084)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, result.Output[:4])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, result.Output[len(result.Output)-4:])
}

func TestAssemble_NegativeDecimalByteDirective(t *testing.T) {
	// spec.md section 4.3's signed-decimal immediate grammar also
	// applies to directive values, not just instruction operands.
	result := assembleOrFail(t, ".data\n.byte -1, 2")
	assert.Equal(t, []byte{0xFF, 0x02}, result.Output)
}

func TestAssemble_CapacityExceeded(t *testing.T) {
	source := ""
	for i := 0; i < 20; i++ {
		source += "nop\n"
	}
	_, err := assembler.Assemble(source, assembler.Options{
		Limits: config.Limits{MaxSourceBytes: 10, MaxOutputBytes: 4096, MaxSymbols: 256},
	})
	require.Error(t, err)
}
