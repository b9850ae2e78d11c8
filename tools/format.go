package tools

import (
	"fmt"
	"strings"

	"github.com/cwilkes/mipsasm/assembler"
	"github.com/cwilkes/mipsasm/encoder"
)

// FormatOptions controls the listing formatter's column layout.
type FormatOptions struct {
	AddressColumn int // column for the "0x00400000:" address prefix
	BytesColumn   int // column for the raw hex bytes
	MnemonicColumn int // column for the decoded mnemonic/operands
}

// DefaultFormatOptions returns the reference column widths.
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{
		AddressColumn:  0,
		BytesColumn:    12,
		MnemonicColumn: 34,
	}
}

// Listing renders a successfully assembled Result as an address/bytes/
// disassembly listing, one line per instruction word. Only the TEXT
// region is disassembled; DATA is rendered as raw hex (spec.md has no
// notion of typed data once assembled).
func Listing(result *assembler.Result, opts *FormatOptions) string {
	if opts == nil {
		opts = DefaultFormatOptions()
	}

	var sb strings.Builder
	textBytes := result.Output[:result.TextSize]
	addr := result.TextBase

	for i := 0; i+4 <= len(textBytes); i += 4 {
		word := uint32(textBytes[i])<<24 | uint32(textBytes[i+1])<<16 | uint32(textBytes[i+2])<<8 | uint32(textBytes[i+3])
		writeListingLine(&sb, opts, addr, textBytes[i:i+4], word)
		addr += 4
	}

	if int(result.DataSize) > 0 {
		sb.WriteString("\n")
		dataBytes := result.Output[result.TextSize:]
		writeDataListing(&sb, result.DataBase, dataBytes)
	}

	return sb.String()
}

func writeListingLine(sb *strings.Builder, opts *FormatOptions, addr uint32, raw []byte, word uint32) {
	line := strings.Builder{}
	line.WriteString(fmt.Sprintf("0x%08x:", addr))
	padToColumn(&line, opts.BytesColumn)
	line.WriteString(fmt.Sprintf("%02x %02x %02x %02x", raw[0], raw[1], raw[2], raw[3]))
	padToColumn(&line, opts.MnemonicColumn)

	decoded, err := encoder.Decode(word, addr)
	if err != nil {
		line.WriteString(fmt.Sprintf("(unrecognized: %v)", err))
	} else {
		line.WriteString(decoded.String())
	}

	sb.WriteString(line.String())
	sb.WriteString("\n")
}

func writeDataListing(sb *strings.Builder, base uint32, data []byte) {
	const perLine = 8
	for i := 0; i < len(data); i += perLine {
		end := i + perLine
		if end > len(data) {
			end = len(data)
		}
		sb.WriteString(fmt.Sprintf("0x%08x:", base+uint32(i)))
		for _, b := range data[i:end] {
			sb.WriteString(fmt.Sprintf(" %02x", b))
		}
		sb.WriteString("\n")
	}
}

func padToColumn(sb *strings.Builder, column int) {
	current := sb.Len()
	if current < column {
		sb.WriteString(strings.Repeat(" ", column-current))
	} else {
		sb.WriteString(" ")
	}
}
