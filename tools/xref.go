package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwilkes/mipsasm/assembler"
	"github.com/cwilkes/mipsasm/parser"
)

// XRefEntry is one symbol's cross-reference record: where it was
// defined and every position it was referenced from.
type XRefEntry struct {
	Name       string
	Defined    bool
	Value      uint32
	Definition parser.Position
	References []parser.Position
}

// CrossReference builds a name-sorted cross-reference table from a
// successfully assembled Result's symbol table.
func CrossReference(result *assembler.Result) []*XRefEntry {
	all := result.Symbols.GetAllSymbols()
	entries := make([]*XRefEntry, 0, len(all))
	for _, sym := range all {
		entries = append(entries, &XRefEntry{
			Name:       sym.Name,
			Defined:    sym.Defined,
			Value:      sym.Value,
			Definition: sym.Pos,
			References: sym.References,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// XRefReport renders a CrossReference table as a text report, in the
// style of the reference's symbol table dump.
func XRefReport(entries []*XRefEntry) string {
	var sb strings.Builder

	sb.WriteString("Symbol Cross-Reference\n")
	sb.WriteString("=======================\n\n")

	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%-24s", e.Name))
		if e.Defined {
			sb.WriteString(fmt.Sprintf(" = 0x%08X  (line %d)\n", e.Value, e.Definition.Line))
		} else {
			sb.WriteString(" = (undefined)\n")
		}

		if len(e.References) == 0 {
			sb.WriteString("  referenced: (never)\n")
			continue
		}
		lines := make([]string, len(e.References))
		for i, pos := range e.References {
			lines[i] = fmt.Sprintf("%d", pos.Line)
		}
		sb.WriteString(fmt.Sprintf("  referenced: line(s) %s\n", strings.Join(lines, ", ")))
	}

	defined, undefined := 0, 0
	for _, e := range entries {
		if e.Defined {
			defined++
		} else {
			undefined++
		}
	}
	sb.WriteString("\nSummary\n")
	sb.WriteString("=======\n")
	sb.WriteString(fmt.Sprintf("Total symbols: %d\n", len(entries)))
	sb.WriteString(fmt.Sprintf("Defined:       %d\n", defined))
	sb.WriteString(fmt.Sprintf("Undefined:     %d\n", undefined))

	return sb.String()
}
