// Package assembler drives the two-pass MIPS assembly process: section
// and address bookkeeping, directive interpretation, pseudo-instruction
// expansion, and instruction encoding, producing a flat binary image.
package assembler

import (
	"fmt"

	"github.com/cwilkes/mipsasm/config"
	"github.com/cwilkes/mipsasm/parser"
)

// SectionTag identifies an output section.
type SectionTag int

const (
	Text SectionTag = iota
	Data
)

func (t SectionTag) String() string {
	if t == Text {
		return "TEXT"
	}
	return "DATA"
}

// DefaultTextBase and DefaultDataBase are the reference section base
// addresses (spec.md section 3), used when Options doesn't override
// them.
const (
	DefaultTextBase = 0x00400000
	DefaultDataBase = 0x10010000
)

// Section is a tagged output region with a base address and a running
// size; the current address for the active section is always
// Base+Size.
type Section struct {
	Tag  SectionTag
	Base uint32
	Size uint32
}

// CurrentAddress returns this section's current address.
func (s *Section) CurrentAddress() uint32 {
	return s.Base + s.Size
}

// Pass identifies which of the two passes is executing.
type Pass int

const (
	PassSize Pass = 1
	PassEmit Pass = 2
)

// Context is the per-job assembler state: the output buffer and
// byte-index cursor, the two independently-tracked sections, the
// active section, the symbol table, the current pass, and the
// resource limits in force (spec.md section 3 and section 5).
type Context struct {
	Output  []byte
	Symbols *parser.SymbolTable

	text    Section
	data    Section
	active  SectionTag
	pass    Pass
	limits  config.Limits
	verbose bool

	// textBytes and dataBytes mirror Output split by section, kept
	// alongside the source-order buffer so Options.Layout can rebuild
	// a gap-filled image without a third pass (SPEC_FULL.md section 4).
	textBytes []byte
	dataBytes []byte

	// initialTextBase and initialDataBase are the bases the job started
	// with; SetPass restores them so a base moved by ".org" in pass 1
	// does not leak into pass 2.
	initialTextBase uint32
	initialDataBase uint32
}

// NewContext creates a Context with the given section bases and
// resource limits. The output buffer starts empty; Emit grows it up to
// limits.MaxOutputBytes.
func NewContext(textBase, dataBase uint32, limits config.Limits, verbose bool) *Context {
	return &Context{
		Symbols: parser.NewSymbolTable(),
		text:    Section{Tag: Text, Base: textBase},
		data:    Section{Tag: Data, Base: dataBase},
		active:  Text,
		pass:    PassSize,
		limits:  limits,
		verbose: verbose,

		initialTextBase: textBase,
		initialDataBase: dataBase,
	}
}

// SetPass switches the context to the given pass and resets the
// output buffer and both section cursors, so pass 2 starts from the
// same state pass 1 did (spec.md section 3's current-address
// trajectory invariant).
func (c *Context) SetPass(pass Pass) {
	c.pass = pass
	c.text.Base = c.initialTextBase
	c.data.Base = c.initialDataBase
	c.text.Size = 0
	c.data.Size = 0
	c.active = Text
	if pass == PassEmit {
		c.Output = make([]byte, 0, c.limits.MaxOutputBytes)
		c.textBytes = nil
		c.dataBytes = nil
	}
}

// Pass reports the currently executing pass.
func (c *Context) Pass() Pass { return c.pass }

// Verbose reports whether verbose diagnostics were requested.
func (c *Context) Verbose() bool { return c.verbose }

// ActiveSection returns the section currently receiving emits.
func (c *Context) ActiveSection() *Section {
	if c.active == Text {
		return &c.text
	}
	return &c.data
}

// SwitchSection makes tag the active section and returns its current
// address, restoring that section's own base+size cursor (spec.md
// section 3: TEXT/DATA cursors are independent).
func (c *Context) SwitchSection(tag SectionTag) uint32 {
	c.active = tag
	return c.ActiveSection().CurrentAddress()
}

// SetOrigin implements ".org N" on the active section: the base is set
// to n only if the section is still empty, and in all cases the
// current address becomes base+size (spec.md section 4.8).
func (c *Context) SetOrigin(n uint32) uint32 {
	sec := c.ActiveSection()
	if sec.Size == 0 {
		sec.Base = n
	}
	return sec.CurrentAddress()
}

// CurrentAddress returns the active section's current address.
func (c *Context) CurrentAddress() uint32 {
	return c.ActiveSection().CurrentAddress()
}

// TextSize and DataSize report each section's final size, used by
// Result and by tools.format to locate DATA-relative addresses in
// concatenated output.
func (c *Context) TextSize() uint32 { return c.text.Size }
func (c *Context) DataSize() uint32 { return c.data.Size }
func (c *Context) TextBase() uint32 { return c.text.Base }
func (c *Context) DataBase() uint32 { return c.data.Base }

// Advance moves the active section's cursor forward by n bytes without
// writing anything, used by pass 1's size estimator.
func (c *Context) Advance(n uint32) error {
	sec := c.ActiveSection()
	if sec.CurrentAddress()+n < sec.CurrentAddress() {
		return capacityError("address overflow while advancing the %s cursor", sec.Tag)
	}
	sec.Size += n
	return nil
}

// Emit appends bytes to the output buffer and advances the active
// section's cursor by the same amount (spec.md section 3's "every
// emit" invariant). Only valid during PassEmit.
func (c *Context) Emit(bytes []byte) error {
	if uint32(len(c.Output)+len(bytes)) > c.limits.MaxOutputBytes {
		return capacityError("output buffer exceeds the %d byte limit", c.limits.MaxOutputBytes)
	}
	c.Output = append(c.Output, bytes...)
	c.ActiveSection().Size += uint32(len(bytes))
	if c.active == Text {
		c.textBytes = append(c.textBytes, bytes...)
	} else {
		c.dataBytes = append(c.dataBytes, bytes...)
	}
	return nil
}

// TextBytes and DataBytes return the bytes emitted while TEXT/DATA was
// the active section, in source order, regardless of interleaving —
// used by Options.Layout to lay sections out at their virtual offsets.
func (c *Context) TextBytes() []byte { return c.textBytes }
func (c *Context) DataBytes() []byte { return c.dataBytes }

// EmitWord appends a 32-bit big-endian word (spec.md section 3:
// instruction words and .word/.half/.short are big-endian).
func (c *Context) EmitWord(w uint32) error {
	return c.Emit([]byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)})
}

// EmitHalf appends a 16-bit big-endian half-word.
func (c *Context) EmitHalf(h uint16) error {
	return c.Emit([]byte{byte(h >> 8), byte(h)})
}

// EmitByte appends a single byte.
func (c *Context) EmitByte(b byte) error {
	return c.Emit([]byte{b})
}

// CheckSymbolCapacity enforces the static symbol-table size bound
// (spec.md section 5).
func (c *Context) CheckSymbolCapacity() error {
	if c.Symbols.Len() > c.limits.MaxSymbols {
		return capacityError("symbol table exceeds the %d entry limit", c.limits.MaxSymbols)
	}
	return nil
}

func capacityError(format string, args ...any) error {
	return &parser.Error{Kind: parser.ErrorCapacityExceeded, Message: fmt.Sprintf(format, args...)}
}
