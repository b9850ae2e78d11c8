package assembler

import (
	"fmt"

	"github.com/cwilkes/mipsasm/config"
	"github.com/cwilkes/mipsasm/encoder"
	"github.com/cwilkes/mipsasm/parser"
)

// Options configures one assembly job. Zero value uses the reference
// section bases and resource limits; Verbose and Layout are per-job
// flags, never process-global state (spec.md section 9).
type Options struct {
	TextBase uint32 // 0 means DefaultTextBase
	DataBase uint32 // 0 means DefaultDataBase
	Layout   bool
	Verbose  bool
	Limits   config.Limits // zero value means config.DefaultConfig().ToLimits()
}

// Result carries everything a successful assembly produced: the
// output bytes, the final section sizes, the resolved symbol table,
// and any non-fatal diagnostics collected along the way.
type Result struct {
	Output    []byte
	TextSize  uint32
	DataSize  uint32
	TextBase  uint32
	DataBase  uint32
	Symbols   *parser.SymbolTable
	Warnings  *parser.ErrorList
}

// Assemble runs the full two-pass pipeline over source and returns the
// assembled image (spec.md section 2's core entry point).
func Assemble(source string, opts Options) (Result, error) {
	limits := opts.Limits
	if limits == (config.Limits{}) {
		limits = config.DefaultConfig().ToLimits()
	}
	if uint(len(source)) > limits.MaxSourceBytes {
		return Result{}, parser.NewError(parser.Position{}, parser.ErrorCapacityExceeded,
			fmt.Sprintf("source exceeds the %d byte limit", limits.MaxSourceBytes))
	}

	textBase := opts.TextBase
	if textBase == 0 {
		textBase = DefaultTextBase
	}
	dataBase := opts.DataBase
	if dataBase == 0 {
		dataBase = DefaultDataBase
	}

	p := parser.NewParser(source)
	program, err := p.Parse()
	if err != nil {
		return Result{}, err
	}
	if p.Errors().HasErrors() {
		return Result{}, p.Errors()
	}

	ctx := NewContext(textBase, dataBase, limits, opts.Verbose)

	ctx.SetPass(PassSize)
	if err := runPass(ctx, program); err != nil {
		return Result{}, err
	}
	if err := ctx.Symbols.ResolveForwardReferences(); err != nil {
		return Result{}, parser.NewError(parser.Position{}, parser.ErrorUnresolvedLabel, err.Error())
	}
	if err := ctx.CheckSymbolCapacity(); err != nil {
		return Result{}, err
	}

	ctx.SetPass(PassEmit)
	if err := runPass(ctx, program); err != nil {
		return Result{}, err
	}

	warnings := &parser.ErrorList{}
	output := ctx.Output
	if opts.Layout {
		output, err = layoutOutput(ctx, ctx.TextBase(), ctx.DataBase(), warnings)
		if err != nil {
			return Result{}, err
		}
	}

	return Result{
		Output:   output,
		TextSize: ctx.TextSize(),
		DataSize: ctx.DataSize(),
		TextBase: ctx.TextBase(),
		DataBase: ctx.DataBase(),
		Symbols:  ctx.Symbols,
		Warnings: warnings,
	}, nil
}

// layoutOutput rebuilds the output image so byte offsets match the
// virtual addresses recorded in the symbol table: TEXT bytes start at
// offset 0, followed by zero-fill up to DataBase-TextBase, followed by
// DATA bytes (spec.md section 9's "section addresses vs. file
// offsets" note, SPEC_FULL.md section 4's layout-mode addition).
func layoutOutput(ctx *Context, textBase, dataBase uint32, warnings *parser.ErrorList) ([]byte, error) {
	textBytes := ctx.TextBytes()
	dataBytes := ctx.DataBytes()

	gapStart := textBase + uint32(len(textBytes))
	if dataBase < gapStart {
		warnings.AddWarning(&parser.Warning{Message: "DATA base overlaps the end of TEXT; emitting without gap-fill"})
		out := make([]byte, 0, len(textBytes)+len(dataBytes))
		out = append(out, textBytes...)
		out = append(out, dataBytes...)
		return out, nil
	}

	gap := dataBase - gapStart
	out := make([]byte, 0, len(textBytes)+int(gap)+len(dataBytes))
	out = append(out, textBytes...)
	out = append(out, make([]byte, gap)...)
	out = append(out, dataBytes...)
	return out, nil
}

// runPass walks every line once, dispatching labels, directives, and
// instructions identically in both passes except for the size-vs-emit
// split inside processInstruction/directive handlers (spec.md section
// 4.1).
func runPass(ctx *Context, program *parser.Program) error {
	for _, line := range program.Lines {
		if line.Label != "" {
			if ctx.Pass() == PassSize {
				if err := ctx.Symbols.Define(line.Label, ctx.CurrentAddress(), line.Pos); err != nil {
					return parser.NewErrorWithContext(line.Pos, parser.ErrorDuplicateLabel, err.Error(), line.RawLine)
				}
			}
		}

		switch {
		case line.Directive != nil:
			if err := processDirective(ctx, line.Directive); err != nil {
				return withContext(err, line)
			}
		case line.Instruction != nil:
			if err := processInstruction(ctx, line.Instruction); err != nil {
				return withContext(err, line)
			}
		}
	}
	return nil
}

func processDirective(ctx *Context, d *parser.Directive) error {
	if ctx.Pass() == PassSize {
		registerReferences(ctx, d.Args, d.Pos)
		return sizeDirective(ctx, d)
	}
	return emitDirective(ctx, d)
}

// registerReferences records every operand token that looks like a
// label (neither a register nor a numeric literal) against the symbol
// table during pass 1, so forward references are tracked and
// tools.Lint can later report labels that were defined but never used.
// A memory operand ("offset(base)") is judged by its offset part.
func registerReferences(ctx *Context, operands []string, pos parser.Position) {
	for _, op := range operands {
		if offset, _, err := encoder.ParseMemoryOperand(op); err == nil {
			op = offset
		}
		if op == "" || op[0] == '$' || op[0] == '"' {
			continue
		}
		if _, err := encoder.ParseImmediate(op); err == nil {
			continue
		}
		if _, err := encoder.ParseRegister(op); err == nil {
			continue
		}
		ctx.Symbols.Reference(op, pos)
	}
}

// processInstruction sizes (pass 1) or encodes and emits (pass 2) one
// instruction line, including pseudo-instruction expansion.
func processInstruction(ctx *Context, inst *parser.Instruction) error {
	if ctx.Pass() == PassSize {
		registerReferences(ctx, inst.Operands, inst.Pos)
		n, err := encoder.Size(inst.Mnemonic, inst.Operands)
		if err != nil {
			return parser.NewError(inst.Pos, parser.ErrorUnknownMnemonic, err.Error())
		}
		return ctx.Advance(uint32(n))
	}

	addr := ctx.CurrentAddress()
	words, err := encoder.Encode(inst.Mnemonic, inst.Operands, addr, ctx.Symbols)
	if err != nil {
		return parser.NewError(inst.Pos, parser.ErrorBadOperand, err.Error())
	}
	for _, w := range words {
		if err := ctx.EmitWord(w); err != nil {
			return err
		}
	}
	return nil
}

func withContext(err error, line *parser.Line) error {
	if perr, ok := err.(*parser.Error); ok && perr.Context == "" {
		perr.Context = line.RawLine
	}
	return err
}
