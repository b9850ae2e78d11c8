package parser

import (
	"fmt"
	"strings"
)

// Instruction is one parsed assembly instruction line: a mnemonic plus
// its raw (unresolved) operand tokens, in the order spec.md section
// 4.1 item 5 describes (destination first for R/I arithmetic, "rt,
// offset(base)" for memory, "rs, rt, label" for beq/bne, ...).
type Instruction struct {
	Mnemonic string
	Operands []string
	Pos      Position
}

// Directive is one parsed assembler directive: the dot-stripped name
// plus its comma-separated argument tokens.
type Directive struct {
	Name string
	Args []string
	Pos  Position
}

// Line is one logical source line after comment-stripping and label
// extraction: an optional label, and at most one of Instruction or
// Directive. A line with neither is a label-only or blank line.
type Line struct {
	Label       string
	Instruction *Instruction
	Directive   *Directive
	Pos         Position
	RawLine     string
}

// Program is the syntactic result of parsing: the ordered sequence of
// logical lines, in source order. Ordering here is load-bearing: the
// assembler's two passes walk this slice to reproduce spec.md's
// current-address trajectory and to emit bytes in the order the
// source defines them (spec.md section 4.9).
type Program struct {
	Lines []*Line
}

// Parser turns MIPS assembly source text into a Program. It performs
// spec.md section 4.1's lexing/line-splitting and section 4.1 item 5's
// tokenization of mnemonic and operands; it resolves no addresses and
// consults no symbol table — that is the assembler package's job.
type Parser struct {
	tokens       []Token
	pos          int
	currentToken Token
	peekToken    Token
	errors       *ErrorList
	inputLines   []string
}

// NewParser creates a Parser over the given source text.
func NewParser(source string) *Parser {
	lexer := NewLexer(source)
	p := &Parser{
		tokens:     lexer.TokenizeAll(),
		errors:     &ErrorList{},
		inputLines: strings.Split(source, "\n"),
	}
	for _, err := range lexer.Errors().Errors {
		p.errors.AddError(err)
	}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.currentToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	} else {
		p.peekToken = Token{Type: TokenEOF, Pos: p.currentToken.Pos}
	}
}

func (p *Parser) skipNewlines() {
	for p.currentToken.Type == TokenNewline || p.currentToken.Type == TokenComment {
		p.nextToken()
	}
}

func (p *Parser) rawLine(lineNum int) string {
	if lineNum-1 < 0 || lineNum-1 >= len(p.inputLines) {
		return ""
	}
	return strings.TrimSpace(p.inputLines[lineNum-1])
}

// Errors returns the accumulated diagnostics.
func (p *Parser) Errors() *ErrorList {
	return p.errors
}

// Parse walks the full token stream and returns the resulting Program.
// The returned error is always nil: lexical and unexpected-token
// problems are collected in Errors() instead. Operand-shape and symbol
// errors are reported later, in the assembler's two passes, since they
// require context
// this package does not have (the active section, the symbol table).
func (p *Parser) Parse() (*Program, error) {
	program := &Program{}

	for p.currentToken.Type != TokenEOF {
		p.skipNewlines()
		if p.currentToken.Type == TokenEOF {
			break
		}

		line := &Line{Pos: p.currentToken.Pos}

		if p.currentToken.Type == TokenIdentifier && p.peekToken.Type == TokenColon {
			line.Label = p.currentToken.Literal
			p.nextToken() // consume identifier
			p.nextToken() // consume colon
		}

		switch {
		case p.currentToken.Type == TokenDirective:
			line.Directive = p.parseDirective()
		case p.currentToken.Type == TokenIdentifier:
			line.Instruction = p.parseInstruction()
		case p.currentToken.Type == TokenNewline || p.currentToken.Type == TokenComment || p.currentToken.Type == TokenEOF:
			// label-only or blank line
		default:
			p.errors.AddError(NewErrorWithContext(
				p.currentToken.Pos, ErrorLexical,
				fmt.Sprintf("unexpected token: %s", p.currentToken.Type),
				p.rawLine(p.currentToken.Pos.Line),
			))
			p.nextToken()
		}

		line.RawLine = p.rawLine(line.Pos.Line)
		program.Lines = append(program.Lines, line)

		p.skipNewlines()
	}

	return program, nil
}

// parseDirective consumes a directive name and its comma-separated
// argument tokens through end of line.
func (p *Parser) parseDirective() *Directive {
	d := &Directive{Name: strings.TrimPrefix(p.currentToken.Literal, "."), Pos: p.currentToken.Pos}
	p.nextToken() // consume directive name

	for p.currentToken.Type != TokenNewline && p.currentToken.Type != TokenEOF && p.currentToken.Type != TokenComment {
		if p.currentToken.Type == TokenComma {
			p.nextToken()
			continue
		}

		arg := p.currentToken.Literal
		switch {
		case p.currentToken.Type == TokenMinus && p.peekToken.Type == TokenNumber:
			p.nextToken() // consume minus
			arg = "-" + p.currentToken.Literal
		case p.currentToken.Type == TokenString:
			arg = "\"" + p.currentToken.Literal + "\""
		}

		d.Args = append(d.Args, arg)
		p.nextToken()
	}

	return d
}

// parseInstruction consumes a mnemonic and its operand tokens through
// end of line, recombining register/memory operand syntax
// ("$ra", "-4($sp)") into single operand strings.
func (p *Parser) parseInstruction() *Instruction {
	inst := &Instruction{Mnemonic: p.currentToken.Literal, Pos: p.currentToken.Pos}
	p.nextToken() // consume mnemonic

	for p.currentToken.Type != TokenNewline && p.currentToken.Type != TokenEOF && p.currentToken.Type != TokenComment {
		if p.currentToken.Type == TokenComma {
			p.nextToken()
			continue
		}
		operand, ok := p.parseOperand()
		if !ok {
			break
		}
		inst.Operands = append(inst.Operands, operand)
	}

	return inst
}

// parseOperand reads one operand: a register ("$t0"), an immediate
// (optionally negative), a label, or a memory reference
// ("imm($reg)"). It returns the operand as a single string for the
// encoder to interpret, plus false if nothing recognizable was found.
func (p *Parser) parseOperand() (string, bool) {
	var sb strings.Builder

	switch p.currentToken.Type {
	case TokenDollar:
		sb.WriteString("$")
		p.nextToken()
		if p.currentToken.Type == TokenIdentifier || p.currentToken.Type == TokenNumber {
			sb.WriteString(p.currentToken.Literal)
			p.nextToken()
		}
	case TokenMinus:
		sb.WriteString("-")
		p.nextToken()
		if p.currentToken.Type == TokenNumber {
			sb.WriteString(p.currentToken.Literal)
			p.nextToken()
		}
	case TokenNumber, TokenIdentifier:
		sb.WriteString(p.currentToken.Literal)
		p.nextToken()
	default:
		p.errors.AddError(NewErrorWithContext(
			p.currentToken.Pos, ErrorBadOperand,
			fmt.Sprintf("unexpected token in operand: %s", p.currentToken.Type),
			p.rawLine(p.currentToken.Pos.Line),
		))
		p.nextToken()
		return "", false
	}

	// Optional "(base)" memory-operand suffix.
	if p.currentToken.Type == TokenLParen {
		sb.WriteString("(")
		p.nextToken()
		if p.currentToken.Type == TokenDollar {
			sb.WriteString("$")
			p.nextToken()
			if p.currentToken.Type == TokenIdentifier || p.currentToken.Type == TokenNumber {
				sb.WriteString(p.currentToken.Literal)
				p.nextToken()
			}
		}
		if p.currentToken.Type == TokenRParen {
			sb.WriteString(")")
			p.nextToken()
		}
	}

	return sb.String(), true
}
