package parser_test

import (
	"testing"

	"github.com/cwilkes/mipsasm/parser"
)

func TestLexer_DirectiveTokenIncludesLeadingDot(t *testing.T) {
	// Regression test for a lexer bug where the directive-reading path
	// left the leading '.' unconsumed, producing an empty literal for
	// every directive token.
	lex := parser.NewLexer(".text")
	tok := lex.NextToken()
	if tok.Type != parser.TokenDirective {
		t.Fatalf("got token type %s, want DIRECTIVE", tok.Type)
	}
	if tok.Literal != ".text" {
		t.Errorf("got literal %q, want %q", tok.Literal, ".text")
	}
}

func TestLexer_DirectiveWithUnderscoreAndDigits(t *testing.T) {
	lex := parser.NewLexer(".my_dir2")
	tok := lex.NextToken()
	if tok.Literal != ".my_dir2" {
		t.Errorf("got literal %q, want %q", tok.Literal, ".my_dir2")
	}
}

func TestLexer_NumbersDecimalAndHex(t *testing.T) {
	lex := parser.NewLexer("42 0x2A")
	first := lex.NextToken()
	if first.Type != parser.TokenNumber || first.Literal != "42" {
		t.Errorf("got %v, want NUMBER(42)", first)
	}
	second := lex.NextToken()
	if second.Type != parser.TokenNumber || second.Literal != "0x2A" {
		t.Errorf("got %v, want NUMBER(0x2A)", second)
	}
}

func TestLexer_UnterminatedStringIsLexicalError(t *testing.T) {
	lex := parser.NewLexer(`"unterminated`)
	lex.NextToken()
	if !lex.Errors().HasErrors() {
		t.Error("expected a lexical error for an unterminated string")
	}
}

func TestLexer_StringHasNoEscapeProcessing(t *testing.T) {
	// spec.md section 6: quoted text is taken verbatim with no escape
	// processing.
	lex := parser.NewLexer(`"a\nb"`)
	tok := lex.NextToken()
	if tok.Type != parser.TokenString {
		t.Fatalf("got token type %s, want STRING", tok.Type)
	}
	if tok.Literal != `a\nb` {
		t.Errorf("got literal %q, want %q (no escape processing)", tok.Literal, `a\nb`)
	}
}

func TestLexer_CommentsAreDiscarded(t *testing.T) {
	lex := parser.NewLexer("nop // trailing comment\n")
	tok := lex.NextToken()
	if tok.Type != parser.TokenIdentifier || tok.Literal != "nop" {
		t.Fatalf("got %v, want IDENTIFIER(nop)", tok)
	}
	tok = lex.NextToken()
	if tok.Type != parser.TokenNewline {
		t.Errorf("got %v, want NEWLINE (comment should be discarded)", tok)
	}
}

func TestLexer_RegisterDollarSign(t *testing.T) {
	lex := parser.NewLexer("$t0")
	tok := lex.NextToken()
	if tok.Type != parser.TokenDollar {
		t.Fatalf("got %v, want DOLLAR", tok)
	}
	tok = lex.NextToken()
	if tok.Type != parser.TokenIdentifier || tok.Literal != "t0" {
		t.Errorf("got %v, want IDENTIFIER(t0)", tok)
	}
}
