package parser

import (
	"fmt"
	"strings"
)

// Position identifies a line/column in the source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// ErrorKind categorizes a diagnostic, matching the error taxonomy the
// core assembler is expected to report.
type ErrorKind int

const (
	ErrorLexical ErrorKind = iota
	ErrorUnknownMnemonic
	ErrorBadOperand
	ErrorUnresolvedLabel
	ErrorDuplicateLabel
	ErrorCapacityExceeded
)

// Error represents a diagnostic with position information and, where
// available, the offending source line.
type Error struct {
	Pos     Position
	Message string
	Context string // the source line the error occurred on
	Kind    ErrorKind
}

// NewError creates a new diagnostic without source context.
func NewError(pos Position, kind ErrorKind, message string) *Error {
	return &Error{
		Pos:     pos,
		Message: message,
		Kind:    kind,
	}
}

// NewErrorWithContext creates a new diagnostic carrying the source line.
func NewErrorWithContext(pos Position, kind ErrorKind, message, context string) *Error {
	return &Error{
		Pos:     pos,
		Message: message,
		Context: context,
		Kind:    kind,
	}
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: error: %s\n", e.Pos, e.Message))
	if e.Context != "" {
		sb.WriteString(fmt.Sprintf("    %s\n", e.Context))
	}
	return sb.String()
}

// Warning represents a non-fatal diagnostic.
type Warning struct {
	Pos     Position
	Message string
}

func (w *Warning) String() string {
	return fmt.Sprintf("%s: warning: %s", w.Pos, w.Message)
}

// ErrorList collects the errors and warnings raised during one assembly job.
type ErrorList struct {
	Errors   []*Error
	Warnings []*Warning
}

func (el *ErrorList) AddError(err *Error) {
	el.Errors = append(el.Errors, err)
}

func (el *ErrorList) AddWarning(warn *Warning) {
	el.Warnings = append(el.Warnings, warn)
}

func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}
	var sb strings.Builder
	for _, err := range el.Errors {
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// PrintWarnings renders all collected warnings, one per line.
func (el *ErrorList) PrintWarnings() string {
	if len(el.Warnings) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, warn := range el.Warnings {
		sb.WriteString(warn.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
