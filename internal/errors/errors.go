// Package errors formats toolchain errors with source context, the way
// a caret-annotated compiler diagnostic is rendered: a header naming
// the stage and position, the offending source line, and a caret
// pointing at the column.
package errors

import (
	"fmt"
	"strings"

	"github.com/gubiczam/runa/internal/lexer"
)

// Kind distinguishes which pipeline stage raised an error. The zero
// value is never produced by New.
type Kind int

const (
	_ Kind = iota
	Locale
	Lex
	Parse
	Codegen
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Locale:
		return "LocaleError"
	case Lex:
		return "LexError"
	case Parse:
		return "ParseError"
	case Codegen:
		return "CodegenError"
	case Runtime:
		return "RuntimeError"
	default:
		return "Error"
	}
}

// CompilerError is the error type produced by the locale loader's
// keyword validation, the parser, the compiler, and the VM; the lexer
// returns its own *lexer.Error, which runa.Compile converts into a
// CompilerError. Pos is the zero Position when a stage has no source
// location to offer (e.g. a LocaleError raised before any source was
// read).
type CompilerError struct {
	Kind    Kind
	Message string
	Source  string
	Pos     lexer.Position
}

// New creates a CompilerError. Source may be empty; Format degrades to
// a position-only header when it is.
func New(kind Kind, pos lexer.Position, source string, format string, args ...any) *CompilerError {
	return &CompilerError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Source:  source,
		Pos:     pos,
	}
}

// Error implements the error interface using plain (non-colored)
// formatting.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders the error with one line of source context and a
// caret under the offending column. With color true, the caret and
// message are wrapped in ANSI red.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.Pos.Line > 0 {
		fmt.Fprintf(&sb, "%s at %s: ", e.Kind, e.Pos)
	} else {
		fmt.Fprintf(&sb, "%s: ", e.Kind)
	}
	sb.WriteString(e.Message)

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		sb.WriteString("\n")
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+max(e.Pos.Column-1, 0)))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
	}

	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
