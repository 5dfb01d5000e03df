// Package runa wires internal/lexer, internal/parser, internal/bytecode,
// and internal/locale behind a handful of calls, so
// the four-stage pipeline is usable from a test, the CLI, or a future
// embedder without re-threading lexer -> parser -> codegen -> VM by
// hand every time.
package runa

import (
	"io"

	"github.com/gubiczam/runa/internal/bytecode"
	"github.com/gubiczam/runa/internal/errors"
	"github.com/gubiczam/runa/internal/lexer"
	"github.com/gubiczam/runa/internal/locale"
	"github.com/gubiczam/runa/internal/parser"
)

// Compile runs lex -> parse -> codegen over source under pack's keyword
// table and returns the compiled Program. The first error from any
// stage is returned as a *errors.CompilerError: parser and compiler
// errors already are one, and a *lexer.Error is converted.
func Compile(source string, pack *locale.Pack) (*bytecode.Program, error) {
	tokens, err := lexer.Lex(source, pack.Keywords)
	if err != nil {
		return nil, asCompilerError(errors.Lex, err, source)
	}

	prog, err := parser.Parse(tokens, source)
	if err != nil {
		return nil, err
	}

	return bytecode.Compile(prog, source)
}

// Run constructs a VM bound to stdout and executes entry with no
// arguments.
func Run(program *bytecode.Program, entry string, stdout io.Writer) (bytecode.Value, error) {
	vm := bytecode.NewVM(program, stdout)
	return vm.Run(entry)
}

// RunSource composes Compile and Run for the common case: compile
// source under pack, then run the first of pack's EntryCandidates that
// the program actually defines. A pack with no matching entry is a
// RuntimeError rather than a silent no-op.
func RunSource(source string, pack *locale.Pack, stdout io.Writer) (bytecode.Value, error) {
	program, err := Compile(source, pack)
	if err != nil {
		return bytecode.VoidValue, err
	}

	entry, err := resolveEntry(program, pack)
	if err != nil {
		return bytecode.VoidValue, err
	}

	return Run(program, entry, stdout)
}

// resolveEntry tries each of pack's EntryCandidates in order against
// program's function table, falling back to a RuntimeError naming
// every candidate tried.
func resolveEntry(program *bytecode.Program, pack *locale.Pack) (string, error) {
	for _, name := range pack.EntryCandidates() {
		if _, ok := program.Lookup(name); ok {
			return name, nil
		}
	}
	return "", errors.New(errors.Runtime, lexer.Position{}, "",
		"no entry function found among candidates %v", pack.EntryCandidates())
}

// asCompilerError normalises a *lexer.Error into the shared
// *errors.CompilerError shape so every stage's failure looks the same
// to a caller that only wants to print or errors.As switch on Kind.
func asCompilerError(kind errors.Kind, err error, source string) error {
	if lexErr, ok := err.(*lexer.Error); ok {
		return errors.New(kind, lexErr.Pos, source, "%s", lexErr.Message)
	}
	return err
}
