package bytecode

import (
	"github.com/gubiczam/runa/internal/ast"
	"github.com/gubiczam/runa/internal/errors"
	"github.com/gubiczam/runa/internal/lexer"
)

// Compile lowers a parsed program into a *Program, flattening class
// methods into "Class.method"-named functions and ignoring top-level
// Let items (this is a preserved quirk of the source language, not an
// oversight in this port).
func Compile(prog *ast.Program, source string) (*Program, error) {
	c := &compiler{source: source}
	for _, item := range prog.Items {
		switch it := item.(type) {
		case *ast.FuncDecl:
			fn, err := c.compileFunc(it.Name, it)
			if err != nil {
				return nil, err
			}
			c.functions = append(c.functions, *fn)
		case *ast.ClassDecl:
			for _, m := range it.Methods {
				fn, err := c.compileFunc(it.Name+"."+m.Name, m)
				if err != nil {
					return nil, err
				}
				c.functions = append(c.functions, *fn)
			}
		case *ast.LetDecl:
			// Top-level lets are inert: no initializer code is emitted
			// and the name is not visible to any function.
		}
	}
	for i, fn := range c.functions {
		for _, prev := range c.functions[:i] {
			if prev.Name == fn.Name {
				return nil, errors.New(errors.Codegen, lexer.Position{}, source,
					"function %q is declared more than once", fn.Name)
			}
		}
	}
	return NewProgram(c.functions), nil
}

// compiler accumulates compiled functions across the whole program.
type compiler struct {
	source    string
	functions []FunctionIR
}

// loopContext tracks the backpatch sites for one enclosing while/for-in
// loop.
type loopContext struct {
	start     int
	breaks    []int
	continues []int
}

// fnCompiler compiles a single function body. locals maps a source
// name to its dense slot index; nextLocal is the next free slot.
type fnCompiler struct {
	source    string
	chunk     Chunk
	locals    map[string]int
	nextLocal int
	loops     []*loopContext
}

func (c *compiler) compileFunc(publicName string, decl *ast.FuncDecl) (*FunctionIR, error) {
	fc := &fnCompiler{source: c.source, locals: make(map[string]int)}
	for i, param := range decl.Params {
		if err := fc.checkAssignableName(param); err != nil {
			return nil, err
		}
		fc.locals[param] = i
		if i+1 > fc.nextLocal {
			fc.nextLocal = i + 1
		}
	}

	if err := fc.compileBlock(decl.Body); err != nil {
		return nil, err
	}
	fc.chunk.emit(Instruction{Op: OpPushVoid})
	fc.chunk.emit(Instruction{Op: OpReturn})

	return &FunctionIR{
		Name:       publicName,
		Arity:      len(decl.Params),
		LocalCount: fc.nextLocal,
		Chunk:      fc.chunk,
	}, nil
}

// allocLocal is idempotent on name reuse: a repeated `let x = ...`
// inside one function body reuses x's existing slot rather than
// shadowing it (the emitter has no block scoping).
func (fc *fnCompiler) allocLocal(name string) (int, error) {
	if err := fc.checkAssignableName(name); err != nil {
		return 0, err
	}
	if idx, ok := fc.locals[name]; ok {
		return idx, nil
	}
	idx := fc.nextLocal
	fc.locals[name] = idx
	fc.nextLocal++
	return idx, nil
}

func (fc *fnCompiler) getLocal(name string) (int, bool) {
	idx, ok := fc.locals[name]
	return idx, ok
}

// checkAssignableName rejects the "__"-prefixed names reserved for
// synthetic for-in slots: those slots are allocated through
// allocSyntheticLocal, never through this path.
func (fc *fnCompiler) checkAssignableName(name string) error {
	if len(name) >= 2 && name[0] == '_' && name[1] == '_' {
		return errors.New(errors.Codegen, lexer.Position{}, fc.source,
			"identifier %q is reserved for internal use", name)
	}
	return nil
}

// allocSyntheticLocal allocates a fresh slot outside the name-indexed
// table, used for the for-in loop's hidden array/index variables.
func (fc *fnCompiler) allocSyntheticLocal() int {
	idx := fc.nextLocal
	fc.nextLocal++
	return idx
}
