package bytecode

import (
	"github.com/gubiczam/runa/internal/ast"
	"github.com/gubiczam/runa/internal/errors"
	"github.com/gubiczam/runa/internal/lexer"
)

func (fc *fnCompiler) compileBlock(b *ast.Block) error {
	for _, s := range b.Stmts {
		if err := fc.compileStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (fc *fnCompiler) compileStmt(s ast.Stmt) error {
	switch st := s.(type) {
	case *ast.LetStmt:
		if err := fc.compileExpr(st.Decl.Init); err != nil {
			return err
		}
		idx, err := fc.allocLocal(st.Decl.Name)
		if err != nil {
			return err
		}
		fc.chunk.emit(Instruction{Op: OpStoreLocal, IntArg: int64(idx)})
		return nil

	case *ast.AssignStmt:
		if err := fc.compileExpr(st.Value); err != nil {
			return err
		}
		idx, ok := fc.getLocal(st.Name)
		if !ok {
			return errors.New(errors.Codegen, lexer.Position{}, fc.source,
				"assignment to undeclared variable %q", st.Name)
		}
		fc.chunk.emit(Instruction{Op: OpStoreLocal, IntArg: int64(idx)})
		return nil

	case *ast.ReturnStmt:
		if st.Value == nil {
			fc.chunk.emit(Instruction{Op: OpPushVoid})
			fc.chunk.emit(Instruction{Op: OpReturn})
			return nil
		}
		if err := fc.compileExpr(st.Value); err != nil {
			return err
		}
		fc.chunk.emit(Instruction{Op: OpReturn})
		return nil

	case *ast.IfStmt:
		return fc.compileIf(st)

	case *ast.WhileStmt:
		return fc.compileWhile(st)

	case *ast.ForInStmt:
		return fc.compileForIn(st)

	case *ast.BreakStmt:
		return fc.compileBreak()

	case *ast.ContinueStmt:
		return fc.compileContinue()

	case *ast.ExprStmt:
		if err := fc.compileExpr(st.Expr); err != nil {
			return err
		}
		fc.chunk.emit(Instruction{Op: OpPop})
		return nil

	default:
		return errors.New(errors.Codegen, lexer.Position{}, fc.source, "unsupported statement")
	}
}

func (fc *fnCompiler) compileIf(st *ast.IfStmt) error {
	if err := fc.compileExpr(st.Cond); err != nil {
		return err
	}
	jf := fc.chunk.emit(Instruction{Op: OpJumpIfFalse})

	if err := fc.compileBlock(st.Then); err != nil {
		return err
	}

	if st.Else != nil {
		je := fc.chunk.emit(Instruction{Op: OpJump})
		fc.chunk.patchJumpTarget(jf, len(fc.chunk.Code))
		if err := fc.compileBlock(st.Else); err != nil {
			return err
		}
		fc.chunk.patchJumpTarget(je, len(fc.chunk.Code))
	} else {
		fc.chunk.patchJumpTarget(jf, len(fc.chunk.Code))
	}
	return nil
}

func (fc *fnCompiler) compileWhile(st *ast.WhileStmt) error {
	start := len(fc.chunk.Code)
	if err := fc.compileExpr(st.Cond); err != nil {
		return err
	}
	jf := fc.chunk.emit(Instruction{Op: OpJumpIfFalse})

	fc.loops = append(fc.loops, &loopContext{start: start})
	if err := fc.compileBlock(st.Body); err != nil {
		return err
	}
	fc.chunk.emit(Instruction{Op: OpJump, IntArg: int64(start)})
	end := len(fc.chunk.Code)
	fc.chunk.patchJumpTarget(jf, end)

	lp := fc.popLoop()
	for _, pos := range lp.breaks {
		fc.chunk.patchJumpTarget(pos, end)
	}
	for _, pos := range lp.continues {
		fc.chunk.patchJumpTarget(pos, start)
	}
	return nil
}

// compileForIn implements a deterministic for-in lowering: the
// iterable and the loop index live in anonymous synthetic slots, the
// header re-checks i < len(arr) each pass, and the loop variable is
// re-bound from arr[i] on every iteration.
func (fc *fnCompiler) compileForIn(st *ast.ForInStmt) error {
	if err := fc.compileExpr(st.Iter); err != nil {
		return err
	}
	arrSlot := fc.allocSyntheticLocal()
	fc.chunk.emit(Instruction{Op: OpStoreLocal, IntArg: int64(arrSlot)})

	idxSlot := fc.allocSyntheticLocal()
	fc.chunk.emit(Instruction{Op: OpPushInt, IntArg: 0})
	fc.chunk.emit(Instruction{Op: OpStoreLocal, IntArg: int64(idxSlot)})

	start := len(fc.chunk.Code)
	fc.chunk.emit(Instruction{Op: OpLoadLocal, IntArg: int64(idxSlot)})
	fc.chunk.emit(Instruction{Op: OpLoadLocal, IntArg: int64(arrSlot)})
	fc.chunk.emit(Instruction{Op: OpCallName, StrArg: "len", IntArg: 1})
	fc.chunk.emit(Instruction{Op: OpLt})
	jf := fc.chunk.emit(Instruction{Op: OpJumpIfFalse})

	fc.loops = append(fc.loops, &loopContext{start: start})

	varSlot, err := fc.allocLocal(st.Var)
	if err != nil {
		return err
	}
	fc.chunk.emit(Instruction{Op: OpLoadLocal, IntArg: int64(arrSlot)})
	fc.chunk.emit(Instruction{Op: OpLoadLocal, IntArg: int64(idxSlot)})
	fc.chunk.emit(Instruction{Op: OpIndexGet})
	fc.chunk.emit(Instruction{Op: OpStoreLocal, IntArg: int64(varSlot)})

	if err := fc.compileBlock(st.Body); err != nil {
		return err
	}

	fc.chunk.emit(Instruction{Op: OpLoadLocal, IntArg: int64(idxSlot)})
	fc.chunk.emit(Instruction{Op: OpPushInt, IntArg: 1})
	fc.chunk.emit(Instruction{Op: OpAdd})
	fc.chunk.emit(Instruction{Op: OpStoreLocal, IntArg: int64(idxSlot)})
	fc.chunk.emit(Instruction{Op: OpJump, IntArg: int64(start)})

	end := len(fc.chunk.Code)
	fc.chunk.patchJumpTarget(jf, end)

	lp := fc.popLoop()
	for _, pos := range lp.breaks {
		fc.chunk.patchJumpTarget(pos, end)
	}
	for _, pos := range lp.continues {
		fc.chunk.patchJumpTarget(pos, start)
	}
	return nil
}

func (fc *fnCompiler) compileBreak() error {
	lp := fc.currentLoop()
	if lp == nil {
		return errors.New(errors.Codegen, lexer.Position{}, fc.source, "break outside any loop")
	}
	pos := fc.chunk.emit(Instruction{Op: OpJump})
	lp.breaks = append(lp.breaks, pos)
	return nil
}

func (fc *fnCompiler) compileContinue() error {
	lp := fc.currentLoop()
	if lp == nil {
		return errors.New(errors.Codegen, lexer.Position{}, fc.source, "continue outside any loop")
	}
	pos := fc.chunk.emit(Instruction{Op: OpJump})
	lp.continues = append(lp.continues, pos)
	return nil
}

func (fc *fnCompiler) currentLoop() *loopContext {
	if len(fc.loops) == 0 {
		return nil
	}
	return fc.loops[len(fc.loops)-1]
}

func (fc *fnCompiler) popLoop() *loopContext {
	lp := fc.loops[len(fc.loops)-1]
	fc.loops = fc.loops[:len(fc.loops)-1]
	return lp
}
