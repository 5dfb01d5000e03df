package bytecode

import (
	"github.com/gubiczam/runa/internal/ast"
	"github.com/gubiczam/runa/internal/errors"
	"github.com/gubiczam/runa/internal/lexer"
)

var binOpcode = map[ast.BinOp]OpCode{
	ast.Add:  OpAdd,
	ast.Sub:  OpSub,
	ast.Mul:  OpMul,
	ast.Div:  OpDiv,
	ast.OpEq: OpEq,
	ast.OpNe: OpNe,
	ast.OpLt: OpLt,
	ast.OpLe: OpLe,
	ast.OpGt: OpGt,
	ast.OpGe: OpGe,
}

func (fc *fnCompiler) compileExpr(e ast.Expr) error {
	switch ex := e.(type) {
	case *ast.Ident:
		idx, ok := fc.getLocal(ex.Name)
		if !ok {
			return errors.New(errors.Codegen, lexer.Position{}, fc.source,
				"reference to undeclared variable %q", ex.Name)
		}
		fc.chunk.emit(Instruction{Op: OpLoadLocal, IntArg: int64(idx)})
		return nil

	case *ast.IntLit:
		fc.chunk.emit(Instruction{Op: OpPushInt, IntArg: ex.Value})
		return nil

	case *ast.StrLit:
		fc.chunk.emit(Instruction{Op: OpPushStr, StrArg: ex.Value})
		return nil

	case *ast.BoolLit:
		fc.chunk.emit(Instruction{Op: OpPushBool, BoolArg: ex.Value})
		return nil

	case *ast.ArrayLit:
		for _, el := range ex.Elements {
			if err := fc.compileExpr(el); err != nil {
				return err
			}
		}
		fc.chunk.emit(Instruction{Op: OpMakeArray, IntArg: int64(len(ex.Elements))})
		return nil

	case *ast.IndexExpr:
		if err := fc.compileExpr(ex.Target); err != nil {
			return err
		}
		if err := fc.compileExpr(ex.Index); err != nil {
			return err
		}
		fc.chunk.emit(Instruction{Op: OpIndexGet})
		return nil

	case *ast.CallExpr:
		callee, ok := ex.Callee.(*ast.Ident)
		if !ok {
			return errors.New(errors.Codegen, lexer.Position{}, fc.source,
				"call target must be a plain name")
		}
		for _, arg := range ex.Args {
			if err := fc.compileExpr(arg); err != nil {
				return err
			}
		}
		fc.chunk.emit(Instruction{Op: OpCallName, StrArg: callee.Name, IntArg: int64(len(ex.Args))})
		return nil

	case *ast.BinaryExpr:
		if err := fc.compileExpr(ex.Left); err != nil {
			return err
		}
		if err := fc.compileExpr(ex.Right); err != nil {
			return err
		}
		op, ok := binOpcode[ex.Op]
		if !ok {
			return errors.New(errors.Codegen, lexer.Position{}, fc.source,
				"unsupported operator %q", ex.Op.String())
		}
		fc.chunk.emit(Instruction{Op: op})
		return nil

	case *ast.GroupExpr:
		return fc.compileExpr(ex.Inner)

	default:
		return errors.New(errors.Codegen, lexer.Position{}, fc.source, "unsupported expression")
	}
}
