package bytecode

import (
	"fmt"
	"strings"
)

// Disassemble renders a Program as one listing per function, in the
// teacher's "addr  OP  operand" column layout, for the --disasm CLI
// flag and for snapshot tests that pin codegen output.
func Disassemble(p *Program) string {
	var sb strings.Builder
	for i, fn := range p.Functions {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "func %s/%d (locals=%d)\n", fn.Name, fn.Arity, fn.LocalCount)
		for addr, inst := range fn.Chunk.Code {
			sb.WriteString(disasmInstruction(addr, inst))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func disasmInstruction(addr int, inst Instruction) string {
	switch inst.Op {
	case OpPushInt:
		return fmt.Sprintf("%4d  %-12s %d", addr, inst.Op, inst.IntArg)
	case OpPushStr:
		return fmt.Sprintf("%4d  %-12s %q", addr, inst.Op, inst.StrArg)
	case OpPushBool:
		return fmt.Sprintf("%4d  %-12s %t", addr, inst.Op, inst.BoolArg)
	case OpLoadLocal, OpStoreLocal:
		return fmt.Sprintf("%4d  %-12s slot %d", addr, inst.Op, inst.IntArg)
	case OpMakeArray:
		return fmt.Sprintf("%4d  %-12s %d elems", addr, inst.Op, inst.IntArg)
	case OpCallName:
		return fmt.Sprintf("%4d  %-12s %s/%d", addr, inst.Op, inst.StrArg, inst.IntArg)
	case OpJump, OpJumpIfFalse:
		return fmt.Sprintf("%4d  %-12s -> %d", addr, inst.Op, inst.IntArg)
	default:
		return fmt.Sprintf("%4d  %-12s", addr, inst.Op)
	}
}
