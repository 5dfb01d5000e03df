// Package bytecode implements the linear opcode IR, the AST-to-bytecode
// compiler, and the stack-based VM that executes it. Chunk is the
// contract between Compile and the VM: well-formedness is a statement
// about Chunk's shape, not the VM's.
package bytecode

import "fmt"

// OpCode is a single bytecode instruction's operation.
type OpCode byte

const (
	OpPushInt OpCode = iota
	OpPushStr
	OpPushBool
	OpPushVoid
	OpLoadLocal
	OpStoreLocal
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpMakeArray
	OpIndexGet
	OpCallName
	OpPop
	OpJump
	OpJumpIfFalse
	OpReturn
)

var opcodeNames = [...]string{
	OpPushInt:     "PushInt",
	OpPushStr:     "PushStr",
	OpPushBool:    "PushBool",
	OpPushVoid:    "PushVoid",
	OpLoadLocal:   "LoadLocal",
	OpStoreLocal:  "StoreLocal",
	OpAdd:         "Add",
	OpSub:         "Sub",
	OpMul:         "Mul",
	OpDiv:         "Div",
	OpEq:          "Eq",
	OpNe:          "Ne",
	OpLt:          "Lt",
	OpLe:          "Le",
	OpGt:          "Gt",
	OpGe:          "Ge",
	OpMakeArray:   "MakeArray",
	OpIndexGet:    "IndexGet",
	OpCallName:    "CallName",
	OpPop:         "Pop",
	OpJump:        "Jump",
	OpJumpIfFalse: "JumpIfFalse",
	OpReturn:      "Return",
}

func (op OpCode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return fmt.Sprintf("OpCode(%d)", byte(op))
}

// Instruction is one opcode with its inline operands. Only the fields
// relevant to Op are populated; the rest are zero.
type Instruction struct {
	Op       OpCode
	IntArg   int64  // PushInt, LoadLocal/StoreLocal (index), MakeArray (count), CallName (argc), Jump/JumpIfFalse (target)
	StrArg   string // PushStr, CallName (function name)
	BoolArg  bool   // PushBool
}
