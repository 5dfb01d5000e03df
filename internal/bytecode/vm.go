package bytecode

import (
	"io"

	"github.com/gubiczam/runa/internal/errors"
	"github.com/gubiczam/runa/internal/lexer"
)

const defaultStackCapacity = 256

// callFrame is one active function invocation: its chunk, instruction
// pointer, and dense local-slot array.
type callFrame struct {
	fn     *FunctionIR
	ip     int
	locals []Value
}

// VM executes a compiled Program's functions against a shared operand
// stack, dispatching CallName either to a registered builtin or to
// another function in the same Program.
type VM struct {
	program  *Program
	output   io.Writer
	stack    []Value
	frames   []callFrame
	builtins map[string]Builtin
}

// Builtin is a host-provided intrinsic callable by name from bytecode.
type Builtin func(vm *VM, args []Value) (Value, error)

// NewVM constructs a VM bound to program, writing print/kiir output to
// w. A nil w makes those builtins no-ops.
func NewVM(program *Program, w io.Writer) *VM {
	vm := &VM{
		program: program,
		output:  w,
		stack:   make([]Value, 0, defaultStackCapacity),
		frames:  make([]callFrame, 0, 8),
	}
	vm.builtins = builtinTable(vm)
	return vm
}

// Run invokes the function named entry with no arguments and returns
// its result.
func (vm *VM) Run(entry string) (Value, error) {
	return vm.Call(entry, nil)
}

// Call invokes the named function with args, which must be a
// user-defined function in the bound Program (builtins are only
// reachable through CallName inside compiled code).
func (vm *VM) Call(name string, args []Value) (Value, error) {
	idx, ok := vm.program.Lookup(name)
	if !ok {
		return VoidValue, vm.runtimeError("undefined function %q", name)
	}
	return vm.callFunction(&vm.program.Functions[idx], args)
}

func (vm *VM) callFunction(fn *FunctionIR, args []Value) (Value, error) {
	if len(args) != fn.Arity {
		return VoidValue, vm.runtimeError("%s expects %d argument(s), got %d", fn.Name, fn.Arity, len(args))
	}
	n := fn.LocalCount
	if fn.Arity > n {
		n = fn.Arity
	}
	locals := make([]Value, n)
	copy(locals, args)

	vm.frames = append(vm.frames, callFrame{fn: fn, locals: locals})
	defer func() { vm.frames = vm.frames[:len(vm.frames)-1] }()

	frame := &vm.frames[len(vm.frames)-1]
	baseStack := len(vm.stack)

	for {
		if frame.ip >= len(frame.fn.Chunk.Code) {
			return VoidValue, vm.runtimeError("%s: fell off the end of its bytecode", fn.Name)
		}
		inst := frame.fn.Chunk.Code[frame.ip]
		frame.ip++

		switch inst.Op {
		case OpPushInt:
			vm.push(NewInt(inst.IntArg))
		case OpPushStr:
			vm.push(NewStr(inst.StrArg))
		case OpPushBool:
			vm.push(NewBool(inst.BoolArg))
		case OpPushVoid:
			vm.push(VoidValue)

		case OpLoadLocal:
			idx := int(inst.IntArg)
			if idx < 0 || idx >= len(frame.locals) {
				return VoidValue, vm.runtimeError("local slot %d out of range", idx)
			}
			vm.push(frame.locals[idx])

		case OpStoreLocal:
			val, err := vm.pop()
			if err != nil {
				return VoidValue, err
			}
			idx := int(inst.IntArg)
			if idx < 0 {
				return VoidValue, vm.runtimeError("local slot %d out of range", idx)
			}
			for idx >= len(frame.locals) {
				frame.locals = append(frame.locals, VoidValue)
			}
			frame.locals[idx] = val

		case OpAdd, OpSub, OpMul, OpDiv:
			if err := vm.arith(inst.Op); err != nil {
				return VoidValue, err
			}
		case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
			if err := vm.compareOp(inst.Op); err != nil {
				return VoidValue, err
			}

		case OpMakeArray:
			n := int(inst.IntArg)
			if len(vm.stack)-baseStack < n {
				return VoidValue, vm.runtimeError("MakeArray needs %d values on the stack", n)
			}
			elems := make([]Value, n)
			copy(elems, vm.stack[len(vm.stack)-n:])
			vm.stack = vm.stack[:len(vm.stack)-n]
			vm.push(NewArray(elems))

		case OpIndexGet:
			idxVal, err := vm.pop()
			if err != nil {
				return VoidValue, err
			}
			target, err := vm.pop()
			if err != nil {
				return VoidValue, err
			}
			v, err := vm.indexGet(target, idxVal)
			if err != nil {
				return VoidValue, err
			}
			vm.push(v)

		case OpCallName:
			argc := int(inst.IntArg)
			if len(vm.stack)-baseStack < argc {
				return VoidValue, vm.runtimeError("call to %q needs %d argument(s) on the stack", inst.StrArg, argc)
			}
			args := make([]Value, argc)
			copy(args, vm.stack[len(vm.stack)-argc:])
			vm.stack = vm.stack[:len(vm.stack)-argc]

			result, err := vm.dispatchCall(inst.StrArg, args)
			if err != nil {
				return VoidValue, err
			}
			vm.push(result)

		case OpPop:
			if _, err := vm.pop(); err != nil {
				return VoidValue, err
			}

		case OpJump:
			frame.ip = int(inst.IntArg)

		case OpJumpIfFalse:
			cond, err := vm.pop()
			if err != nil {
				return VoidValue, err
			}
			if cond.Type == TypeBool && !cond.Bool {
				frame.ip = int(inst.IntArg)
			}

		case OpReturn:
			if len(vm.stack) <= baseStack {
				return VoidValue, nil
			}
			return vm.pop()

		default:
			return VoidValue, vm.runtimeError("unsupported opcode %s", inst.Op)
		}
	}
}

// dispatchCall resolves name first against builtins, then against the
// bound Program's user-defined functions.
func (vm *VM) dispatchCall(name string, args []Value) (Value, error) {
	if b, ok := vm.builtins[name]; ok {
		return b(vm, args)
	}
	idx, ok := vm.program.Lookup(name)
	if !ok {
		return VoidValue, vm.runtimeError("call to undefined function %q", name)
	}
	return vm.callFunction(&vm.program.Functions[idx], args)
}

func (vm *VM) push(v Value) { vm.stack = append(vm.stack, v) }

func (vm *VM) pop() (Value, error) {
	if len(vm.stack) == 0 {
		return VoidValue, vm.runtimeError("operand stack underflow")
	}
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v, nil
}

func (vm *VM) runtimeError(format string, args ...any) error {
	return errors.New(errors.Runtime, lexer.Position{}, "", format, args...)
}
