package bytecode

import "fmt"

// builtinTable returns the fixed intrinsic set every VM instance
// registers: print and its locale alias kiir (the glossary's
// entry for "kiir" — Hungarian for "prints" — is preserved as a
// permanent alias, not a locale-dependent lookup, since builtins are
// named in bytecode before any locale pack is consulted) and len.
func builtinTable(vm *VM) map[string]Builtin {
	return map[string]Builtin{
		"print": builtinPrint,
		"kiir":  builtinPrint,
		"len":   builtinLen,
	}
}

func builtinPrint(vm *VM, args []Value) (Value, error) {
	if vm.output != nil {
		for i, arg := range args {
			if i > 0 {
				fmt.Fprint(vm.output, " ")
			}
			fmt.Fprint(vm.output, arg.Render())
		}
		fmt.Fprintln(vm.output)
	}
	return VoidValue, nil
}

func builtinLen(vm *VM, args []Value) (Value, error) {
	if len(args) != 1 {
		return VoidValue, vm.runtimeError("len expects 1 argument, got %d", len(args))
	}
	switch args[0].Type {
	case TypeStr:
		return NewInt(int64(len(args[0].Str))), nil
	case TypeArray:
		return NewInt(int64(len(args[0].Array))), nil
	default:
		return VoidValue, vm.runtimeError("len expects a string or array, got %s", args[0].Type)
	}
}
