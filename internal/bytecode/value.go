package bytecode

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType tags a Value's dynamic type.
type ValueType byte

const (
	TypeInt ValueType = iota
	TypeStr
	TypeBool
	TypeArray
	TypeVoid
)

func (t ValueType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeStr:
		return "string"
	case TypeBool:
		return "bool"
	case TypeArray:
		return "array"
	case TypeVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Value is the dynamic runtime value every opcode pushes, pops, and
// stores. Arrays are copied when constructed (see NewArray); loads and
// stores pass the Value along and share its backing slice. There is no
// mutating operation on array contents in the source language, so that
// sharing is never observably different from a copy.
type Value struct {
	Type  ValueType
	Int   int64
	Str   string
	Bool  bool
	Array []Value
}

// VoidValue is the shared Void value.
var VoidValue = Value{Type: TypeVoid}

func NewInt(n int64) Value   { return Value{Type: TypeInt, Int: n} }
func NewStr(s string) Value  { return Value{Type: TypeStr, Str: s} }
func NewBool(b bool) Value   { return Value{Type: TypeBool, Bool: b} }

// NewArray copies elems so later mutation of the caller's slice cannot
// leak into the Value.
func NewArray(elems []Value) Value {
	cp := make([]Value, len(elems))
	copy(cp, elems)
	return Value{Type: TypeArray, Array: cp}
}

// Render formats a Value the way the print/kiir built-in does: Int as
// decimal, Bool as true/false, Str raw, Array as "[e1, e2, ...]" with
// elements rendered recursively, Void as "()".
func (v Value) Render() string {
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(v.Int, 10)
	case TypeStr:
		return v.Str
	case TypeBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case TypeArray:
		parts := make([]string, len(v.Array))
		for i, el := range v.Array {
			parts[i] = el.Render()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case TypeVoid:
		return "()"
	default:
		return fmt.Sprintf("<invalid value type %d>", v.Type)
	}
}

// String implements fmt.Stringer using the same rendering as Render,
// so Values print sensibly in %v/%s and in disassembly/test failure
// output.
func (v Value) String() string { return v.Render() }
