package bytecode_test

import (
	"bytes"
	"testing"

	"github.com/gubiczam/runa/internal/bytecode"
)

func runEntry(t *testing.T, source, entry string, stdout *bytes.Buffer) (bytecode.Value, error) {
	t.Helper()
	program := mustCompile(t, source)
	vm := bytecode.NewVM(program, stdout)
	return vm.Run(entry)
}

func TestVMArithmeticPrecedence(t *testing.T) {
	v, err := runEntry(t, `fn main() { return 1 + 2 * 3; }`, "main", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Type != bytecode.TypeInt || v.Int != 7 {
		t.Fatalf("got %v, want Int(7)", v)
	}
}

func TestVMArrayIndexing(t *testing.T) {
	v, err := runEntry(t, `fn main() { let a = [10, 20, 30]; return a[0] + a[2]; }`, "main", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int != 40 {
		t.Fatalf("got %v, want Int(40)", v)
	}
}

func TestVMWhileLoop(t *testing.T) {
	source := `fn main() { let n = 0; let i = 0; while (i < 5) { n = n + i; i = i + 1; } return n; }`
	v, err := runEntry(t, source, "main", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int != 10 {
		t.Fatalf("got %v, want Int(10)", v)
	}
}

func TestVMBranching(t *testing.T) {
	v, err := runEntry(t, `fn main() { if (1 == 1) { return 42; } return 0; }`, "main", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int != 42 {
		t.Fatalf("got %v, want Int(42)", v)
	}
}

func TestVMRecursion(t *testing.T) {
	source := `fn f(n) { if (n < 2) { return n; } return f(n-1) + f(n-2); } fn main() { return f(7); }`
	v, err := runEntry(t, source, "main", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int != 13 {
		t.Fatalf("got %v, want Int(13)", v)
	}
}

func TestVMPrintAndVoidReturn(t *testing.T) {
	var out bytes.Buffer
	v, err := runEntry(t, `fn main() { print("x=", 1+1); return; }`, "main", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Type != bytecode.TypeVoid {
		t.Fatalf("got %v, want Void", v)
	}
	if out.String() != "x= 2\n" {
		t.Fatalf("stdout = %q, want %q", out.String(), "x= 2\n")
	}
}

func TestVMOutOfBoundsIndexIsRuntimeError(t *testing.T) {
	if _, err := runEntry(t, `fn main() { let a = [1]; return a[5]; }`, "main", nil); err == nil {
		t.Fatal("expected RuntimeError for out-of-bounds index")
	}
}

func TestVMDivideByZeroIsRuntimeError(t *testing.T) {
	if _, err := runEntry(t, `fn main() { return 1/0; }`, "main", nil); err == nil {
		t.Fatal("expected RuntimeError for division by zero")
	}
}

func TestVMForInLowering(t *testing.T) {
	source := `fn main() { let a = [1, 2, 3]; let s = 0; for (x in a) { s = s + x; } return s; }`
	v, err := runEntry(t, source, "main", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int != 6 {
		t.Fatalf("got %v, want Int(6)", v)
	}
}

func TestVMForInBreakAndContinue(t *testing.T) {
	source := `
	fn main() {
		let a = [1, 2, 3, 4, 5];
		let s = 0;
		for (x in a) {
			if (x == 2) { continue; }
			if (x == 4) { break; }
			s = s + x;
		}
		return s;
	}`
	// 1 is added, 2 is skipped via continue, 3 is added, 4 breaks before adding.
	v, err := runEntry(t, source, "main", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int != 4 {
		t.Fatalf("got %v, want Int(4)", v)
	}
}

// TestLenRoundTrip checks len() over an array literal; len() over a
// string is covered by TestLenOnString.
func TestLenRoundTrip(t *testing.T) {
	v, err := runEntry(t, `fn main() { return len([1, 2, 3, 4, 5]); }`, "main", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int != 5 {
		t.Fatalf("got %v, want Int(5)", v)
	}
}

func TestLenOnString(t *testing.T) {
	v, err := runEntry(t, `fn main() { return len("hello"); }`, "main", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int != 5 {
		t.Fatalf("got %v, want Int(5)", v)
	}
}

// TestArityLaw checks that calling with the wrong number of
// arguments is always a RuntimeError, never silent truncation/padding.
func TestArityLaw(t *testing.T) {
	program := mustCompile(t, `fn f(a, b) { return a + b; }`)
	vm := bytecode.NewVM(program, nil)
	if _, err := vm.Call("f", []bytecode.Value{bytecode.NewInt(1)}); err == nil {
		t.Fatal("expected RuntimeError for too few arguments")
	}
	if _, err := vm.Call("f", []bytecode.Value{bytecode.NewInt(1), bytecode.NewInt(2), bytecode.NewInt(3)}); err == nil {
		t.Fatal("expected RuntimeError for too many arguments")
	}
}

func TestCallUnknownFunctionIsRuntimeError(t *testing.T) {
	if _, err := runEntry(t, `fn main() { return missing(); }`, "main", nil); err == nil {
		t.Fatal("expected RuntimeError for an unknown function")
	}
}

func TestTypeMismatchInArithmeticIsRuntimeError(t *testing.T) {
	if _, err := runEntry(t, `fn main() { return 1 + "a"; }`, "main", nil); err == nil {
		t.Fatal("expected RuntimeError for int + string")
	}
}

func TestIndexingNonArrayIsRuntimeError(t *testing.T) {
	if _, err := runEntry(t, `fn main() { let x = 1; return x[0]; }`, "main", nil); err == nil {
		t.Fatal("expected RuntimeError for indexing a non-array")
	}
}

func TestArrayRenderingForPrint(t *testing.T) {
	var out bytes.Buffer
	_, err := runEntry(t, `fn main() { print([1, 2, [3, 4]]); return; }`, "main", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[1, 2, [3, 4]]\n"
	if out.String() != want {
		t.Fatalf("stdout = %q, want %q", out.String(), want)
	}
}

func TestEqualityIsIntOnly(t *testing.T) {
	if _, err := runEntry(t, `fn main() { return [1,2] == [1,2]; }`, "main", nil); err == nil {
		t.Fatal("expected RuntimeError comparing two arrays with ==")
	}
	if _, err := runEntry(t, `fn main() { return "a" == "a"; }`, "main", nil); err == nil {
		t.Fatal("expected RuntimeError comparing two strings with ==")
	}
	if _, err := runEntry(t, `fn main() { return true != false; }`, "main", nil); err == nil {
		t.Fatal("expected RuntimeError comparing two bools with !=")
	}

	v, err := runEntry(t, `fn main() { return 2 == 2; }`, "main", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Type != bytecode.TypeBool || !v.Bool {
		t.Fatalf("got %v, want Bool(true)", v)
	}
}

func TestArraysAreCopiedNotAliased(t *testing.T) {
	// Arrays have no mutating operation from source, but the Value-level
	// copy-on-construct contract should still hold:
	// mutating the Go slice passed to NewArray must not leak into the
	// Value.
	elems := []bytecode.Value{bytecode.NewInt(1), bytecode.NewInt(2)}
	v := bytecode.NewArray(elems)
	elems[0] = bytecode.NewInt(99)
	if v.Array[0].Int != 1 {
		t.Fatalf("NewArray must copy its input slice; got %v", v.Array[0])
	}
}
