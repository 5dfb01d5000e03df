package bytecode

import "fmt"

// Chunk is one function's compiled body: an ordered sequence of
// instructions. Jump targets in a Chunk are always absolute indexes
// into Code.
type Chunk struct {
	Code []Instruction
}

// emit appends an instruction and returns its index, which callers use
// as the position to patch later for forward jumps.
func (c *Chunk) emit(inst Instruction) int {
	c.Code = append(c.Code, inst)
	return len(c.Code) - 1
}

// patchJumpTarget rewrites the target operand of a previously emitted
// Jump/JumpIfFalse at pos to target. pos must name a jump instruction.
func (c *Chunk) patchJumpTarget(pos int, target int) {
	c.Code[pos].IntArg = int64(target)
}

// Validate checks that every jump target is a valid offset into the
// same chunk and that the chunk ends in Return. The VM does not call
// it; tests use it to check compiler output.
func (c *Chunk) Validate() error {
	if len(c.Code) == 0 || c.Code[len(c.Code)-1].Op != OpReturn {
		return fmt.Errorf("bytecode: chunk does not end with Return")
	}
	for i, inst := range c.Code {
		if inst.Op == OpJump || inst.Op == OpJumpIfFalse {
			target := int(inst.IntArg)
			if target < 0 || target > len(c.Code) {
				return fmt.Errorf("bytecode: instruction %d jumps to invalid offset %d", i, target)
			}
		}
	}
	return nil
}

// FunctionIR is a compiled function: its declared arity, the number of
// local slots its frame needs, and its chunk.
type FunctionIR struct {
	Name       string
	Arity      int
	LocalCount int
	Chunk      Chunk
}

// Program is the ordered list of compiled functions plus the dense
// name -> index mapping Lookup relies on.
type Program struct {
	Functions []FunctionIR
	index     map[string]int
}

// NewProgram builds the name -> index mapping for functions. Names
// must be unique; duplicate names are a compiler bug, not a user
// error, and panic accordingly (the compiler never produces one).
func NewProgram(functions []FunctionIR) *Program {
	index := make(map[string]int, len(functions))
	for i, f := range functions {
		if _, exists := index[f.Name]; exists {
			panic(fmt.Sprintf("bytecode: duplicate function name %q", f.Name))
		}
		index[f.Name] = i
	}
	return &Program{Functions: functions, index: index}
}

// Lookup returns the function index for name.
func (p *Program) Lookup(name string) (int, bool) {
	idx, ok := p.index[name]
	return idx, ok
}
