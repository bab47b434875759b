// Package program holds the loaded, order-indexed IPPcode23 program: the
// in-memory shape the XML loader must deliver, plus the label pre-scan used
// by the dispatcher to resolve jumps.
package program

import (
	"sort"

	"ipp23/pkg/value"
)

// ArgTag identifies the grammar kind of an instruction operand slot.
type ArgTag uint8

const (
	ArgInvalid ArgTag = iota
	ArgInt
	ArgBool
	ArgString
	ArgNil
	ArgVar
	ArgLabel
	ArgType
)

// Arg is one XML argN element: a tag plus whichever payload applies.
type Arg struct {
	Tag ArgTag

	// Sym holds the literal (type,value) for ArgInt/ArgBool/ArgString/ArgNil.
	Sym value.Symbol

	// Frame/Name hold the var reference for ArgVar ("FRAME@NAME").
	Frame string
	Name  string

	// Label holds the symbolic target name for ArgLabel.
	Label string

	// TypeName holds the literal type-name ("int"|"bool"|"string"|"nil")
	// for ArgType, used by READ's second operand.
	TypeName string
}

// Instruction is one program instruction: an uppercased opcode and a dense,
// 1-based map of its positional arguments.
type Instruction struct {
	Opcode string
	Args   map[int]Arg
}

// Program is the ordered mapping from positive integer order to Instruction.
type Program struct {
	instructions map[int]Instruction
	orders       []int // sorted, built by Finalize
}

// New returns an empty Program.
func New() *Program {
	return &Program{instructions: make(map[int]Instruction)}
}

// Add inserts an instruction at the given order. The caller (the loader) is
// responsible for rejecting duplicate orders before calling Add.
func (p *Program) Add(order int, instr Instruction) {
	p.instructions[order] = instr
}

// Has reports whether an instruction exists at order.
func (p *Program) Has(order int) bool {
	_, ok := p.instructions[order]
	return ok
}

// Get returns the instruction at order.
func (p *Program) Get(order int) Instruction {
	return p.instructions[order]
}

// Len reports the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.instructions)
}

// Finalize computes the sorted order sequence. Must be called once after all
// instructions have been added and before execution begins.
func (p *Program) Finalize() {
	p.orders = make([]int, 0, len(p.instructions))
	for o := range p.instructions {
		p.orders = append(p.orders, o)
	}
	sort.Ints(p.orders)
}

// Orders returns the sorted sequence of instruction orders. Finalize must
// have been called first.
func (p *Program) Orders() []int {
	return p.orders
}
