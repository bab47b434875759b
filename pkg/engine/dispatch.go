package engine

import (
	"ipp23/pkg/ipperr"
	"ipp23/pkg/program"
)

// handler performs one opcode's effect. It returns exit != nil when the
// instruction terminates the run (EXIT), and err != nil on any fatal
// failure. Exactly one of a normal return, exit, or err applies per call.
type handler func(ctx *Context, args map[int]program.Arg) (exit *int, err error)

// arity is the required number of arguments for each opcode; a mismatch is
// wrongXMLStructure before the handler ever runs.
var arity = map[string]int{
	"MOVE":        2,
	"CREATEFRAME": 0,
	"PUSHFRAME":   0,
	"POPFRAME":    0,
	"DEFVAR":      1,
	"CALL":        1,
	"RETURN":      0,
	"PUSHS":       1,
	"POPS":        1,
	"ADD":         3,
	"SUB":         3,
	"MUL":         3,
	"IDIV":        3,
	"LT":          3,
	"GT":          3,
	"EQ":          3,
	"AND":         3,
	"OR":          3,
	"NOT":         2,
	"INT2CHAR":    2,
	"STRI2INT":    3,
	"READ":        2,
	"WRITE":       1,
	"CONCAT":      3,
	"STRLEN":      2,
	"GETCHAR":     3,
	"SETCHAR":     3,
	"TYPE":        2,
	"LABEL":       1,
	"JUMP":        1,
	"JUMPIFEQ":    3,
	"JUMPIFNEQ":   3,
	"EXIT":        1,
	"DPRINT":      1,
	"BREAK":       0,
}

var handlers = map[string]handler{
	"MOVE":        opMove,
	"CREATEFRAME": opCreateFrame,
	"PUSHFRAME":   opPushFrame,
	"POPFRAME":    opPopFrame,
	"DEFVAR":      opDefvar,
	"CALL":        opCall,
	"RETURN":      opReturn,
	"PUSHS":       opPushs,
	"POPS":        opPops,
	"ADD":         opArith(func(a, b int64) int64 { return a + b }),
	"SUB":         opArith(func(a, b int64) int64 { return a - b }),
	"MUL":         opArith(func(a, b int64) int64 { return a * b }),
	"IDIV":        opIdiv,
	"LT":          opRelational(relLess),
	"GT":          opRelational(relGreater),
	"EQ":          opRelational(relEqual),
	"AND":         opBoolBinary(func(a, b bool) bool { return a && b }),
	"OR":          opBoolBinary(func(a, b bool) bool { return a || b }),
	"NOT":         opNot,
	"INT2CHAR":    opInt2Char,
	"STRI2INT":    opStri2Int,
	"READ":        opRead,
	"WRITE":       opWrite,
	"CONCAT":      opConcat,
	"STRLEN":      opStrlen,
	"GETCHAR":     opGetChar,
	"SETCHAR":     opSetChar,
	"TYPE":        opType,
	"LABEL":       opLabel,
	"JUMP":        opJump,
	"JUMPIFEQ":    opJumpIf(true),
	"JUMPIFNEQ":   opJumpIf(false),
	"EXIT":        opExit,
	"DPRINT":      opDprint,
	"BREAK":       opBreak,
}

// Step executes exactly one instruction at the cursor's current order.
func Step(ctx *Context, instr program.Instruction) (exit *int, err error) {
	want, known := arity[instr.Opcode]
	if !known {
		return nil, ipperr.New(ipperr.WrongXMLStructure, "unknown opcode %q", instr.Opcode)
	}
	if len(instr.Args) != want {
		return nil, ipperr.New(ipperr.WrongXMLStructure, "opcode %s expects %d arguments, got %d", instr.Opcode, want, len(instr.Args))
	}
	h := handlers[instr.Opcode]
	exit, err = h(ctx, instr.Args)
	if err == nil && exit == nil {
		ctx.InstrCount++
	}
	return exit, err
}

// Run drives the dispatch loop to completion: it advances the cursor,
// fetches the instruction at the new order, and steps it, until the cursor
// runs past the last order, EXIT is hit, or a fatal error occurs.
func Run(ctx *Context) (exitCode int, err error) {
	for {
		ctx.Advance()
		if ctx.Done() {
			return 0, nil
		}
		order := ctx.CurrentOrder()
		instr := ctx.Prog.Get(order)
		exit, stepErr := Step(ctx, instr)
		if stepErr != nil {
			return 0, stepErr
		}
		if exit != nil {
			return *exit, nil
		}
	}
}
