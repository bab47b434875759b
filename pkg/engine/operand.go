package engine

import (
	"ipp23/pkg/ipperr"
	"ipp23/pkg/program"
	"ipp23/pkg/value"
)

// resolveSymbol reads the value+type an operand denotes: if the arg is a
// var reference, the variable's current value (failing missingValue if
// uninitialized); otherwise the arg's own literal payload.
func resolveSymbol(ctx *Context, arg program.Arg) (value.Symbol, error) {
	if arg.Tag != program.ArgVar {
		return literalSymbol(arg)
	}
	v, err := lookupVar(ctx, arg)
	if err != nil {
		return value.Symbol{}, err
	}
	sym, ok := v.Get()
	if !ok {
		return value.Symbol{}, ipperr.New(ipperr.MissingValue, "variable %q is not initialized", arg.Name)
	}
	return sym, nil
}

func literalSymbol(arg program.Arg) (value.Symbol, error) {
	switch arg.Tag {
	case program.ArgInt, program.ArgBool, program.ArgString, program.ArgNil:
		return arg.Sym, nil
	default:
		return value.Symbol{}, ipperr.New(ipperr.WrongType, "operand is not a symbol")
	}
}

// lookupVar resolves a var-tagged Arg to the Variable it names.
func lookupVar(ctx *Context, arg program.Arg) (*value.Variable, error) {
	if arg.Tag != program.ArgVar {
		return nil, ipperr.New(ipperr.WrongType, "expected a variable operand")
	}
	f, err := ctx.Frames.Get(arg.Frame)
	if err != nil {
		return nil, err
	}
	return f.Lookup(arg.Name)
}

// destVar resolves a destination operand: it must be tag var.
func destVar(ctx *Context, args map[int]program.Arg, idx int) (*value.Variable, error) {
	arg, ok := args[idx]
	if !ok || arg.Tag != program.ArgVar {
		return nil, ipperr.New(ipperr.WrongType, "argument %d must be a variable", idx)
	}
	return lookupVar(ctx, arg)
}
