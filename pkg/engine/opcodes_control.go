package engine

import (
	"ipp23/pkg/ipperr"
	"ipp23/pkg/program"
	"ipp23/pkg/value"
)

// opLabel is a no-op at execution time: LABEL targets are resolved once by
// program.ScanLabels before the dispatch loop starts.
func opLabel(ctx *Context, args map[int]program.Arg) (*int, error) {
	return nil, nil
}

func opJump(ctx *Context, args map[int]program.Arg) (*int, error) {
	arg := args[1]
	if arg.Tag != program.ArgLabel {
		return nil, ipperr.New(ipperr.WrongType, "JUMP argument must be a label")
	}
	target, ok := ctx.Labels[arg.Label]
	if !ok {
		return nil, ipperr.New(ipperr.Semantics, "undefined label %q", arg.Label)
	}
	return nil, ctx.JumpToOrder(target)
}

// opJumpIf builds JUMPIFEQ (wantEqual=true) and JUMPIFNEQ (wantEqual=false).
func opJumpIf(wantEqual bool) handler {
	return func(ctx *Context, args map[int]program.Arg) (*int, error) {
		labelArg := args[1]
		if labelArg.Tag != program.ArgLabel {
			return nil, ipperr.New(ipperr.WrongType, "jump argument must be a label")
		}
		a, err := resolveSymbol(ctx, args[2])
		if err != nil {
			return nil, err
		}
		b, err := resolveSymbol(ctx, args[3])
		if err != nil {
			return nil, err
		}
		eq, ok := a.Equal(b)
		if !ok {
			return nil, ipperr.New(ipperr.WrongType, "jump comparison requires comparable operand types")
		}
		if eq != wantEqual {
			return nil, nil
		}
		target, ok := ctx.Labels[labelArg.Label]
		if !ok {
			return nil, ipperr.New(ipperr.Semantics, "undefined label %q", labelArg.Label)
		}
		return nil, ctx.JumpToOrder(target)
	}
}

func opExit(ctx *Context, args map[int]program.Arg) (*int, error) {
	sym, err := resolveSymbol(ctx, args[1])
	if err != nil {
		return nil, err
	}
	if sym.Tag != value.TagInt {
		return nil, ipperr.New(ipperr.WrongType, "EXIT operand must be an int")
	}
	if sym.Int < 0 || sym.Int > 49 {
		return nil, ipperr.New(ipperr.WrongOperandValue, "EXIT code must be an int in [0, 49]")
	}
	code := int(sym.Int)
	return &code, nil
}
