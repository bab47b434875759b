package engine

import (
	"ipp23/pkg/ipperr"
	"ipp23/pkg/program"
)

func opMove(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	sym, err := resolveSymbol(ctx, args[2])
	if err != nil {
		return nil, err
	}
	dst.Set(sym)
	return nil, nil
}

func opCreateFrame(ctx *Context, args map[int]program.Arg) (*int, error) {
	ctx.Frames.CreateFrame()
	return nil, nil
}

func opPushFrame(ctx *Context, args map[int]program.Arg) (*int, error) {
	return nil, ctx.Frames.PushFrame()
}

func opPopFrame(ctx *Context, args map[int]program.Arg) (*int, error) {
	return nil, ctx.Frames.PopFrame()
}

func opDefvar(ctx *Context, args map[int]program.Arg) (*int, error) {
	arg := args[1]
	if arg.Tag != program.ArgVar {
		return nil, ipperr.New(ipperr.WrongType, "DEFVAR argument must be a variable")
	}
	f, err := ctx.Frames.Get(arg.Frame)
	if err != nil {
		return nil, err
	}
	return nil, f.Define(arg.Name)
}

func opCall(ctx *Context, args map[int]program.Arg) (*int, error) {
	arg := args[1]
	if arg.Tag != program.ArgLabel {
		return nil, ipperr.New(ipperr.WrongType, "CALL argument must be a label")
	}
	target, ok := ctx.Labels[arg.Label]
	if !ok {
		return nil, ipperr.New(ipperr.Semantics, "undefined label %q", arg.Label)
	}
	ctx.CallStack = append(ctx.CallStack, ctx.CurrentOrder())
	return nil, ctx.JumpToOrder(target)
}

func opReturn(ctx *Context, args map[int]program.Arg) (*int, error) {
	n := len(ctx.CallStack)
	if n == 0 {
		return nil, ipperr.New(ipperr.MissingValue, "RETURN with an empty call stack")
	}
	site := ctx.CallStack[n-1]
	ctx.CallStack = ctx.CallStack[:n-1]
	ctx.JumpAfter(site)
	return nil, nil
}

func opPushs(ctx *Context, args map[int]program.Arg) (*int, error) {
	sym, err := resolveSymbol(ctx, args[1])
	if err != nil {
		return nil, err
	}
	ctx.DataStack = append(ctx.DataStack, sym)
	return nil, nil
}

func opPops(ctx *Context, args map[int]program.Arg) (*int, error) {
	n := len(ctx.DataStack)
	if n == 0 {
		return nil, ipperr.New(ipperr.MissingValue, "POPS with an empty data stack")
	}
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	sym := ctx.DataStack[n-1]
	ctx.DataStack = ctx.DataStack[:n-1]
	dst.Set(sym)
	return nil, nil
}
