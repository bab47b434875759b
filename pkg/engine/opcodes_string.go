package engine

import (
	"ipp23/pkg/ipperr"
	"ipp23/pkg/program"
	"ipp23/pkg/value"
)

func opInt2Char(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	a, err := resolveSymbol(ctx, args[2])
	if err != nil {
		return nil, err
	}
	if a.Tag != value.TagInt {
		return nil, ipperr.New(ipperr.WrongType, "INT2CHAR expects an int operand")
	}
	if a.Int < 0 || a.Int > 0x10FFFF {
		return nil, ipperr.New(ipperr.InvalidString, "code point %d is out of range", a.Int)
	}
	dst.Set(value.NewString(string(rune(a.Int))))
	return nil, nil
}

func opStri2Int(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	s, err := resolveSymbol(ctx, args[2])
	if err != nil {
		return nil, err
	}
	i, err := resolveSymbol(ctx, args[3])
	if err != nil {
		return nil, err
	}
	if s.Tag != value.TagString || i.Tag != value.TagInt {
		return nil, ipperr.New(ipperr.WrongType, "STRI2INT expects (string, int) operands")
	}
	runes := []rune(s.Str)
	if i.Int < 0 || i.Int >= int64(len(runes)) {
		return nil, ipperr.New(ipperr.InvalidString, "index %d out of range", i.Int)
	}
	dst.Set(value.NewInt(int64(runes[i.Int])))
	return nil, nil
}

func opConcat(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	a, err := resolveSymbol(ctx, args[2])
	if err != nil {
		return nil, err
	}
	b, err := resolveSymbol(ctx, args[3])
	if err != nil {
		return nil, err
	}
	if a.Tag != value.TagString || b.Tag != value.TagString {
		return nil, ipperr.New(ipperr.WrongType, "CONCAT expects two string operands")
	}
	dst.Set(value.Symbol{Tag: value.TagString, Str: a.Str + b.Str})
	return nil, nil
}

func opStrlen(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	a, err := resolveSymbol(ctx, args[2])
	if err != nil {
		return nil, err
	}
	if a.Tag != value.TagString {
		return nil, ipperr.New(ipperr.WrongType, "STRLEN expects a string operand")
	}
	dst.Set(value.NewInt(int64(len([]rune(a.Str)))))
	return nil, nil
}

func opGetChar(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	s, err := resolveSymbol(ctx, args[2])
	if err != nil {
		return nil, err
	}
	i, err := resolveSymbol(ctx, args[3])
	if err != nil {
		return nil, err
	}
	if s.Tag != value.TagString || i.Tag != value.TagInt {
		return nil, ipperr.New(ipperr.WrongType, "GETCHAR expects (string, int) operands")
	}
	runes := []rune(s.Str)
	if i.Int < 0 || i.Int >= int64(len(runes)) {
		return nil, ipperr.New(ipperr.InvalidString, "index %d out of range", i.Int)
	}
	dst.Set(value.NewString(string(runes[i.Int])))
	return nil, nil
}

// opSetChar mutates the destination variable's existing string in place at
// the given index with the first code point of the source string. The
// destination operand (arg 1) names the variable being mutated; its frame
// is resolved independently of the source operand's frame.
func opSetChar(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	cur, ok := dst.Get()
	if !ok {
		return nil, ipperr.New(ipperr.MissingValue, "SETCHAR destination is not initialized")
	}
	if cur.Tag != value.TagString {
		return nil, ipperr.New(ipperr.WrongType, "SETCHAR destination must hold a string")
	}
	idx, err := resolveSymbol(ctx, args[2])
	if err != nil {
		return nil, err
	}
	src, err := resolveSymbol(ctx, args[3])
	if err != nil {
		return nil, err
	}
	if idx.Tag != value.TagInt || src.Tag != value.TagString {
		return nil, ipperr.New(ipperr.WrongType, "SETCHAR expects (int, string) operands")
	}
	dstRunes := []rune(cur.Str)
	srcRunes := []rune(src.Str)
	if idx.Int < 0 || idx.Int >= int64(len(dstRunes)) || len(srcRunes) == 0 {
		return nil, ipperr.New(ipperr.InvalidString, "SETCHAR index or empty source string out of range")
	}
	dstRunes[idx.Int] = srcRunes[0]
	dst.Set(value.NewString(string(dstRunes)))
	return nil, nil
}

func opType(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	arg := args[2]
	var name string
	if arg.Tag == program.ArgVar {
		v, err := lookupVar(ctx, arg)
		if err != nil {
			return nil, err
		}
		if sym, ok := v.Get(); ok {
			name = sym.Tag.String()
		} else {
			// The only tolerated read of an uninitialized variable: TYPE
			// reports the empty string rather than failing.
			name = ""
		}
	} else {
		sym, err := literalSymbol(arg)
		if err != nil {
			return nil, err
		}
		name = sym.Tag.String()
	}
	dst.Set(value.NewString(name))
	return nil, nil
}
