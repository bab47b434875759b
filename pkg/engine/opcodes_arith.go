package engine

import (
	"ipp23/pkg/ipperr"
	"ipp23/pkg/program"
	"ipp23/pkg/value"
)

func twoInts(ctx *Context, args map[int]program.Arg) (*value.Variable, int64, int64, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, 0, 0, err
	}
	a, err := resolveSymbol(ctx, args[2])
	if err != nil {
		return nil, 0, 0, err
	}
	b, err := resolveSymbol(ctx, args[3])
	if err != nil {
		return nil, 0, 0, err
	}
	if a.Tag != value.TagInt || b.Tag != value.TagInt {
		return nil, 0, 0, ipperr.New(ipperr.WrongType, "expected two int operands")
	}
	return dst, a.Int, b.Int, nil
}

// opArith builds an ADD/SUB/MUL handler from a pure int64 combinator.
func opArith(f func(a, b int64) int64) handler {
	return func(ctx *Context, args map[int]program.Arg) (*int, error) {
		dst, a, b, err := twoInts(ctx, args)
		if err != nil {
			return nil, err
		}
		dst.Set(value.NewInt(f(a, b)))
		return nil, nil
	}
}

// opIdiv implements floor-division integer divide: the result truncates
// toward negative infinity, not toward zero.
func opIdiv(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, a, b, err := twoInts(ctx, args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, ipperr.New(ipperr.WrongOperandValue, "IDIV by zero")
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	dst.Set(value.NewInt(q))
	return nil, nil
}

type relKind int

const (
	relLess relKind = iota
	relGreater
	relEqual
)

// opRelational builds LT/GT/EQ: same-type, non-nil operands for LT/GT; EQ
// additionally allows nil on either or both sides.
func opRelational(kind relKind) handler {
	return func(ctx *Context, args map[int]program.Arg) (*int, error) {
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
		var result bool
		switch kind {
		case relEqual:
			eq, ok := a.Equal(b)
			if !ok {
				return nil, ipperr.New(ipperr.WrongType, "EQ requires comparable operand types")
			}
			result = eq
		case relLess:
			lt, ok := a.Less(b)
			if !ok {
				return nil, ipperr.New(ipperr.WrongType, "LT requires two operands of the same orderable, non-nil type")
			}
			result = lt
		case relGreater:
			gt, ok := b.Less(a)
			if !ok {
				return nil, ipperr.New(ipperr.WrongType, "GT requires two operands of the same orderable, non-nil type")
			}
			result = gt
		}
		dst.Set(value.NewBool(result))
		return nil, nil
	}
}

func opBoolBinary(f func(a, b bool) bool) handler {
	return func(ctx *Context, args map[int]program.Arg) (*int, error) {
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
		if a.Tag != value.TagBool || b.Tag != value.TagBool {
			return nil, ipperr.New(ipperr.WrongType, "expected two bool operands")
		}
		dst.Set(value.NewBool(f(a.Bool, b.Bool)))
		return nil, nil
	}
}

func opNot(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	a, err := resolveSymbol(ctx, args[2])
	if err != nil {
		return nil, err
	}
	if a.Tag != value.TagBool {
		return nil, ipperr.New(ipperr.WrongType, "NOT expects a bool operand")
	}
	dst.Set(value.NewBool(!a.Bool))
	return nil, nil
}
