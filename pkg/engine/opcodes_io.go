package engine

import (
	"io"
	"strconv"
	"strings"

	"ipp23/pkg/ipperr"
	"ipp23/pkg/program"
	"ipp23/pkg/value"
)

// opRead reads one line and parses it per the requested type. Any failure
// (EOF, bad parse) is recovered in-band: the destination becomes nil rather
// than aborting the run. This is the single non-fatal failure path in the
// whole instruction set.
func opRead(ctx *Context, args map[int]program.Arg) (*int, error) {
	dst, err := destVar(ctx, args, 1)
	if err != nil {
		return nil, err
	}
	typeArg := args[2]
	if typeArg.Tag != program.ArgType {
		return nil, ipperr.New(ipperr.WrongType, "READ's second argument must be a type literal")
	}
	line, ok := ctx.readLine()
	if !ok {
		dst.Set(value.NewNil())
		return nil, nil
	}
	switch typeArg.TypeName {
	case "int":
		n, perr := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if perr != nil {
			dst.Set(value.NewNil())
			return nil, nil
		}
		dst.Set(value.NewInt(n))
	case "bool":
		dst.Set(value.NewBool(strings.EqualFold(line, "true")))
	case "string":
		dst.Set(value.NewString(line))
	default:
		dst.Set(value.NewNil())
	}
	return nil, nil
}

func opWrite(ctx *Context, args map[int]program.Arg) (*int, error) {
	sym, err := resolveSymbol(ctx, args[1])
	if err != nil {
		return nil, err
	}
	io.WriteString(ctx.Stdout, sym.Render())
	if f, ok := ctx.Stdout.(flusher); ok {
		f.Flush()
	}
	return nil, nil
}

// flusher is implemented by buffered writers (e.g. bufio.Writer) that need
// an explicit Flush so WRITE output is never lost to a later fatal exit.
type flusher interface {
	Flush() error
}
