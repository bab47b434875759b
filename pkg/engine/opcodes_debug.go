package engine

import (
	"fmt"
	"sort"
	"strings"

	"ipp23/pkg/program"
)

func opDprint(ctx *Context, args map[int]program.Arg) (*int, error) {
	sym, err := resolveSymbol(ctx, args[1])
	if err != nil {
		return nil, err
	}
	ctx.emit("dprint", sym.Render())
	return nil, nil
}

// opBreak dumps the current order, executed-instruction count, all present
// frames, and the data stack to the diagnostic stream. It performs no state
// change.
func opBreak(ctx *Context, args map[int]program.Arg) (*int, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "-- BREAK at order %d (%d instructions executed)\n", ctx.CurrentOrder(), ctx.InstrCount)
	if ctx.Fingerprint != "" {
		fmt.Fprintf(&b, "program fingerprint: %s\n", ctx.Fingerprint)
	}
	for _, fd := range ctx.Frames.Dump() {
		fmt.Fprintf(&b, "frame %s:\n", fd.Name)
		names := make([]string, 0, len(fd.Vars))
		for n := range fd.Vars {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(&b, "  %s = %s\n", n, fd.Vars[n].String())
		}
	}
	fmt.Fprintf(&b, "data stack (top last):\n")
	for _, s := range ctx.DataStack {
		fmt.Fprintf(&b, "  %s\n", s.String())
	}
	ctx.emit("break", b.String())
	return nil, nil
}
