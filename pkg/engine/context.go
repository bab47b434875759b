// Package engine is the dispatcher and opcode handler set: the 65% of the
// interpreter that resolves operands through the frame store, type-checks
// them, and performs each instruction's effect.
package engine

import (
	"bufio"
	"io"

	"ipp23/pkg/frame"
	"ipp23/pkg/ipperr"
	"ipp23/pkg/program"
	"ipp23/pkg/value"
)

// Event is a BREAK/DPRINT diagnostic, surfaced to anything observing the
// run (stderr always, and optionally the debug server of pkg/debugserver).
type Event struct {
	Kind  string // "dprint" | "break"
	Order int
	Text  string
}

// Sink receives Events as they are produced. nil is a valid Sink (no-op).
type Sink func(Event)

// Context is the mutable state of one interpreter run: the three stacks, the
// frame store, the label map, and the instruction cursor, plus the I/O
// streams. Handlers receive it explicitly rather than reaching back into a
// package-level Interpreter.
type Context struct {
	Prog   *program.Program
	Labels program.Labels
	Orders []int
	ip     int // index into Orders; -1 before the first tick

	Frames    *frame.Store
	CallStack []int
	DataStack []value.Symbol

	Stdout io.Writer
	Stderr io.Writer
	input  *bufio.Scanner

	InstrCount  int
	Fingerprint string

	Sink Sink
}

// NewContext builds a Context ready to execute prog. labels must already
// have been scanned via program.ScanLabels.
func NewContext(prog *program.Program, labels program.Labels, stdin io.Reader, stdout, stderr io.Writer) *Context {
	return &Context{
		Prog:   prog,
		Labels: labels,
		Orders: prog.Orders(),
		ip:     -1,
		Frames: frame.NewStore(),
		Stdout: stdout,
		Stderr: stderr,
		input:  bufio.NewScanner(stdin),
	}
}

// CurrentOrder returns the order of the instruction the cursor currently
// points at. Valid only while ip is within range.
func (c *Context) CurrentOrder() int {
	return c.Orders[c.ip]
}

// Advance moves the cursor to the next instruction in sorted order.
func (c *Context) Advance() {
	c.ip++
}

// Done reports whether execution has run past the last instruction.
func (c *Context) Done() bool {
	return c.ip >= len(c.Orders)
}

// JumpToOrder positions the cursor so that the *next* Advance() lands on
// target. The dispatch loop always calls Advance() once per tick (i <- i+1
// is the only way ip ever moves forward), so a jump stores index-1 rather
// than index.
func (c *Context) JumpToOrder(target int) error {
	for i, o := range c.Orders {
		if o == target {
			c.ip = i - 1
			return nil
		}
	}
	return ipperr.New(ipperr.Semantics, "jump target order %d does not exist", target)
}

// JumpAfter positions the cursor so the next Advance() lands on the
// instruction immediately after callSite's order (RETURN's resume point).
func (c *Context) JumpAfter(callSite int) {
	for i, o := range c.Orders {
		if o == callSite {
			c.ip = i
			return
		}
	}
}

// readLine reads one line from the input stream, stripping the trailing
// terminator. ok is false on EOF or any scan error.
func (c *Context) readLine() (string, bool) {
	if !c.input.Scan() {
		return "", false
	}
	return c.input.Text(), true
}

// emit records a diagnostic Event to stderr and, if present, the Sink.
func (c *Context) emit(kind, text string) {
	io.WriteString(c.Stderr, text)
	if c.Sink != nil {
		c.Sink(Event{Kind: kind, Order: c.CurrentOrder(), Text: text})
	}
}
