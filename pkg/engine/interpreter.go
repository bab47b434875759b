package engine

import (
	"io"

	"ipp23/pkg/program"
)

// Interpreter executes one loaded Program against one set of I/O streams.
// All state is owned by one Interpreter value, so running and testing
// multiple interpreters side by side is safe.
type Interpreter struct {
	ctx *Context
}

// New builds an Interpreter. labels must already have been produced by
// program.ScanLabels over prog.
func New(prog *program.Program, labels program.Labels, stdin io.Reader, stdout, stderr io.Writer) *Interpreter {
	return &Interpreter{ctx: NewContext(prog, labels, stdin, stdout, stderr)}
}

// SetFingerprint attaches a diagnostic fingerprint string shown in BREAK
// dumps (see pkg/fingerprint).
func (in *Interpreter) SetFingerprint(fp string) {
	in.ctx.Fingerprint = fp
}

// SetSink attaches a Sink that observes every DPRINT/BREAK Event alongside
// the stderr write (see pkg/debugserver).
func (in *Interpreter) SetSink(sink Sink) {
	in.ctx.Sink = sink
}

// Run drives the program to completion and returns the process exit code.
func (in *Interpreter) Run() (exitCode int, err error) {
	return Run(in.ctx)
}

// InstrCount reports the number of instructions executed so far.
func (in *Interpreter) InstrCount() int {
	return in.ctx.InstrCount
}
