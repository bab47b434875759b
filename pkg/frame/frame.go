// Package frame implements the IPPcode23 frame store: the global frame, the
// local frame stack, and the optional temporary frame, plus variable
// definition and lookup within them.
package frame

import (
	"fmt"

	"ipp23/pkg/ipperr"
	"ipp23/pkg/value"
)

// Frame is a mapping from variable name to Variable, unique within the
// frame.
type Frame struct {
	vars map[string]*value.Variable
}

func newFrame() *Frame {
	return &Frame{vars: make(map[string]*value.Variable)}
}

// Store owns the global frame, the local frame stack, and the temporary
// frame for one interpreter instance.
type Store struct {
	global *Frame
	locals []*Frame
	temp   *Frame // nil when absent
}

// NewStore returns a Store with an initialized, empty global frame and no
// local or temporary frame.
func NewStore() *Store {
	return &Store{global: newFrame()}
}

// Get resolves "GF"|"LF"|"TF" to the frame it currently denotes.
func (s *Store) Get(name string) (*Frame, error) {
	switch name {
	case "GF":
		return s.global, nil
	case "LF":
		if len(s.locals) == 0 {
			return nil, ipperr.New(ipperr.NotExistingFrame, "local frame stack is empty")
		}
		return s.locals[len(s.locals)-1], nil
	case "TF":
		if s.temp == nil {
			return nil, ipperr.New(ipperr.NotExistingFrame, "temporary frame is not present")
		}
		return s.temp, nil
	default:
		return nil, ipperr.New(ipperr.NotExistingFrame, "unknown frame %q", name)
	}
}

// Define creates a new, uninitialized variable named name in frame f. A
// redefinition is a semantics error.
func (f *Frame) Define(name string) error {
	if _, exists := f.vars[name]; exists {
		return ipperr.New(ipperr.Semantics, "variable %q already defined in this frame", name)
	}
	f.vars[name] = value.NewVariable(name)
	return nil
}

// Lookup returns the variable named name in frame f.
func (f *Frame) Lookup(name string) (*value.Variable, error) {
	v, ok := f.vars[name]
	if !ok {
		return nil, ipperr.New(ipperr.NotExistingVariable, "variable %q is not defined", name)
	}
	return v, nil
}

// CreateFrame unconditionally (re)initializes TF to a fresh, empty frame,
// discarding any previous TF.
func (s *Store) CreateFrame() {
	s.temp = newFrame()
}

// PushFrame requires TF present, moves it onto the local-frame stack, and
// clears TF.
func (s *Store) PushFrame() error {
	if s.temp == nil {
		return ipperr.New(ipperr.NotExistingFrame, "no temporary frame to push")
	}
	s.locals = append(s.locals, s.temp)
	s.temp = nil
	return nil
}

// PopFrame requires a non-empty local-frame stack, pops its top, and
// installs it as TF.
func (s *Store) PopFrame() error {
	if len(s.locals) == 0 {
		return ipperr.New(ipperr.NotExistingFrame, "local frame stack is empty")
	}
	n := len(s.locals) - 1
	s.temp = s.locals[n]
	s.locals = s.locals[:n]
	return nil
}

// FrameDump is a snapshot of one frame's initialized variables for BREAK
// diagnostics.
type FrameDump struct {
	Name string
	Vars map[string]value.Symbol
}

func dumpFrame(name string, f *Frame) FrameDump {
	vars := make(map[string]value.Symbol, len(f.vars))
	for n, v := range f.vars {
		if s, ok := v.Get(); ok {
			vars[n] = s
		}
	}
	return FrameDump{Name: name, Vars: vars}
}

// Dump produces a BREAK-time snapshot of all present frames: global first,
// then local frames innermost-last, then TF if present. Absent frames (TF,
// or an empty local stack) are skipped.
func (s *Store) Dump() []FrameDump {
	dumps := []FrameDump{dumpFrame("GF", s.global)}
	for i, l := range s.locals {
		dumps = append(dumps, dumpFrame(fmt.Sprintf("LF[%d]", i), l))
	}
	if s.temp != nil {
		dumps = append(dumps, dumpFrame("TF", s.temp))
	}
	return dumps
}
