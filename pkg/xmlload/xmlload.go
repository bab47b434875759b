// Package xmlload turns an IPPcode23 XML document into a *program.Program.
// This is the interface boundary the rest of the interpreter depends on: the
// shape it delivers (order-indexed instructions, dense 1-based args) is all
// that matters to the engine.
package xmlload

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"ipp23/pkg/ipperr"
	"ipp23/pkg/program"
	"ipp23/pkg/value"
)

type xmlProgram struct {
	XMLName      xml.Name
	Language     string           `xml:"language,attr"`
	Instructions []xmlInstruction `xml:"instruction"`
	Other        []xmlArg         `xml:",any"`
}

type xmlInstruction struct {
	Order  string   `xml:"order,attr"`
	Opcode string   `xml:"opcode,attr"`
	Args   []xmlArg `xml:",any"`
}

type xmlArg struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

// Load decodes an IPPcode23 XML document from r into a finalized Program.
func Load(r io.Reader) (*program.Program, error) {
	var doc xmlProgram
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, ipperr.New(ipperr.WrongXMLFormat, "malformed XML: %v", err)
	}

	if doc.XMLName.Local != "program" {
		return nil, ipperr.New(ipperr.WrongXMLStructure, "root element must be <program>, got <%s>", doc.XMLName.Local)
	}
	if doc.Language != "IPPcode23" {
		return nil, ipperr.New(ipperr.WrongXMLStructure, "unsupported language attribute %q", doc.Language)
	}
	if len(doc.Other) > 0 {
		return nil, ipperr.New(ipperr.WrongXMLStructure, "unexpected element <%s> inside program", doc.Other[0].XMLName.Local)
	}

	prog := program.New()
	seenOrders := make(map[int]bool)

	for _, xi := range doc.Instructions {
		order, err := strconv.Atoi(xi.Order)
		if err != nil || order <= 0 {
			return nil, ipperr.New(ipperr.WrongXMLStructure, "instruction order %q is not a positive integer", xi.Order)
		}
		if seenOrders[order] {
			return nil, ipperr.New(ipperr.WrongXMLStructure, "duplicate instruction order %d", order)
		}
		seenOrders[order] = true

		args, err := buildArgs(xi.Args)
		if err != nil {
			return nil, err
		}

		prog.Add(order, program.Instruction{
			Opcode: strings.ToUpper(xi.Opcode),
			Args:   args,
		})
	}

	prog.Finalize()
	return prog, nil
}

func buildArgs(raw []xmlArg) (map[int]program.Arg, error) {
	args := make(map[int]program.Arg, len(raw))
	maxIdx := 0
	for _, a := range raw {
		idx, ok := argIndex(a.XMLName.Local)
		if !ok {
			return nil, ipperr.New(ipperr.WrongXMLStructure, "unexpected element <%s> inside instruction", a.XMLName.Local)
		}
		arg, err := buildArg(a)
		if err != nil {
			return nil, err
		}
		args[idx] = arg
		if idx > maxIdx {
			maxIdx = idx
		}
	}
	for i := 1; i <= maxIdx; i++ {
		if _, ok := args[i]; !ok {
			return nil, ipperr.New(ipperr.WrongXMLStructure, "argument index %d missing (arguments must be dense)", i)
		}
	}
	return args, nil
}

func argIndex(name string) (int, bool) {
	switch name {
	case "arg1":
		return 1, true
	case "arg2":
		return 2, true
	case "arg3":
		return 3, true
	}
	return 0, false
}

func buildArg(a xmlArg) (program.Arg, error) {
	text := strings.TrimSpace(a.Text)
	switch a.Type {
	case "int":
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return program.Arg{}, ipperr.New(ipperr.WrongXMLStructure, "invalid int literal %q", a.Text)
		}
		return program.Arg{Tag: program.ArgInt, Sym: value.NewInt(n)}, nil
	case "bool":
		return program.Arg{Tag: program.ArgBool, Sym: value.NewBoolFromLiteral(text)}, nil
	case "string":
		// Text is not trimmed for string literals: leading/trailing
		// whitespace is significant program content.
		return program.Arg{Tag: program.ArgString, Sym: value.NewString(a.Text)}, nil
	case "nil":
		return program.Arg{Tag: program.ArgNil, Sym: value.NewNil()}, nil
	case "var":
		frame, name, ok := strings.Cut(text, "@")
		if !ok {
			return program.Arg{}, ipperr.New(ipperr.WrongXMLStructure, "invalid var reference %q", a.Text)
		}
		return program.Arg{Tag: program.ArgVar, Frame: frame, Name: name}, nil
	case "label":
		return program.Arg{Tag: program.ArgLabel, Label: text}, nil
	case "type":
		if _, ok := value.ParseTag(text); !ok {
			return program.Arg{}, ipperr.New(ipperr.WrongXMLStructure, "invalid type literal %q", a.Text)
		}
		return program.Arg{Tag: program.ArgType, TypeName: text}, nil
	default:
		return program.Arg{}, ipperr.New(ipperr.WrongXMLStructure, "unknown argument type %q", a.Type)
	}
}
