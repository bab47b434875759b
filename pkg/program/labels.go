package program

import "ipp23/pkg/ipperr"

// Labels maps a LABEL name to the order of the instruction it names.
type Labels map[string]int

// ScanLabels walks the program once in sorted order, recording every LABEL
// instruction's name. A duplicate name is a semantics error. Finalize must
// have been called on p first.
func ScanLabels(p *Program) (Labels, error) {
	labels := make(Labels)
	for _, order := range p.Orders() {
		instr := p.Get(order)
		if instr.Opcode != "LABEL" {
			continue
		}
		arg, ok := instr.Args[1]
		if !ok || arg.Tag != ArgLabel {
			return nil, ipperr.New(ipperr.WrongXMLStructure, "LABEL at order %d missing a label argument", order)
		}
		if _, dup := labels[arg.Label]; dup {
			return nil, ipperr.New(ipperr.Semantics, "duplicate label %q", arg.Label)
		}
		labels[arg.Label] = order
	}
	return labels, nil
}
