package xmlload

import (
	"strings"
	"testing"

	"ipp23/pkg/ipperr"
)

func TestLoadHelloWorld(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR">
    <arg1 type="var">GF@x</arg1>
  </instruction>
  <instruction order="2" opcode="MOVE">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="string">Hello</arg2>
  </instruction>
  <instruction order="3" opcode="WRITE">
    <arg1 type="var">GF@x</arg1>
  </instruction>
</program>`

	prog, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if prog.Len() != 3 {
		t.Fatalf("expected 3 instructions, got %d", prog.Len())
	}
	prog.Finalize()
	if got := prog.Get(2); got.Opcode != "MOVE" {
		t.Fatalf("instruction 2 opcode = %q, want MOVE", got.Opcode)
	}
	arg2 := prog.Get(2).Args[2]
	if arg2.Sym.Str != "Hello" {
		t.Fatalf("arg2 string payload = %q, want Hello", arg2.Sym.Str)
	}
}

func TestLoadRejectsWrongLanguage(t *testing.T) {
	src := `<program language="NotIPP"></program>`
	_, err := Load(strings.NewReader(src))
	if e, ok := ipperr.As(err); !ok || e.Code != ipperr.WrongXMLStructure {
		t.Fatalf("want wrongXMLStructure, got %v", err)
	}
}

func TestLoadRejectsMalformedXML(t *testing.T) {
	_, err := Load(strings.NewReader(`<program language="IPPcode23">`))
	if e, ok := ipperr.As(err); !ok || e.Code != ipperr.WrongXMLFormat {
		t.Fatalf("want wrongXMLFormat, got %v", err)
	}
}

func TestLoadRejectsDuplicateOrder(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="CREATEFRAME"></instruction>
  <instruction order="1" opcode="CREATEFRAME"></instruction>
</program>`
	_, err := Load(strings.NewReader(src))
	if e, ok := ipperr.As(err); !ok || e.Code != ipperr.WrongXMLStructure {
		t.Fatalf("want wrongXMLStructure for duplicate order, got %v", err)
	}
}

func TestLoadRejectsGapInArguments(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="ADD">
    <arg1 type="var">GF@x</arg1>
    <arg3 type="int">1</arg3>
  </instruction>
</program>`
	_, err := Load(strings.NewReader(src))
	if e, ok := ipperr.As(err); !ok || e.Code != ipperr.WrongXMLStructure {
		t.Fatalf("want wrongXMLStructure for a gapped argument list, got %v", err)
	}
}

func TestLoadEmptyProgramSucceeds(t *testing.T) {
	prog, err := Load(strings.NewReader(`<program language="IPPcode23"></program>`))
	if err != nil {
		t.Fatalf("empty program should load cleanly: %v", err)
	}
	if prog.Len() != 0 {
		t.Fatalf("expected zero instructions, got %d", prog.Len())
	}
}

func TestVarPayloadForm(t *testing.T) {
	src := `<program language="IPPcode23">
  <instruction order="1" opcode="DEFVAR">
    <arg1 type="var">LF@count</arg1>
  </instruction>
</program>`
	prog, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	arg := prog.Get(1).Args[1]
	if arg.Frame != "LF" || arg.Name != "count" {
		t.Fatalf("var ref = %+v, want frame=LF name=count", arg)
	}
}
