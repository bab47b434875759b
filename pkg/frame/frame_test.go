package frame

import (
	"testing"

	"ipp23/pkg/ipperr"
	"ipp23/pkg/value"
)

func TestGetFrameErrors(t *testing.T) {
	s := NewStore()

	if _, err := s.Get("LF"); err == nil {
		t.Fatal("LF with an empty local stack should fail")
	} else if e, ok := ipperr.As(err); !ok || e.Code != ipperr.NotExistingFrame {
		t.Fatalf("want notExistingFrame, got %v", err)
	}

	if _, err := s.Get("TF"); err == nil {
		t.Fatal("TF before CreateFrame should fail")
	}

	if _, err := s.Get("GF"); err != nil {
		t.Fatalf("GF should always be present: %v", err)
	}
}

func TestDefineAndRedefine(t *testing.T) {
	s := NewStore()
	gf, _ := s.Get("GF")
	if err := gf.Define("x"); err != nil {
		t.Fatalf("first define should succeed: %v", err)
	}
	err := gf.Define("x")
	if err == nil {
		t.Fatal("redefining x should fail")
	}
	if e, ok := ipperr.As(err); !ok || e.Code != ipperr.Semantics {
		t.Fatalf("want semantics error, got %v", err)
	}
}

func TestLookupUndefinedVariable(t *testing.T) {
	s := NewStore()
	gf, _ := s.Get("GF")
	_, err := gf.Lookup("missing")
	if e, ok := ipperr.As(err); !ok || e.Code != ipperr.NotExistingVariable {
		t.Fatalf("want notExistingVariable, got %v", err)
	}
}

func TestCreatePushPopFrameCycle(t *testing.T) {
	s := NewStore()
	s.CreateFrame()
	tf, err := s.Get("TF")
	if err != nil {
		t.Fatalf("TF should be present after CreateFrame: %v", err)
	}
	if err := tf.Define("x"); err != nil {
		t.Fatalf("DEFVAR TF@x failed: %v", err)
	}
	if err := s.PushFrame(); err != nil {
		t.Fatalf("PushFrame failed: %v", err)
	}
	if _, err := s.Get("TF"); err == nil {
		t.Fatal("TF should be absent after PushFrame")
	}
	if err := s.PopFrame(); err != nil {
		t.Fatalf("PopFrame failed: %v", err)
	}
	tf2, err := s.Get("TF")
	if err != nil {
		t.Fatalf("TF should be present after PopFrame: %v", err)
	}
	if _, err := tf2.Lookup("x"); err != nil {
		t.Fatalf("x should have survived the PUSHFRAME/POPFRAME round trip: %v", err)
	}
}

func TestPushFrameWithoutTFFails(t *testing.T) {
	s := NewStore()
	if err := s.PushFrame(); err == nil {
		t.Fatal("PushFrame without a TF should fail")
	}
}

func TestPopFrameWithEmptyLocalStackFails(t *testing.T) {
	s := NewStore()
	if err := s.PopFrame(); err == nil {
		t.Fatal("PopFrame with an empty local stack should fail")
	}
}

func TestDumpSkipsAbsentFrames(t *testing.T) {
	s := NewStore()
	gf, _ := s.Get("GF")
	gf.Define("x")
	gf.Lookup("x")
	if v, err := gf.Lookup("x"); err == nil {
		v.Set(value.NewInt(1))
	}
	dumps := s.Dump()
	if len(dumps) != 1 {
		t.Fatalf("expected only GF in the dump, got %d frames", len(dumps))
	}
	if dumps[0].Name != "GF" {
		t.Fatalf("expected GF, got %s", dumps[0].Name)
	}
}
