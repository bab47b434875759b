package value

import "testing"

func TestNewStringUnescapesDecimalEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`hello`, "hello"},
		{`a\032b`, "a b"},
		{`\065\066\067`, "ABC"},
		{`no\escape`, `no\escape`}, // "\es" is not three digits, left untouched
	}
	for _, tt := range tests {
		if got := NewString(tt.input).Str; got != tt.want {
			t.Errorf("NewString(%q).Str = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNewBoolFromLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"anything else", false},
	}
	for _, tt := range tests {
		if got := NewBoolFromLiteral(tt.input).Bool; got != tt.want {
			t.Errorf("NewBoolFromLiteral(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestEqualNilOnlyEqualsNil(t *testing.T) {
	n := NewNil()
	if eq, ok := n.Equal(NewNil()); !ok || !eq {
		t.Fatalf("nil == nil should hold, got eq=%v ok=%v", eq, ok)
	}
	if eq, ok := n.Equal(NewInt(0)); !ok || eq {
		t.Fatalf("nil == int(0) should hold as false, got eq=%v ok=%v", eq, ok)
	}
}

func TestEqualMixedNonNilTypesIsNotOK(t *testing.T) {
	if _, ok := NewInt(1).Equal(NewString("1")); ok {
		t.Fatal("comparing int to string should not be ok (wrongType territory)")
	}
}

func TestLessRequiresSameOrderableType(t *testing.T) {
	if _, ok := NewNil().Less(NewNil()); ok {
		t.Fatal("nil ordering must not be ok")
	}
	if less, ok := NewBool(false).Less(NewBool(true)); !ok || !less {
		t.Fatalf("false < true should hold, got less=%v ok=%v", less, ok)
	}
	if less, ok := NewString("abc").Less(NewString("abd")); !ok || !less {
		t.Fatalf("lexicographic string ordering failed: less=%v ok=%v", less, ok)
	}
}

func TestVariableUninitializedByDefault(t *testing.T) {
	v := NewVariable("x")
	if v.Initialized() {
		t.Fatal("freshly defined variable must be uninitialized")
	}
	v.Set(NewInt(5))
	if !v.Initialized() {
		t.Fatal("variable should be initialized after Set")
	}
	got, ok := v.Get()
	if !ok || got.Int != 5 {
		t.Fatalf("Get() = %v, %v; want 5, true", got, ok)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		sym  Symbol
		want string
	}{
		{NewInt(-7), "-7"},
		{NewBool(true), "true"},
		{NewBool(false), "false"},
		{NewString("hi"), "hi"},
		{NewNil(), ""},
	}
	for _, tt := range tests {
		if got := tt.sym.Render(); got != tt.want {
			t.Errorf("Render() = %q, want %q", got, tt.want)
		}
	}
}
