package receipt

import (
	"testing"
	"time"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	s := Summary{
		Fingerprint: "abc123",
		ExitCode:    0,
		Instr:       42,
		Duration:    150 * time.Millisecond,
	}
	token, err := Sign(s, "super-secret")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	claims, err := Verify(token, "super-secret")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims["fingerprint"] != "abc123" {
		t.Fatalf("fingerprint claim = %v, want abc123", claims["fingerprint"])
	}
	if int(claims["instr_count"].(float64)) != 42 {
		t.Fatalf("instr_count claim = %v, want 42", claims["instr_count"])
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := Sign(Summary{ExitCode: 1}, "right-secret")
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if _, err := Verify(token, "wrong-secret"); err == nil {
		t.Fatal("Verify should reject a token signed with a different secret")
	}
}
