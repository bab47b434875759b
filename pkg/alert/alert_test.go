package alert

import "testing"

func TestEnabledRequiresAllThreeFields(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want bool
	}{
		{"all set", Config{Host: "smtp.example.com", From: "a@example.com", To: "b@example.com"}, true},
		{"missing host", Config{From: "a@example.com", To: "b@example.com"}, false},
		{"missing from", Config{Host: "smtp.example.com", To: "b@example.com"}, false},
		{"missing to", Config{Host: "smtp.example.com", From: "a@example.com"}, false},
		{"zero value", Config{}, false},
	}
	for _, tt := range tests {
		if got := tt.cfg.Enabled(); got != tt.want {
			t.Errorf("%s: Enabled() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNotifyIsNoOpWhenDisabled(t *testing.T) {
	if err := Notify(Config{}, "fp", "wrongType", "boom"); err != nil {
		t.Fatalf("Notify with an unconfigured Config should be a no-op, got %v", err)
	}
}
