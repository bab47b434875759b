package debugserver

import (
	"testing"

	"ipp23/pkg/engine"
)

func TestStartAndCloseOnEphemeralPort(t *testing.T) {
	s, err := Start("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer s.Close()

	// With no connected clients, broadcasting must never block the caller.
	sink := s.Sink()
	sink(engine.Event{Kind: "dprint", Order: 1, Text: "hello"})
}

func TestCloseSucceedsAfterStart(t *testing.T) {
	s, err := Start("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}
