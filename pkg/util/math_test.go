package util

import "testing"

func TestRound(t *testing.T) {
	if got := Round(84.6666, 2); got != 84.67 {
		t.Fatalf("unexpected round %v", got)
	}
	if got := Round(17234.5, 0); got != 17235 {
		t.Fatalf("unexpected round %v", got)
	}
	if got := Round(47.25, 1); got != 47.3 {
		t.Fatalf("unexpected round %v", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(120, 5, 95); got != 95 {
		t.Fatalf("expected upper clamp, got %v", got)
	}
	if got := Clamp(-3, 5, 95); got != 5 {
		t.Fatalf("expected lower clamp, got %v", got)
	}
	if got := Clamp(42, 5, 95); got != 42 {
		t.Fatalf("expected passthrough, got %v", got)
	}
}
