package ratelimit

import "testing"

func TestAllowWithinCapacity(t *testing.T) {
	l := New()
	for i := 0; i < 5; i++ {
		if !l.Allow("k", 5, 0) {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if l.Allow("k", 5, 0) {
		t.Fatalf("expected bucket to be exhausted")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := New()
	for i := 0; i < 3; i++ {
		l.Allow("a", 3, 0)
	}
	if l.Allow("a", 3, 0) {
		t.Fatalf("key a should be exhausted")
	}
	if !l.Allow("b", 3, 0) {
		t.Fatalf("key b should have its own bucket")
	}
}
