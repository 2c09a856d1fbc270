package cooldown

import (
	"testing"
	"time"
)

func TestAllowBurstThenDeny(t *testing.T) {
	cd := New(time.Hour, 2)

	if !cd.Allow("a") {
		t.Fatal("first event should be allowed")
	}
	if !cd.Allow("a") {
		t.Fatal("second event within burst should be allowed")
	}
	if cd.Allow("a") {
		t.Fatal("third event should be denied")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	cd := New(time.Hour, 1)

	if !cd.Allow("guild1:user") {
		t.Fatal("first key should be allowed")
	}
	if !cd.Allow("guild2:user") {
		t.Fatal("second key should be allowed")
	}
	if cd.Allow("guild1:user") {
		t.Fatal("repeat on first key should be denied")
	}
}

func TestRetryAfterDeny(t *testing.T) {
	cd := New(time.Hour, 1)

	cd.Allow("a")
	if d := cd.Retry("a"); d <= 0 {
		t.Fatalf("expected positive retry delay, got %v", d)
	}
	if d := cd.Retry("b"); d != 0 {
		t.Fatalf("expected zero delay for fresh key, got %v", d)
	}
}

func TestSweepDropsIdleEntries(t *testing.T) {
	cd := New(time.Hour, 1)

	cd.Allow("a")
	cd.Allow("b")
	if n := cd.Len(); n != 2 {
		t.Fatalf("expected 2 tracked keys, got %d", n)
	}

	if dropped := cd.Sweep(0); dropped != 2 {
		t.Fatalf("expected 2 dropped, got %d", dropped)
	}
	if n := cd.Len(); n != 0 {
		t.Fatalf("expected 0 tracked keys after sweep, got %d", n)
	}
}
