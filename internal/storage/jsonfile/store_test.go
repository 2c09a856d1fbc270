package jsonfile

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRoundtrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("guild1", "prefix", []byte(`"?"`)); err != nil {
		t.Fatal(err)
	}
	val, ok, err := s.Get("guild1", "prefix")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || string(val) != `"?"` {
		t.Fatalf("got %q, %v", val, ok)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.Get("guild1", "nope"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
}

func TestRemove(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("guild1", "prefix", []byte(`"?"`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("guild1", "prefix"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get("guild1", "prefix"); ok {
		t.Fatal("key should be gone")
	}
	// Removing again is a no-op
	if err := s.Remove("guild1", "prefix"); err != nil {
		t.Fatal(err)
	}
}

func TestSetAfterCloseErrors(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// The datastore drops writes silently once closed; Set must notice
	// instead of reporting success.
	if err := s.Set("guild1", "prefix", []byte(`"?"`)); err == nil {
		t.Fatal("expected error for write after close")
	}
}

func TestGuildsIndexed(t *testing.T) {
	s := openTestStore(t)

	for _, g := range []string{"b", "a", "a"} {
		if err := s.Set(g, "prefix", []byte(`"?"`)); err != nil {
			t.Fatal(err)
		}
	}
	guilds, err := s.Guilds()
	if err != nil {
		t.Fatal(err)
	}
	if len(guilds) != 2 || guilds[0] != "a" || guilds[1] != "b" {
		t.Fatalf("guilds = %v", guilds)
	}
}

func TestGuildDroppedWhenEmpty(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("guild1", "prefix", []byte(`"?"`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("guild1", "prefix"); err != nil {
		t.Fatal(err)
	}
	guilds, err := s.Guilds()
	if err != nil {
		t.Fatal(err)
	}
	if len(guilds) != 0 {
		t.Fatalf("guilds = %v, want none", guilds)
	}
}
