package sqlite

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "settings.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("guild1", "prefix", []byte(`"?"`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	val, ok, err := store.Get("guild1", "prefix")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if string(val) != `"?"` {
		t.Errorf("value = %q", val)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get("guild1", "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected missing key")
	}
}

func TestSetOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("g", "k", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Set("g", "k", []byte("2")); err != nil {
		t.Fatal(err)
	}

	val, _, err := store.Get("g", "k")
	if err != nil {
		t.Fatal(err)
	}
	if string(val) != "2" {
		t.Errorf("value = %q, want 2", val)
	}
}

func TestRemove(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set("g", "k", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Remove("g", "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := store.Get("g", "k"); ok {
		t.Fatal("expected key removed")
	}

	// Removing again is not an error.
	if err := store.Remove("g", "k"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
}

func TestGuilds(t *testing.T) {
	store := openTestStore(t)

	_ = store.Set("b", "k", []byte("1"))
	_ = store.Set("a", "k", []byte("1"))
	_ = store.Set("a", "k2", []byte("2"))

	guilds, err := store.Guilds()
	if err != nil {
		t.Fatalf("guilds: %v", err)
	}
	if len(guilds) != 2 || guilds[0] != "a" || guilds[1] != "b" {
		t.Errorf("guilds = %v", guilds)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	store, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set("g", "k", []byte("kept")); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	val, ok, err := store.Get("g", "k")
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if string(val) != "kept" {
		t.Errorf("value = %q", val)
	}
}
