package core

import (
	"errors"
	"testing"

	"github.com/keshon/prefixkit/internal/args"
)

type stubCommand struct {
	name    string
	desc    string
	aliases []string
	group   string
	spec    []args.Arg
	ran     int
}

func (c *stubCommand) Name() string         { return c.name }
func (c *stubCommand) Description() string  { return c.desc }
func (c *stubCommand) Aliases() []string    { return c.aliases }
func (c *stubCommand) Group() string        { return c.group }
func (c *stubCommand) Category() string     { return "🛠️ Maintenance" }
func (c *stubCommand) RequireAdmin() bool   { return false }
func (c *stubCommand) RequireDev() bool     { return false }
func (c *stubCommand) ArgSpec() []args.Arg  { return c.spec }
func (c *stubCommand) Run(ctx interface{}) error {
	c.ran++
	return nil
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	cmd := &stubCommand{name: "ping", aliases: []string{"p"}}
	if err := r.Register(cmd); err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, key := range []string{"ping", "PING", "p", "P"} {
		got, ok := r.Get(key)
		if !ok {
			t.Fatalf("lookup %q failed", key)
		}
		if got.Name() != "ping" {
			t.Errorf("lookup %q = %s", key, got.Name())
		}
	}

	if _, ok := r.Get("pong"); ok {
		t.Error("unexpected hit for unregistered name")
	}
}

func TestRegisterDuplicateName(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&stubCommand{name: "ping"}); err != nil {
		t.Fatal(err)
	}
	err := r.Register(&stubCommand{name: "Ping"})
	if !errors.Is(err, ErrCommandExists) {
		t.Fatalf("expected ErrCommandExists, got %v", err)
	}
}

func TestRegisterAliasConflicts(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&stubCommand{name: "help", aliases: []string{"h"}}); err != nil {
		t.Fatal(err)
	}

	// Alias colliding with an existing alias.
	err := r.Register(&stubCommand{name: "history", aliases: []string{"h"}})
	if !errors.Is(err, ErrAliasExists) {
		t.Fatalf("expected ErrAliasExists, got %v", err)
	}
	// The failed registration must not leave the name behind.
	if _, ok := r.Get("history"); ok {
		t.Error("partial registration leaked")
	}

	// Alias colliding with an existing command name.
	err = r.Register(&stubCommand{name: "other", aliases: []string{"help"}})
	if !errors.Is(err, ErrAliasExists) {
		t.Fatalf("expected ErrAliasExists for name collision, got %v", err)
	}
}

func TestRegisterRejectsBadSignature(t *testing.T) {
	r := NewRegistry()

	cmd := &stubCommand{
		name: "bad",
		spec: []args.Arg{
			{Name: "a", Type: args.String, Optional: true},
			{Name: "b", Type: args.String},
		},
	}
	if err := r.Register(cmd); !errors.Is(err, args.ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestAddAlias(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&stubCommand{name: "help"}); err != nil {
		t.Fatal(err)
	}
	if err := r.AddAlias("help", "commands"); err != nil {
		t.Fatalf("add alias: %v", err)
	}
	if _, ok := r.Get("commands"); !ok {
		t.Error("alias not registered")
	}

	if err := r.AddAlias("help", "commands"); !errors.Is(err, ErrAliasExists) {
		t.Errorf("expected ErrAliasExists, got %v", err)
	}
	if err := r.AddAlias("ghost", "g"); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestAllDeduplicatesAliases(t *testing.T) {
	r := NewRegistry()

	r.MustRegister(
		&stubCommand{name: "ping", aliases: []string{"p", "pong"}},
		&stubCommand{name: "about"},
	)

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("All() = %d commands, want 2", len(all))
	}
	if all[0].Name() != "about" || all[1].Name() != "ping" {
		t.Errorf("All() not sorted: %v, %v", all[0].Name(), all[1].Name())
	}
}

func TestGroups(t *testing.T) {
	r := NewRegistry()

	if err := r.RegisterGroup(Group{Name: "fun", Description: "games"}); err != nil {
		t.Fatal(err)
	}
	if err := r.RegisterGroup(Group{Name: "Fun"}); !errors.Is(err, ErrGroupExists) {
		t.Fatalf("expected ErrGroupExists, got %v", err)
	}

	r.MustRegister(
		&stubCommand{name: "roll", group: "fun"},
		&stubCommand{name: "help", group: "core"},
	)

	groups := r.Groups()
	if len(groups) != 2 {
		t.Fatalf("Groups() = %v", groups)
	}
	if groups[0].Name != "core" || groups[1].Name != "fun" {
		t.Errorf("Groups() order = %v", groups)
	}
	if groups[1].Description != "games" {
		t.Errorf("explicit group description lost: %+v", groups[1])
	}
}

func TestSearch(t *testing.T) {
	r := NewRegistry()

	r.MustRegister(
		&stubCommand{name: "help", desc: "list commands", aliases: []string{"h"}},
		&stubCommand{name: "ping", desc: "check latency"},
	)

	if got := r.Search("laten"); len(got) != 1 || got[0].Name() != "ping" {
		t.Errorf("Search(laten) = %v", got)
	}
	if got := r.Search("ELP"); len(got) != 1 || got[0].Name() != "help" {
		t.Errorf("Search(ELP) = %v", got)
	}
	if got := r.Search("nothing"); len(got) != 0 {
		t.Errorf("Search(nothing) = %v", got)
	}
}

func TestMustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(&stubCommand{name: "ping"})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate MustRegister")
		}
	}()
	r.MustRegister(&stubCommand{name: "ping"})
}
