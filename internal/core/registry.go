package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/keshon/prefixkit/internal/args"
)

var (
	ErrCommandExists = errors.New("command already registered")
	ErrAliasExists   = errors.New("alias already registered")
	ErrGroupExists   = errors.New("group already registered")
)

// Registry maps names and aliases to commands and tracks groups.
// Lookup is case-insensitive. Safe for concurrent use, although in
// practice everything is registered during init.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command // lower-cased name or alias -> command
	groups   map[string]Group   // lower-cased group name -> group
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		groups:   make(map[string]Group),
	}
}

// Default is the registry the built-in commands register into.
var Default = NewRegistry()

// Register adds a command under its name and all aliases. Nothing is
// registered if the name or any alias collides with an existing entry,
// or if a declared argument signature is malformed.
func (r *Registry) Register(cmd Command) error {
	name := strings.ToLower(cmd.Name())
	if name == "" {
		return fmt.Errorf("command has no name")
	}
	if ap, ok := cmd.(ArgProvider); ok {
		if err := args.ValidateSignature(ap.ArgSpec()); err != nil {
			return fmt.Errorf("command %q: %w", name, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("%w: %s", ErrCommandExists, name)
	}
	keys := []string{name}
	for _, alias := range cmd.Aliases() {
		a := strings.ToLower(alias)
		if _, exists := r.commands[a]; exists {
			return fmt.Errorf("%w: %s (command %s)", ErrAliasExists, a, name)
		}
		keys = append(keys, a)
	}

	for _, k := range keys {
		r.commands[k] = cmd
	}
	return nil
}

// MustRegister registers commands and panics on conflict. For use from
// init() where a collision is a programming error.
func (r *Registry) MustRegister(cmds ...Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// AddAlias binds an extra alias to an already registered command.
// Deployment overrides use this after init-time registration.
func (r *Registry) AddAlias(name, alias string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd, ok := r.commands[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	a := strings.ToLower(alias)
	if _, exists := r.commands[a]; exists {
		return fmt.Errorf("%w: %s", ErrAliasExists, a)
	}
	r.commands[a] = cmd
	return nil
}

// RegisterGroup records a group description. Groups implied by command
// registration need no explicit entry; this only rejects duplicates.
func (r *Registry) RegisterGroup(g Group) error {
	name := strings.ToLower(g.Name)
	if name == "" {
		return fmt.Errorf("group has no name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[name]; exists {
		return fmt.Errorf("%w: %s", ErrGroupExists, name)
	}
	r.groups[name] = g
	return nil
}

// Get returns the command registered under name or alias.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[strings.ToLower(name)]
	return cmd, ok
}

// All returns every registered command once, sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := map[string]bool{}
	list := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if seen[cmd.Name()] {
			continue
		}
		list = append(list, cmd)
		seen[cmd.Name()] = true
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// Groups returns registered groups plus groups implied by commands,
// sorted by name.
func (r *Registry) Groups() []Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byName := make(map[string]Group, len(r.groups))
	for name, g := range r.groups {
		byName[name] = g
	}
	for _, cmd := range r.commands {
		name := strings.ToLower(cmd.Group())
		if name == "" {
			continue
		}
		if _, ok := byName[name]; !ok {
			byName[name] = Group{Name: cmd.Group()}
		}
	}

	list := make([]Group, 0, len(byName))
	for _, g := range byName {
		list = append(list, g)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Search returns commands whose name, alias or description contains
// term, case-insensitively. Linear scan; the registry is small.
func (r *Registry) Search(term string) []Command {
	term = strings.ToLower(term)

	var out []Command
	for _, cmd := range r.All() {
		if strings.Contains(strings.ToLower(cmd.Name()), term) ||
			strings.Contains(strings.ToLower(cmd.Description()), term) {
			out = append(out, cmd)
			continue
		}
		for _, alias := range cmd.Aliases() {
			if strings.Contains(strings.ToLower(alias), term) {
				out = append(out, cmd)
				break
			}
		}
	}
	return out
}

// Package-level helpers operating on the Default registry.

func Register(cmd Command) error          { return Default.Register(cmd) }
func MustRegister(cmds ...Command)        { Default.MustRegister(cmds...) }
func AddAlias(name, alias string) error   { return Default.AddAlias(name, alias) }
func RegisterGroup(g Group) error         { return Default.RegisterGroup(g) }
func GetCommand(name string) (Command, bool) { return Default.Get(name) }
func AllCommands() []Command              { return Default.All() }
func AllGroups() []Group                  { return Default.Groups() }
