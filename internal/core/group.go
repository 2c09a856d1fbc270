package core

// Group is a named bucket of related commands that can be enabled or
// disabled per guild as one unit.
type Group struct {
	Name        string
	Description string
}

// GroupCore is the group holding the framework's own commands. It can
// never be disabled; losing it would take help/toggle down with it.
const GroupCore = "core"
