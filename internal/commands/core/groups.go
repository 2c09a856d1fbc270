// Package core holds the built-in commands every deployment gets.
package core

import "github.com/keshon/prefixkit/internal/core"

// Built-in command groups.
const (
	groupInfo = "info"
	groupFun  = "fun"
)

func init() {
	for _, g := range []core.Group{
		{Name: core.GroupCore, Description: "Framework commands, always on"},
		{Name: groupInfo, Description: "Bot and server information"},
		{Name: groupFun, Description: "Games and dice"},
	} {
		if err := core.RegisterGroup(g); err != nil {
			panic(err)
		}
	}
}
