package core

import (
	"fmt"

	"github.com/keshon/prefixkit/internal/core"
)

type PingCommand struct{}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Pong! Check gateway latency" }
func (c *PingCommand) Aliases() []string   { return []string{"pong"} }
func (c *PingCommand) Group() string       { return groupInfo }
func (c *PingCommand) Category() string    { return "🕯️ Information" }
func (c *PingCommand) RequireAdmin() bool  { return false }
func (c *PingCommand) RequireDev() bool    { return false }

func (c *PingCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*core.MessageContext)
	if !ok {
		return nil
	}

	latency := int64(0)
	if context.Session != nil {
		latency = context.Session.HeartbeatLatency().Milliseconds()
	}
	return core.MessageRespond(context.Session, context.Event.ChannelID,
		fmt.Sprintf("🏓 Pong! Response time: `%dms`", latency))
}

func init() {
	core.MustRegister(
		core.ApplyMiddlewares(
			&PingCommand{},
			core.WithGroupAccessCheck(),
			core.WithCooldown(0),
			core.WithCommandLogger(),
		),
	)
}
