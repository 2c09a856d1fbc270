package core

import (
	"fmt"
	"time"

	"github.com/keshon/prefixkit/internal/core"
	"github.com/keshon/prefixkit/pkg/util"
)

var startTime = time.Now()

type UptimeCommand struct{}

func (c *UptimeCommand) Name() string        { return "uptime" }
func (c *UptimeCommand) Description() string { return "How long the bot has been running" }
func (c *UptimeCommand) Aliases() []string   { return []string{} }
func (c *UptimeCommand) Group() string       { return groupInfo }
func (c *UptimeCommand) Category() string    { return "🕯️ Information" }
func (c *UptimeCommand) RequireAdmin() bool  { return false }
func (c *UptimeCommand) RequireDev() bool    { return false }

func (c *UptimeCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*core.MessageContext)
	if !ok {
		return nil
	}

	up := time.Since(startTime)
	return core.MessageRespond(context.Session, context.Event.ChannelID,
		fmt.Sprintf("⏱️ Up for %s (since %s)",
			util.FormatDuration(up),
			util.FormatDateTpl(startTime.UTC(), "YYYY/MM/DD")))
}

func init() {
	core.MustRegister(
		core.ApplyMiddlewares(
			&UptimeCommand{},
			core.WithGroupAccessCheck(),
			core.WithCommandLogger(),
		),
	)
}
