package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/pkg/cooldown"
	"github.com/keshon/prefixkit/pkg/util"
)

// WithCooldown wraps a command with a per-guild-per-user cooldown. The
// interval is resolved on first invocation: a command implementing
// Cooldowner wins, then defaultInterval, then the configured
// COMMAND_COOLDOWN. A resolved interval of zero disables the check.
func WithCooldown(defaultInterval time.Duration) Middleware {
	return func(cmd Command) Command {
		var (
			once    sync.Once
			tracker *cooldown.Tracker
		)

		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				v, ok := ctx.(*MessageContext)
				if !ok {
					return cmd.Run(ctx)
				}

				interval := defaultInterval
				if cd, ok := cmd.(Cooldowner); ok && cd.Cooldown() > 0 {
					interval = cd.Cooldown()
				}
				if interval <= 0 && v.Config != nil {
					interval = v.Config.CooldownInterval
				}
				if interval <= 0 {
					return cmd.Run(ctx)
				}
				once.Do(func() { tracker = cooldown.New(interval, 1) })

				key := v.Event.GuildID + ":" + v.Event.Author.ID
				if !tracker.Allow(key) {
					wait := tracker.Retry(key)
					return MessageEmbed(v.Session, v.Event.ChannelID, &discordgo.MessageEmbed{
						Description: fmt.Sprintf("Slow down. Try `%s%s` again in %s.",
							v.Prefix, cmd.Name(), util.FormatDuration(wait)),
					})
				}
				return cmd.Run(ctx)
			},
		}
	}
}
