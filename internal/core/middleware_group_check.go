package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// WithGroupAccessCheck wraps a command to skip execution when its group
// or the command itself is disabled in the guild. The core group is
// exempt so the toggle commands stay reachable.
func WithGroupAccessCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				v, ok := ctx.(*MessageContext)
				if !ok {
					return cmd.Run(ctx)
				}
				if v.Event.GuildID == "" || v.Storage == nil {
					return cmd.Run(ctx)
				}
				if cmd.Group() == GroupCore {
					return cmd.Run(ctx)
				}

				if disabled, err := v.Storage.IsCommandDisabled(v.Event.GuildID, cmd.Name()); err == nil && disabled {
					return respondDisabled(v, fmt.Sprintf("Command `%s` is disabled on this server.", cmd.Name()))
				}
				if cmd.Group() != "" {
					if disabled, err := v.Storage.IsGroupDisabled(v.Event.GuildID, cmd.Group()); err == nil && disabled {
						return respondDisabled(v, fmt.Sprintf("Command group `%s` is disabled on this server.", cmd.Group()))
					}
				}

				return cmd.Run(ctx)
			},
		}
	}
}

func respondDisabled(v *MessageContext, msg string) error {
	return MessageEmbed(v.Session, v.Event.ChannelID, &discordgo.MessageEmbed{
		Description: msg + fmt.Sprintf("\nUse `%sstatus` to see what is disabled.", v.Prefix),
	})
}
