package core

import "github.com/bwmarrin/discordgo"

// WithGuildOnly wraps a command to refuse invocation from direct
// messages.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if v, ok := ctx.(*MessageContext); ok && v.Event.GuildID == "" {
					return MessageEmbed(v.Session, v.Event.ChannelID, &discordgo.MessageEmbed{
						Description: "This command only works inside a server.",
					})
				}
				return cmd.Run(ctx)
			},
		}
	}
}
