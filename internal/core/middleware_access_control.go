package core

import "github.com/bwmarrin/discordgo"

// WithAccessControl wraps a command to enforce RequireAdmin and
// RequireDev flags.
func WithAccessControl() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				v, ok := ctx.(*MessageContext)
				if !ok {
					return cmd.Run(ctx)
				}

				developerID := ""
				if v.Config != nil {
					developerID = v.Config.DeveloperID
				}

				if cmd.RequireDev() && v.Event.Author.ID != developerID {
					return MessageEmbed(v.Session, v.Event.ChannelID, &discordgo.MessageEmbed{
						Description: "This command is reserved for the bot developer.",
					})
				}

				if cmd.RequireAdmin() {
					// MessageCreate members arrive without the User field.
					member := v.Event.Member
					if member != nil && member.User == nil {
						mc := *member
						mc.User = v.Event.Author
						member = &mc
					}
					if v.Event.GuildID == "" || !IsAdministrator(v.Session, v.Event.GuildID, member, developerID) {
						return MessageEmbed(v.Session, v.Event.ChannelID, &discordgo.MessageEmbed{
							Description: "You need administrator rights to run this command.",
						})
					}
				}

				return cmd.Run(ctx)
			},
		}
	}
}
