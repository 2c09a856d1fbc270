package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// PermissionNames labels the permission bits commands ask for, for
// error messages.
var PermissionNames = map[int64]string{
	discordgo.PermissionKickMembers:        "Kick Members",
	discordgo.PermissionBanMembers:         "Ban Members",
	discordgo.PermissionAdministrator:      "Administrator",
	discordgo.PermissionManageChannels:     "Manage Channels",
	discordgo.PermissionManageGuild:        "Manage Server",
	discordgo.PermissionViewAuditLogs:      "View Audit Logs",
	discordgo.PermissionManageMessages:     "Manage Messages",
	discordgo.PermissionMentionEveryone:    "Mention Everyone",
	discordgo.PermissionManageThreads:      "Manage Threads",
	discordgo.PermissionManageNicknames:    "Manage Nicknames",
	discordgo.PermissionManageRoles:        "Manage Roles",
	discordgo.PermissionManageWebhooks:     "Manage Webhooks",
	discordgo.PermissionManageEvents:       "Manage Events",
	discordgo.PermissionModerateMembers:    "Moderate Members",
	discordgo.PermissionViewGuildInsights:  "View Guild Insights",
	discordgo.PermissionViewChannel:        "View Channel",
	discordgo.PermissionSendMessages:       "Send Messages",
	discordgo.PermissionReadMessageHistory: "Read Message History",
}

// WithUserPermissionCheck wraps a command to require Discord permission
// bits declared through the Permissioner interface. Any-of semantics:
// one matching permission grants access. Commands without declared
// permissions are open; administrators always bypass.
func WithUserPermissionCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				v, ok := ctx.(*MessageContext)
				if !ok {
					return cmd.Run(ctx)
				}

				var required []int64
				if pc, ok := cmd.(Permissioner); ok {
					required = pc.Permissions()
				}
				if len(required) == 0 {
					return cmd.Run(ctx)
				}

				// Headless runs and DMs have no permission context.
				if v.Session == nil || v.Event.GuildID == "" {
					return cmd.Run(ctx)
				}

				memberPerms, err := v.Session.UserChannelPermissions(v.Event.Author.ID, v.Event.ChannelID)
				if err != nil {
					return fmt.Errorf("get user permissions: %w", err)
				}

				if memberPerms&discordgo.PermissionAdministrator != 0 {
					return cmd.Run(ctx)
				}

				for _, p := range required {
					if memberPerms&p != 0 {
						return cmd.Run(ctx)
					}
				}

				names := make([]string, 0, len(required))
				for _, p := range required {
					name := PermissionNames[p]
					if name == "" {
						name = fmt.Sprintf("0x%x", p)
					}
					names = append(names, name)
				}
				return MessageEmbed(v.Session, v.Event.ChannelID, &discordgo.MessageEmbed{
					Description: fmt.Sprintf("You need at least one of the following permissions to run this command:\n`%s`",
						strings.Join(names, "`, `")),
				})
			},
		}
	}
}
