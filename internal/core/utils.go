package core

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/storage"
)

// IsAdministrator reports whether the member is the guild owner, holds
// an administrator role, or is the configured developer.
func IsAdministrator(s *discordgo.Session, guildID string, member *discordgo.Member, developerID string) bool {
	if member == nil || member.User == nil {
		return false
	}
	if developerID != "" && member.User.ID == developerID {
		return true
	}

	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return false
		}
	}

	if member.User.ID == guild.OwnerID {
		return true
	}

	for _, r := range member.Roles {
		role, _ := s.State.Role(guildID, r)
		if role != nil && role.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}

	return false
}

// LogCommand appends an invocation to the guild's command history,
// resolving channel and guild names through the session state where
// possible.
func LogCommand(ctx *MessageContext, commandName, param string) error {
	s, m := ctx.Session, ctx.Event

	channelName := ""
	guildName := ""
	if s != nil {
		channel, err := s.State.Channel(m.ChannelID)
		if err != nil {
			channel, err = s.Channel(m.ChannelID)
			if err != nil {
				log.Println("[WARN] Failed to fetch channel:", err)
			}
		}
		if channel != nil {
			channelName = channel.Name
		}

		if m.GuildID != "" {
			guild, err := s.State.Guild(m.GuildID)
			if err != nil {
				guild, err = s.Guild(m.GuildID)
				if err != nil {
					log.Println("[WARN] Failed to fetch guild:", err)
				}
			}
			if guild != nil {
				guildName = guild.Name
			}
		}
	}

	return ctx.Storage.AppendHistory(m.GuildID, storage.HistoryRecord{
		ChannelID:   m.ChannelID,
		ChannelName: channelName,
		GuildName:   guildName,
		UserID:      m.Author.ID,
		Username:    m.Author.Username,
		Command:     commandName,
		Param:       param,
		Datetime:    m.Timestamp,
	})
}
