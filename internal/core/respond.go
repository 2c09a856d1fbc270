package core

import (
	"github.com/bwmarrin/discordgo"
)

const EmbedColor = 0x4059c9

// MessageRespond sends plain text to a channel. A nil session is a
// no-op so headless runs (tests, CLI) can exercise command logic.
func MessageRespond(s *discordgo.Session, channelID string, content string) error {
	if s == nil {
		return nil
	}
	_, err := s.ChannelMessageSend(channelID, content)
	return err
}

// MessageEmbed sends an embed to a channel, applying the default color
// when none is set.
func MessageEmbed(s *discordgo.Session, channelID string, embed *discordgo.MessageEmbed) error {
	if s == nil {
		return nil
	}
	if embed.Color == 0 {
		embed.Color = EmbedColor
	}
	_, err := s.ChannelMessageSendEmbed(channelID, embed)
	return err
}

// MessageReply sends an embed as a reply to the invoking message.
func MessageReply(s *discordgo.Session, m *discordgo.Message, embed *discordgo.MessageEmbed) error {
	if s == nil {
		return nil
	}
	if embed.Color == 0 {
		embed.Color = EmbedColor
	}
	_, err := s.ChannelMessageSendEmbedReply(m.ChannelID, embed, m.Reference())
	return err
}
