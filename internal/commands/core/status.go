package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/core"
)

type StatusCommand struct{}

func (c *StatusCommand) Name() string        { return "status" }
func (c *StatusCommand) Description() string { return "Check which commands and groups are disabled" }
func (c *StatusCommand) Aliases() []string   { return []string{} }
func (c *StatusCommand) Group() string       { return core.GroupCore }
func (c *StatusCommand) Category() string    { return "⚙️ Settings" }
func (c *StatusCommand) RequireAdmin() bool  { return false }
func (c *StatusCommand) RequireDev() bool    { return false }

func (c *StatusCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*core.MessageContext)
	if !ok {
		return nil
	}

	session, event, storage := context.Session, context.Event, context.Storage

	disabledGroups, err := storage.DisabledGroups(event.GuildID)
	if err != nil {
		return fmt.Errorf("read disabled groups: %w", err)
	}
	disabledCommands, err := storage.DisabledCommands(event.GuildID)
	if err != nil {
		return fmt.Errorf("read disabled commands: %w", err)
	}

	var sb strings.Builder
	for _, g := range core.AllGroups() {
		state := "✅ enabled"
		for _, d := range disabledGroups {
			if strings.EqualFold(d, g.Name) {
				state = "🚫 disabled"
				break
			}
		}
		sb.WriteString(fmt.Sprintf("`%s` - %s", g.Name, state))
		if g.Description != "" {
			sb.WriteString(" - " + g.Description)
		}
		sb.WriteString("\n")
	}
	if len(disabledCommands) > 0 {
		sb.WriteString(fmt.Sprintf("\nDisabled commands: `%s`\n", strings.Join(disabledCommands, "`, `")))
	}
	sb.WriteString(fmt.Sprintf("\nUse `%stoggle <target> <enable|disable>` to change.", context.Prefix))

	embed := &discordgo.MessageEmbed{
		Title:       "🎚️ Command Status",
		Description: sb.String(),
		Color:       core.EmbedColor,
	}
	return core.MessageEmbed(session, event.ChannelID, embed)
}

func init() {
	core.MustRegister(
		core.ApplyMiddlewares(
			&StatusCommand{},
			core.WithGuildOnly(),
			core.WithCommandLogger(),
		),
	)
}
