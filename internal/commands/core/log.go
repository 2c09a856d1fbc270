package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/args"
	"github.com/keshon/prefixkit/internal/core"
)

const defaultLogCount = 10

type LogCommand struct{}

func (c *LogCommand) Name() string        { return "log" }
func (c *LogCommand) Description() string { return "Review recently used commands on this server" }
func (c *LogCommand) Aliases() []string   { return []string{"history"} }
func (c *LogCommand) Group() string       { return core.GroupCore }
func (c *LogCommand) Category() string    { return "🛠️ Maintenance" }
func (c *LogCommand) RequireAdmin() bool  { return false }
func (c *LogCommand) RequireDev() bool    { return false }

// Moderators with server-management rights can read the log too.
func (c *LogCommand) Permissions() []int64 {
	return []int64{
		discordgo.PermissionManageGuild,
		discordgo.PermissionViewAuditLogs,
	}
}

func (c *LogCommand) ArgSpec() []args.Arg {
	return []args.Arg{
		{Name: "count", Type: args.Int, Optional: true},
	}
}

func (c *LogCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*core.MessageContext)
	if !ok {
		return nil
	}

	session, event, storage := context.Session, context.Event, context.Storage

	count := defaultLogCount
	if context.Args != nil && context.Args.Has("count") {
		count = context.Args.Int("count")
	}
	if count < 1 {
		count = 1
	}

	history, err := storage.History(event.GuildID)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if len(history) == 0 {
		return core.MessageEmbed(session, event.ChannelID, &discordgo.MessageEmbed{
			Description: "No commands recorded yet.",
		})
	}
	if len(history) > count {
		history = history[len(history)-count:]
	}

	// Newest first
	var sb strings.Builder
	for i := len(history) - 1; i >= 0; i-- {
		rec := history[i]
		line := fmt.Sprintf("`%s` - **%s** by %s", rec.Datetime.Format("2006-01-02 15:04"), rec.Command, rec.Username)
		if rec.Param != "" {
			line += fmt.Sprintf(" (`%s`)", rec.Param)
		}
		sb.WriteString(line + "\n")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📜 Command Log",
		Description: sb.String(),
		Color:       core.EmbedColor,
	}
	return core.MessageEmbed(session, event.ChannelID, embed)
}

func init() {
	core.MustRegister(
		core.ApplyMiddlewares(
			&LogCommand{},
			core.WithGuildOnly(),
			core.WithUserPermissionCheck(),
			core.WithCommandLogger(),
		),
	)
}
