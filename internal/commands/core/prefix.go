package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/args"
	"github.com/keshon/prefixkit/internal/core"
)

const maxPrefixLength = 5

type PrefixCommand struct{}

func (c *PrefixCommand) Name() string        { return "prefix" }
func (c *PrefixCommand) Description() string { return "Show or change the command prefix for this server" }
func (c *PrefixCommand) Aliases() []string   { return []string{} }
func (c *PrefixCommand) Group() string       { return core.GroupCore }
func (c *PrefixCommand) Category() string    { return "⚙️ Settings" }
func (c *PrefixCommand) RequireAdmin() bool  { return true }
func (c *PrefixCommand) RequireDev() bool    { return false }

func (c *PrefixCommand) ArgSpec() []args.Arg {
	return []args.Arg{
		{Name: "prefix", Type: args.String, Optional: true},
	}
}

func (c *PrefixCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*core.MessageContext)
	if !ok {
		return nil
	}

	session, event, storage := context.Session, context.Event, context.Storage
	embed := &discordgo.MessageEmbed{Color: core.EmbedColor}

	if context.Args == nil || !context.Args.Has("prefix") {
		embed.Description = fmt.Sprintf("Current prefix: `%s`\nChange it with `%sprefix <new>` or restore the default with `%sprefix reset`.",
			context.Prefix, context.Prefix, context.Prefix)
		return core.MessageEmbed(session, event.ChannelID, embed)
	}

	newPrefix := context.Args.String("prefix")
	if newPrefix == "reset" {
		if err := storage.RemoveGuildPrefix(event.GuildID); err != nil {
			return fmt.Errorf("reset prefix: %w", err)
		}
		embed.Description = fmt.Sprintf("Prefix restored to the default `%s`.", context.Config.DefaultPrefix)
		return core.MessageEmbed(session, event.ChannelID, embed)
	}

	if len(newPrefix) > maxPrefixLength {
		embed.Description = fmt.Sprintf("Prefix too long, keep it under %d characters.", maxPrefixLength+1)
		return core.MessageEmbed(session, event.ChannelID, embed)
	}
	if strings.ContainsAny(newPrefix, " \t") {
		embed.Description = "Prefix cannot contain whitespace."
		return core.MessageEmbed(session, event.ChannelID, embed)
	}

	if err := storage.SetGuildPrefix(event.GuildID, newPrefix); err != nil {
		return fmt.Errorf("set prefix: %w", err)
	}
	embed.Description = fmt.Sprintf("Prefix changed to `%s`. Try `%sping`.", newPrefix, newPrefix)
	return core.MessageEmbed(session, event.ChannelID, embed)
}

func init() {
	core.MustRegister(
		core.ApplyMiddlewares(
			&PrefixCommand{},
			core.WithGuildOnly(),
			core.WithAccessControl(),
			core.WithCommandLogger(),
		),
	)
}
