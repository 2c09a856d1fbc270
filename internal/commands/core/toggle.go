package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/args"
	"github.com/keshon/prefixkit/internal/core"
)

type ToggleCommand struct{}

func (c *ToggleCommand) Name() string        { return "toggle" }
func (c *ToggleCommand) Description() string { return "Enable or disable a command or command group" }
func (c *ToggleCommand) Aliases() []string   { return []string{} }
func (c *ToggleCommand) Group() string       { return core.GroupCore }
func (c *ToggleCommand) Category() string    { return "⚙️ Settings" }
func (c *ToggleCommand) RequireAdmin() bool  { return true }
func (c *ToggleCommand) RequireDev() bool    { return false }

func (c *ToggleCommand) ArgSpec() []args.Arg {
	return []args.Arg{
		{Name: "target", Type: args.String},
		{Name: "state", Type: args.String},
	}
}

func (c *ToggleCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*core.MessageContext)
	if !ok {
		return nil
	}

	session, event, storage := context.Session, context.Event, context.Storage
	target := strings.ToLower(context.Args.String("target"))
	state := strings.ToLower(context.Args.String("state"))

	embed := &discordgo.MessageEmbed{
		Color:  core.EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Use %sstatus to check what is disabled.", context.Prefix)},
	}

	if state != "enable" && state != "disable" {
		embed.Description = fmt.Sprintf("State must be `enable` or `disable`, got `%s`.", state)
		return core.MessageEmbed(session, event.ChannelID, embed)
	}

	// Prevent locking the framework out of its own controls.
	if target == core.GroupCore && state == "disable" {
		embed.Description = "You can't disable the `core` group. It's the backbone of the bot."
		return core.MessageEmbed(session, event.ChannelID, embed)
	}

	isGroup := false
	for _, g := range core.AllGroups() {
		if strings.EqualFold(g.Name, target) {
			isGroup = true
			break
		}
	}

	var err error
	switch {
	case isGroup && state == "disable":
		err = storage.DisableGroup(event.GuildID, target)
		embed.Description = fmt.Sprintf("Command group `%s` disabled.", target)
	case isGroup:
		err = storage.EnableGroup(event.GuildID, target)
		embed.Description = fmt.Sprintf("Command group `%s` enabled.", target)
	default:
		cmd, ok := core.GetCommand(target)
		if !ok {
			embed.Description = fmt.Sprintf("No command or group named `%s`.", target)
			return core.MessageEmbed(session, event.ChannelID, embed)
		}
		if cmd.Group() == core.GroupCore && state == "disable" {
			embed.Description = fmt.Sprintf("Command `%s` belongs to the `core` group and can't be disabled.", cmd.Name())
			return core.MessageEmbed(session, event.ChannelID, embed)
		}
		if state == "disable" {
			err = storage.DisableCommand(event.GuildID, cmd.Name())
			embed.Description = fmt.Sprintf("Command `%s` disabled.", cmd.Name())
		} else {
			err = storage.EnableCommand(event.GuildID, cmd.Name())
			embed.Description = fmt.Sprintf("Command `%s` enabled.", cmd.Name())
		}
	}
	if err != nil {
		return fmt.Errorf("toggle %s: %w", target, err)
	}

	return core.MessageEmbed(session, event.ChannelID, embed)
}

func init() {
	core.MustRegister(
		core.ApplyMiddlewares(
			&ToggleCommand{},
			core.WithGuildOnly(),
			core.WithAccessControl(),
			core.WithCommandLogger(),
		),
	)
}
