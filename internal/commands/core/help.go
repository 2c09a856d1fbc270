package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/args"
	"github.com/keshon/prefixkit/internal/config"
	"github.com/keshon/prefixkit/internal/core"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Show available commands" }
func (c *HelpCommand) Aliases() []string   { return []string{"h", "commands"} }
func (c *HelpCommand) Group() string       { return core.GroupCore }
func (c *HelpCommand) Category() string    { return "🕯️ Information" }
func (c *HelpCommand) RequireAdmin() bool  { return false }
func (c *HelpCommand) RequireDev() bool    { return false }

func (c *HelpCommand) ArgSpec() []args.Arg {
	return []args.Arg{
		{Name: "command", Type: args.String, Optional: true},
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*core.MessageContext)
	if !ok {
		return nil
	}

	if context.Args != nil && context.Args.Has("command") {
		return c.runDetail(context, context.Args.String("command"))
	}
	return c.runList(context)
}

// runDetail renders one command's full card.
func (c *HelpCommand) runDetail(context *core.MessageContext, name string) error {
	cmd, ok := core.GetCommand(name)
	if !ok {
		return core.MessageEmbed(context.Session, context.Event.ChannelID, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("No such command: `%s`", name),
		})
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Group", Value: "`" + cmd.Group() + "`", Inline: true},
	}
	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Aliases", Value: "`" + strings.Join(aliases, "`, `") + "`", Inline: true,
		})
	}
	if ap, ok := cmd.(core.ArgProvider); ok && len(ap.ArgSpec()) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Usage", Value: "`" + args.Usage(context.Prefix, cmd.Name(), ap.ArgSpec()) + "`",
		})
	}
	if cmd.RequireAdmin() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Access", Value: "Administrators only",
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       context.Prefix + cmd.Name(),
		Description: cmd.Description(),
		Color:       core.EmbedColor,
		Fields:      fields,
	}
	return core.MessageEmbed(context.Session, context.Event.ChannelID, embed)
}

// runList renders every visible command, bucketed by category.
func (c *HelpCommand) runList(context *core.MessageContext) error {
	isDev := context.Config != nil &&
		context.Config.DeveloperID != "" &&
		context.Event.Author.ID == context.Config.DeveloperID

	categoryMap := make(map[string][]core.Command)
	for _, cmd := range core.AllCommands() {
		if cmd.RequireDev() && !isDev {
			continue
		}
		categoryMap[cmd.Category()] = append(categoryMap[cmd.Category()], cmd)
	}

	cats := make([]string, 0, len(categoryMap))
	for cat := range categoryMap {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		wi, wj := config.CategoryWeights[cats[i]], config.CategoryWeights[cats[j]]
		if wi != wj {
			return wi < wj
		}
		return cats[i] < cats[j]
	})

	var sb strings.Builder
	for _, cat := range cats {
		sb.WriteString(fmt.Sprintf("**%s**\n", cat))
		for _, cmd := range categoryMap[cat] {
			marker := ""
			if cmd.RequireAdmin() {
				marker = " 🔒"
			}
			sb.WriteString(fmt.Sprintf("`%s%s` - %s%s\n", context.Prefix, cmd.Name(), cmd.Description(), marker))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Use `%shelp <command>` for details.", context.Prefix))

	embed := &discordgo.MessageEmbed{
		Title:       "📖 Available Commands",
		Description: sb.String(),
		Color:       core.EmbedColor,
	}
	return core.MessageEmbed(context.Session, context.Event.ChannelID, embed)
}

func init() {
	core.MustRegister(
		core.ApplyMiddlewares(
			&HelpCommand{},
			core.WithCommandLogger(),
		),
	)
}
