package core

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/core"
	"github.com/keshon/prefixkit/internal/version"
)

type AboutCommand struct{}

func (c *AboutCommand) Name() string        { return "about" }
func (c *AboutCommand) Description() string { return "Discover the origin of this bot" }
func (c *AboutCommand) Aliases() []string   { return []string{} }
func (c *AboutCommand) Group() string       { return groupInfo }
func (c *AboutCommand) Category() string    { return "🕯️ Information" }
func (c *AboutCommand) RequireAdmin() bool  { return false }
func (c *AboutCommand) RequireDev() bool    { return false }

func (c *AboutCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*core.MessageContext)
	if !ok {
		return nil
	}

	// Format build date
	buildDate := "unknown"
	if version.BuildDate != "" {
		if t, err := time.Parse(time.RFC3339, version.BuildDate); err == nil {
			buildDate = t.Format("2006-01-02")
		} else {
			buildDate = "invalid date"
		}
	}

	goVer := strings.TrimPrefix(version.GoVersion, "go")
	if goVer == "" {
		goVer = "unknown"
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:  "Version",
			Value: version.Version,
		},
		{
			Name:  "Release",
			Value: buildDate + " (Go " + goVer + ")",
		},
		{
			Name:  "Repository",
			Value: "https://github.com/keshon/prefixkit",
		},
	}

	embed := &discordgo.MessageEmbed{
		Title:       "ℹ️ About " + version.AppName,
		Description: version.AppDescription,
		Color:       core.EmbedColor,
		Fields:      fields,
	}

	return core.MessageEmbed(context.Session, context.Event.ChannelID, embed)
}

func init() {
	core.MustRegister(
		core.ApplyMiddlewares(
			&AboutCommand{},
			core.WithGroupAccessCheck(),
			core.WithCommandLogger(),
		),
	)
}
