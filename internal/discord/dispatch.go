package discord

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/args"
	"github.com/keshon/prefixkit/internal/core"
)

// invocation is a command word plus the untouched argument text.
type invocation struct {
	Name string
	Raw  string
}

// parseInvocation matches content against the guild prefix or a
// leading bot mention and splits off the command word. Returns false
// when the message is not an invocation at all.
func parseInvocation(content, prefix, botID string) (invocation, bool) {
	rest, ok := stripPrefix(content, prefix, botID)
	if !ok {
		return invocation{}, false
	}

	rest = strings.TrimLeft(rest, " \t")
	if rest == "" {
		return invocation{}, false
	}

	name := rest
	raw := ""
	if idx := strings.IndexAny(rest, " \t\n"); idx >= 0 {
		name = rest[:idx]
		raw = strings.TrimSpace(rest[idx+1:])
	}
	return invocation{Name: name, Raw: raw}, true
}

// stripPrefix removes the command prefix, accepting either the guild
// prefix or a mention of the bot itself.
func stripPrefix(content, prefix, botID string) (string, bool) {
	if prefix != "" && strings.HasPrefix(content, prefix) {
		return content[len(prefix):], true
	}
	if botID != "" {
		for _, mention := range []string{"<@" + botID + ">", "<@!" + botID + ">"} {
			if strings.HasPrefix(content, mention) {
				return content[len(mention):], true
			}
		}
	}
	return "", false
}

// onMessageCreate maps incoming messages to registered commands.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	botID := ""
	if s.State.User != nil {
		botID = s.State.User.ID
	}

	prefix := b.guildPrefix(m.GuildID)
	inv, ok := parseInvocation(m.Content, prefix, botID)
	if !ok {
		return
	}

	cmd, ok := b.registry.Get(inv.Name)
	if !ok {
		// Unknown command after a valid prefix: stay silent, the
		// prefix may be shared with another bot.
		return
	}

	ctx := &core.MessageContext{
		Session: s,
		Event:   m,
		Raw:     inv.Raw,
		Invoked: inv.Name,
		Prefix:  prefix,
		Storage: b.store,
		Config:  b.cfg,
	}

	if spec := commandArgSpec(cmd); len(spec) > 0 {
		parsed, err := args.Parse(spec, inv.Raw, newResolver(s, m.GuildID))
		if err != nil {
			b.respondArgError(s, m, cmd, prefix, spec, err)
			return
		}
		ctx.Args = parsed
	}

	if err := cmd.Run(ctx); err != nil {
		log.Printf("[ERR] Error running command %s: %v", cmd.Name(), err)
		_ = core.MessageEmbed(s, m.ChannelID, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Error running command: %v", err),
		})
	}
}

func (b *Bot) respondArgError(s *discordgo.Session, m *discordgo.MessageCreate, cmd core.Command, prefix string, spec []args.Arg, err error) {
	desc := err.Error()
	if errors.Is(err, args.ErrMissingArgument) || errors.Is(err, args.ErrBadValue) {
		desc = fmt.Sprintf("%v\nUsage: `%s`", err, args.Usage(prefix, cmd.Name(), spec))
	}
	_ = core.MessageReply(s, m.Message, &discordgo.MessageEmbed{Description: desc})
}

// commandArgSpec returns the declared signature, reaching through
// middleware wrappers.
func commandArgSpec(cmd core.Command) []args.Arg {
	if ap, ok := cmd.(core.ArgProvider); ok {
		return ap.ArgSpec()
	}
	return nil
}
