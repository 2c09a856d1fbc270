package core

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/args"
	"github.com/keshon/prefixkit/internal/config"
	"github.com/keshon/prefixkit/internal/storage"
)

type Command interface {
	Name() string
	Description() string
	Aliases() []string
	Group() string
	Category() string
	RequireAdmin() bool
	RequireDev() bool
	Run(ctx interface{}) error
}

// ArgProvider declares a typed argument signature. The dispatcher
// parses message text against it before Run and rejects the invocation
// with a usage line on coercion failure.
type ArgProvider interface {
	ArgSpec() []args.Arg
}

// Cooldowner overrides the default per-user cooldown interval.
type Cooldowner interface {
	Cooldown() time.Duration
}

// Permissioner declares Discord permission bits that grant access to a
// command, any one of which suffices.
type Permissioner interface {
	Permissions() []int64
}

// MessageContext is what the runtime hands to Run for a prefix command
// found in a regular chat message.
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	// Args holds coerced arguments when the command declares a
	// signature, nil otherwise.
	Args *args.Parsed
	// Raw is the argument text after the command word, untouched.
	Raw string
	// Invoked is the name or alias the user actually typed.
	Invoked string
	// Prefix is the prefix that matched for this guild.
	Prefix  string
	Storage *storage.Storage
	Config  *config.Config
}
