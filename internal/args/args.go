// Package args parses prefix-command arguments against a declared
// signature, coercing raw message text into typed values, including
// Discord entities referenced by mention or ID.
package args

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Type identifies how a raw token is coerced.
type Type int

const (
	String Type = iota
	Int
	Float
	Bool
	Duration
	User
	Channel
	Role
	// Rest swallows the remainder of the message verbatim. Must be the
	// last argument of a signature.
	Rest
)

func (t Type) String() string {
	switch t {
	case String:
		return "text"
	case Int:
		return "integer"
	case Float:
		return "number"
	case Bool:
		return "yes/no"
	case Duration:
		return "duration"
	case User:
		return "user"
	case Channel:
		return "channel"
	case Role:
		return "role"
	case Rest:
		return "text"
	default:
		return "unknown"
	}
}

// Arg is one slot of a command signature.
type Arg struct {
	Name     string
	Type     Type
	Optional bool
}

// Resolver turns IDs extracted from mentions into live Discord objects.
// The dispatcher implements it over the session and guild; tests use a
// fake.
type Resolver interface {
	ResolveUser(id string) (*discordgo.User, error)
	ResolveChannel(id string) (*discordgo.Channel, error)
	ResolveRole(id string) (*discordgo.Role, error)
}

var (
	ErrMissingArgument = errors.New("missing required argument")
	ErrBadValue        = errors.New("invalid argument value")
	ErrBadSignature    = errors.New("invalid argument signature")
)

// ValidateSignature checks ordering rules: required args may not follow
// optional ones and Rest must be the final slot.
func ValidateSignature(spec []Arg) error {
	seenOptional := false
	for i, a := range spec {
		if a.Name == "" {
			return fmt.Errorf("%w: argument %d has no name", ErrBadSignature, i)
		}
		if a.Optional {
			seenOptional = true
		} else if seenOptional {
			return fmt.Errorf("%w: required %q follows an optional argument", ErrBadSignature, a.Name)
		}
		if a.Type == Rest && i != len(spec)-1 {
			return fmt.Errorf("%w: %q of type rest must be last", ErrBadSignature, a.Name)
		}
	}
	return nil
}

// Usage renders a usage line like "!roll <dice> [reason]".
func Usage(prefix, name string, spec []Arg) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(name)
	for _, a := range spec {
		if a.Optional {
			sb.WriteString(" [" + a.Name + "]")
		} else {
			sb.WriteString(" <" + a.Name + ">")
		}
	}
	return sb.String()
}
