package args

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Parsed holds coerced argument values keyed by argument name.
type Parsed struct {
	values map[string]any
}

// Has reports whether the named argument was supplied.
func (p *Parsed) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// String returns the named string argument, or "" if absent.
func (p *Parsed) String(name string) string {
	v, _ := p.values[name].(string)
	return v
}

// Int returns the named integer argument, or 0 if absent.
func (p *Parsed) Int(name string) int {
	v, _ := p.values[name].(int)
	return v
}

// Float returns the named float argument, or 0 if absent.
func (p *Parsed) Float(name string) float64 {
	v, _ := p.values[name].(float64)
	return v
}

// Bool returns the named bool argument, or false if absent.
func (p *Parsed) Bool(name string) bool {
	v, _ := p.values[name].(bool)
	return v
}

// Duration returns the named duration argument, or 0 if absent.
func (p *Parsed) Duration(name string) time.Duration {
	v, _ := p.values[name].(time.Duration)
	return v
}

// User returns the named user argument, or nil if absent.
func (p *Parsed) User(name string) *discordgo.User {
	v, _ := p.values[name].(*discordgo.User)
	return v
}

// Channel returns the named channel argument, or nil if absent.
func (p *Parsed) Channel(name string) *discordgo.Channel {
	v, _ := p.values[name].(*discordgo.Channel)
	return v
}

// Role returns the named role argument, or nil if absent.
func (p *Parsed) Role(name string) *discordgo.Role {
	v, _ := p.values[name].(*discordgo.Role)
	return v
}

// Parse tokenizes raw and coerces each token against spec. Optional
// arguments may be omitted from the tail. Extra tokens beyond the
// signature are an error unless the last argument is Rest.
func Parse(spec []Arg, raw string, r Resolver) (*Parsed, error) {
	if err := ValidateSignature(spec); err != nil {
		return nil, err
	}

	p := &Parsed{values: make(map[string]any)}

	rest := ""
	hasRest := len(spec) > 0 && spec[len(spec)-1].Type == Rest

	var tokens []string
	if hasRest {
		head := spec[:len(spec)-1]
		tokens, rest = tokenizeN(raw, len(head))
	} else {
		tokens, _ = tokenizeN(raw, -1)
	}

	for i, a := range spec {
		if a.Type == Rest {
			rest = strings.TrimSpace(rest)
			if rest == "" {
				if a.Optional {
					continue
				}
				return nil, fmt.Errorf("%w: %s", ErrMissingArgument, a.Name)
			}
			p.values[a.Name] = rest
			continue
		}

		if i >= len(tokens) {
			if a.Optional {
				continue
			}
			return nil, fmt.Errorf("%w: %s", ErrMissingArgument, a.Name)
		}

		val, err := coerce(a, tokens[i], r)
		if err != nil {
			return nil, err
		}
		p.values[a.Name] = val
	}

	if !hasRest && len(tokens) > len(spec) {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrBadValue, tokens[len(spec)])
	}

	return p, nil
}

func coerce(a Arg, token string, r Resolver) (any, error) {
	switch a.Type {
	case String:
		return token, nil

	case Int:
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, badValue(a, token)
		}
		return n, nil

	case Float:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, badValue(a, token)
		}
		return f, nil

	case Bool:
		switch strings.ToLower(token) {
		case "true", "yes", "on", "1":
			return true, nil
		case "false", "no", "off", "0":
			return false, nil
		}
		return nil, badValue(a, token)

	case Duration:
		d, err := time.ParseDuration(token)
		if err != nil {
			return nil, badValue(a, token)
		}
		return d, nil

	case User:
		id, ok := stripMention(token, "<@", "<@!")
		if !ok {
			return nil, badValue(a, token)
		}
		if r == nil {
			return nil, fmt.Errorf("%w: %s: no resolver available", ErrBadValue, a.Name)
		}
		u, err := r.ResolveUser(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: unknown user %q", ErrBadValue, a.Name, token)
		}
		return u, nil

	case Channel:
		id, ok := stripMention(token, "<#")
		if !ok {
			return nil, badValue(a, token)
		}
		if r == nil {
			return nil, fmt.Errorf("%w: %s: no resolver available", ErrBadValue, a.Name)
		}
		ch, err := r.ResolveChannel(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: unknown channel %q", ErrBadValue, a.Name, token)
		}
		return ch, nil

	case Role:
		id, ok := stripMention(token, "<@&")
		if !ok {
			return nil, badValue(a, token)
		}
		if r == nil {
			return nil, fmt.Errorf("%w: %s: no resolver available", ErrBadValue, a.Name)
		}
		role, err := r.ResolveRole(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: unknown role %q", ErrBadValue, a.Name, token)
		}
		return role, nil
	}

	return nil, badValue(a, token)
}

func badValue(a Arg, token string) error {
	return fmt.Errorf("%w: %s: expected %s, got %q", ErrBadValue, a.Name, a.Type, token)
}

// stripMention extracts an ID from a Discord mention with one of the
// given openers, or accepts a bare numeric ID.
func stripMention(token string, openers ...string) (string, bool) {
	if isSnowflake(token) {
		return token, true
	}
	if !strings.HasSuffix(token, ">") {
		return "", false
	}
	body := strings.TrimSuffix(token, ">")
	// Longest opener first so "<@" does not swallow "<@!" or "<@&".
	best := ""
	for _, op := range openers {
		if strings.HasPrefix(body, op) && len(op) > len(best) {
			best = op
		}
	}
	if best == "" {
		return "", false
	}
	id := strings.TrimPrefix(body, best)
	if !isSnowflake(id) {
		return "", false
	}
	return id, true
}

func isSnowflake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// tokenizeN splits raw into at most n whitespace-separated tokens,
// honoring double quotes with backslash escapes. With n < 0 all tokens
// are returned. The second return value is the untouched remainder
// after the consumed tokens.
func tokenizeN(raw string, n int) ([]string, string) {
	var tokens []string
	i := 0
	for i < len(raw) {
		for i < len(raw) && (raw[i] == ' ' || raw[i] == '\t' || raw[i] == '\n') {
			i++
		}
		if i >= len(raw) {
			break
		}
		if n >= 0 && len(tokens) == n {
			return tokens, raw[i:]
		}

		var sb strings.Builder
		if raw[i] == '"' {
			i++
			for i < len(raw) && raw[i] != '"' {
				if raw[i] == '\\' && i+1 < len(raw) && (raw[i+1] == '"' || raw[i+1] == '\\') {
					i++
				}
				sb.WriteByte(raw[i])
				i++
			}
			if i < len(raw) {
				i++ // closing quote
			}
		} else {
			for i < len(raw) && raw[i] != ' ' && raw[i] != '\t' && raw[i] != '\n' {
				sb.WriteByte(raw[i])
				i++
			}
		}
		tokens = append(tokens, sb.String())
	}
	return tokens, ""
}

// Tokenize splits raw into quoted-aware fields.
func Tokenize(raw string) []string {
	tokens, _ := tokenizeN(raw, -1)
	return tokens
}
