package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// sessionResolver resolves mention IDs against session state, hitting
// the API only on cache misses.
type sessionResolver struct {
	s       *discordgo.Session
	guildID string
}

func newResolver(s *discordgo.Session, guildID string) *sessionResolver {
	return &sessionResolver{s: s, guildID: guildID}
}

func (r *sessionResolver) ResolveUser(id string) (*discordgo.User, error) {
	if r.guildID != "" {
		if member, err := r.s.State.Member(r.guildID, id); err == nil && member.User != nil {
			return member.User, nil
		}
	}
	user, err := r.s.User(id)
	if err != nil {
		return nil, fmt.Errorf("fetch user %s: %w", id, err)
	}
	return user, nil
}

func (r *sessionResolver) ResolveChannel(id string) (*discordgo.Channel, error) {
	if channel, err := r.s.State.Channel(id); err == nil {
		return channel, nil
	}
	channel, err := r.s.Channel(id)
	if err != nil {
		return nil, fmt.Errorf("fetch channel %s: %w", id, err)
	}
	return channel, nil
}

func (r *sessionResolver) ResolveRole(id string) (*discordgo.Role, error) {
	role, err := r.s.State.Role(r.guildID, id)
	if err != nil {
		return nil, fmt.Errorf("fetch role %s: %w", id, err)
	}
	return role, nil
}
