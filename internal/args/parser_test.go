package args

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

type fakeResolver struct {
	users    map[string]*discordgo.User
	channels map[string]*discordgo.Channel
	roles    map[string]*discordgo.Role
}

func (f *fakeResolver) ResolveUser(id string) (*discordgo.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("no such user")
}

func (f *fakeResolver) ResolveChannel(id string) (*discordgo.Channel, error) {
	if c, ok := f.channels[id]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("no such channel")
}

func (f *fakeResolver) ResolveRole(id string) (*discordgo.Role, error) {
	if r, ok := f.roles[id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("no such role")
}

func newResolver() *fakeResolver {
	return &fakeResolver{
		users:    map[string]*discordgo.User{"123": {ID: "123", Username: "keshon"}},
		channels: map[string]*discordgo.Channel{"456": {ID: "456", Name: "general"}},
		roles:    map[string]*discordgo.Role{"789": {ID: "789", Name: "mods"}},
	}
}

func TestTokenizeQuotes(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{`a b c`, []string{"a", "b", "c"}},
		{`a "b c" d`, []string{"a", "b c", "d"}},
		{`"say \"hi\"" x`, []string{`say "hi"`, "x"}},
		{`  spaced   out  `, []string{"spaced", "out"}},
		{``, nil},
	}

	for _, c := range cases {
		got := Tokenize(c.raw)
		if len(got) != len(c.want) {
			t.Fatalf("Tokenize(%q) = %v, want %v", c.raw, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", c.raw, i, got[i], c.want[i])
			}
		}
	}
}

func TestParseScalars(t *testing.T) {
	spec := []Arg{
		{Name: "count", Type: Int},
		{Name: "ratio", Type: Float},
		{Name: "loud", Type: Bool},
		{Name: "wait", Type: Duration},
	}

	p, err := Parse(spec, "3 0.5 yes 90s", nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Int("count") != 3 {
		t.Errorf("count = %d", p.Int("count"))
	}
	if p.Float("ratio") != 0.5 {
		t.Errorf("ratio = %v", p.Float("ratio"))
	}
	if !p.Bool("loud") {
		t.Error("loud should be true")
	}
	if p.Duration("wait") != 90*time.Second {
		t.Errorf("wait = %v", p.Duration("wait"))
	}
}

func TestParseBoolVariants(t *testing.T) {
	spec := []Arg{{Name: "flag", Type: Bool}}
	for _, token := range []string{"on", "Off", "TRUE", "no", "1", "0"} {
		if _, err := Parse(spec, token, nil); err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", token, err)
		}
	}
	if _, err := Parse(spec, "maybe", nil); !errors.Is(err, ErrBadValue) {
		t.Errorf("expected ErrBadValue, got %v", err)
	}
}

func TestParseMentions(t *testing.T) {
	spec := []Arg{
		{Name: "target", Type: User},
		{Name: "where", Type: Channel},
		{Name: "rank", Type: Role},
	}

	p, err := Parse(spec, "<@123> <#456> <@&789>", newResolver())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.User("target").Username != "keshon" {
		t.Errorf("target = %+v", p.User("target"))
	}
	if p.Channel("where").Name != "general" {
		t.Errorf("where = %+v", p.Channel("where"))
	}
	if p.Role("rank").Name != "mods" {
		t.Errorf("rank = %+v", p.Role("rank"))
	}
}

func TestParseNicknameMentionAndRawID(t *testing.T) {
	spec := []Arg{{Name: "target", Type: User}}

	for _, raw := range []string{"<@!123>", "123"} {
		p, err := Parse(spec, raw, newResolver())
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		if p.User("target").ID != "123" {
			t.Errorf("Parse(%q) target = %+v", raw, p.User("target"))
		}
	}
}

func TestParseUnknownUser(t *testing.T) {
	spec := []Arg{{Name: "target", Type: User}}
	if _, err := Parse(spec, "<@999>", newResolver()); !errors.Is(err, ErrBadValue) {
		t.Errorf("expected ErrBadValue, got %v", err)
	}
}

func TestParseMissingRequired(t *testing.T) {
	spec := []Arg{
		{Name: "group", Type: String},
		{Name: "state", Type: String},
	}
	if _, err := Parse(spec, "music", nil); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("expected ErrMissingArgument, got %v", err)
	}
}

func TestParseOptionalTail(t *testing.T) {
	spec := []Arg{
		{Name: "dice", Type: String},
		{Name: "times", Type: Int, Optional: true},
	}

	p, err := Parse(spec, "2d6", nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Has("times") {
		t.Error("times should be absent")
	}

	p, err = Parse(spec, "2d6 4", nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.Int("times") != 4 {
		t.Errorf("times = %d", p.Int("times"))
	}
}

func TestParseRestSwallowsRemainder(t *testing.T) {
	spec := []Arg{
		{Name: "target", Type: User},
		{Name: "reason", Type: Rest},
	}

	p, err := Parse(spec, `<@123> spamming the "general" channel`, newResolver())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := p.String("reason"); got != `spamming the "general" channel` {
		t.Errorf("reason = %q", got)
	}
}

func TestParseRejectsExtraTokens(t *testing.T) {
	spec := []Arg{{Name: "group", Type: String}}
	if _, err := Parse(spec, "music extra", nil); !errors.Is(err, ErrBadValue) {
		t.Errorf("expected ErrBadValue, got %v", err)
	}
}

func TestValidateSignature(t *testing.T) {
	bad := []Arg{
		{Name: "a", Type: String, Optional: true},
		{Name: "b", Type: String},
	}
	if err := ValidateSignature(bad); !errors.Is(err, ErrBadSignature) {
		t.Errorf("expected ErrBadSignature, got %v", err)
	}

	badRest := []Arg{
		{Name: "a", Type: Rest},
		{Name: "b", Type: String},
	}
	if err := ValidateSignature(badRest); !errors.Is(err, ErrBadSignature) {
		t.Errorf("expected ErrBadSignature for non-final rest, got %v", err)
	}
}

func TestUsage(t *testing.T) {
	spec := []Arg{
		{Name: "group", Type: String},
		{Name: "state", Type: String},
		{Name: "reason", Type: Rest, Optional: true},
	}
	got := Usage("!", "toggle", spec)
	want := "!toggle <group> <state> [reason]"
	if got != want {
		t.Errorf("Usage = %q, want %q", got, want)
	}
}
