package core

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/prefixkit/internal/args"
	"github.com/keshon/prefixkit/internal/core"
)

var (
	tokenRegex = regexp.MustCompile(`(?i)(\d*d\d+|\d+|[+\-*/])`)
	diceRegex  = regexp.MustCompile(`(?i)^(\d*)d(\d+)$`)
	validOps   = map[string]bool{"+": true, "-": true, "*": true, "/": true}
)

type rollTerm struct {
	value int
	desc  string
	op    string
}

type RollCommand struct{}

func (c *RollCommand) Name() string        { return "roll" }
func (c *RollCommand) Description() string { return "Roll dice with formulas like `2d6+1d4*2`" }
func (c *RollCommand) Aliases() []string   { return []string{"dice"} }
func (c *RollCommand) Group() string       { return groupFun }
func (c *RollCommand) Category() string    { return "🎲 Gameplay" }
func (c *RollCommand) RequireAdmin() bool  { return false }
func (c *RollCommand) RequireDev() bool    { return false }

func (c *RollCommand) Cooldown() time.Duration { return 3 * time.Second }

func (c *RollCommand) ArgSpec() []args.Arg {
	return []args.Arg{
		{Name: "formula", Type: args.Rest, Optional: true},
	}
}

func (c *RollCommand) Run(ctx interface{}) error {
	context, ok := ctx.(*core.MessageContext)
	if !ok {
		return nil
	}

	formula := "1d6"
	if context.Args != nil && context.Args.Has("formula") {
		formula = strings.ReplaceAll(context.Args.String("formula"), " ", "")
	}

	total, pretty, err := evalFormula(formula, rand.Intn)
	if err != nil {
		return core.MessageEmbed(context.Session, context.Event.ChannelID, &discordgo.MessageEmbed{
			Description: fmt.Sprintf("Can't roll `%s`: %v\nTry something like `2d6+1d4*2-3`.", formula, err),
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       "🎲 Dice Roll",
		Description: fmt.Sprintf("**Formula**:\t`%s`\n**Rolls**:\t%s\n**Result**:\t**%d**", formula, pretty, total),
		Color:       core.EmbedColor,
	}
	return core.MessageEmbed(context.Session, context.Event.ChannelID, embed)
}

// evalFormula evaluates a dice formula like "2d6+1d4*2-3". intn supplies
// randomness so tests can pin the rolls.
func evalFormula(formula string, intn func(int) int) (int, string, error) {
	tokens := tokenRegex.FindAllString(formula, -1)
	if len(tokens) == 0 {
		return 0, "", fmt.Errorf("no dice or numbers found")
	}
	// The regex skips what it can't match; anything left over is junk,
	// not something to silently ignore.
	if strings.Join(tokens, "") != formula {
		return 0, "", fmt.Errorf("unrecognized characters in formula")
	}

	var terms []rollTerm
	currentOp := "+"
	for _, token := range tokens {
		if validOps[token] {
			currentOp = token
			continue
		}
		val, desc, err := evalToken(token, intn)
		if err != nil {
			return 0, "", err
		}
		terms = append(terms, rollTerm{value: val, desc: desc, op: currentOp})
		currentOp = "+"
	}

	// * and / first
	var merged []rollTerm
	for _, t := range terms {
		if t.op == "*" || t.op == "/" {
			if len(merged) == 0 {
				return 0, "", fmt.Errorf("operator without left operand")
			}
			prev := merged[len(merged)-1]
			merged = merged[:len(merged)-1]

			var newVal int
			switch t.op {
			case "*":
				newVal = prev.value * t.value
			case "/":
				if t.value == 0 {
					return 0, "", fmt.Errorf("division by zero")
				}
				newVal = prev.value / t.value
			}
			merged = append(merged, rollTerm{
				value: newVal,
				desc:  fmt.Sprintf("%s %s %s", prev.desc, t.op, t.desc),
				op:    prev.op,
			})
		} else {
			merged = append(merged, t)
		}
	}

	// + and -
	total := 0
	var details []string
	for _, t := range merged {
		if len(details) > 0 {
			details = append(details, fmt.Sprintf(" %s ", t.op))
		}
		details = append(details, t.desc)

		switch t.op {
		case "+":
			total += t.value
		case "-":
			total -= t.value
		}
	}

	return total, strings.Join(details, ""), nil
}

func evalToken(token string, intn func(int) int) (int, string, error) {
	if matches := diceRegex.FindStringSubmatch(token); matches != nil {
		count := 1
		if matches[1] != "" {
			n, err := strconv.Atoi(matches[1])
			if err != nil || n < 1 {
				return 0, "", fmt.Errorf("invalid dice count in `%s`", token)
			}
			count = n
		}
		sides, err := strconv.Atoi(matches[2])
		if err != nil || sides < 2 {
			return 0, "", fmt.Errorf("invalid dice sides in `%s`", token)
		}
		if count > 100 || sides > 1000 {
			return 0, "", fmt.Errorf("too big, max 100 dice with 1000 sides")
		}

		sum := 0
		rolls := make([]string, 0, count)
		for i := 0; i < count; i++ {
			r := intn(sides) + 1
			sum += r
			rolls = append(rolls, strconv.Itoa(r))
		}
		return sum, fmt.Sprintf("`%s` [%s]", token, strings.Join(rolls, ", ")), nil
	}

	num, err := strconv.Atoi(token)
	if err != nil {
		return 0, "", fmt.Errorf("not a number or dice: `%s`", token)
	}
	return num, fmt.Sprintf("`%d`", num), nil
}

func init() {
	core.MustRegister(
		core.ApplyMiddlewares(
			&RollCommand{},
			core.WithGroupAccessCheck(),
			core.WithCooldown(0),
			core.WithCommandLogger(),
		),
	)
}
