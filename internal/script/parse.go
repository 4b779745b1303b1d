package script

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"playing-cards-go/pkg/cards"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrInvalidArgument = errors.New("invalid argument")
)

type Kind string

const (
	KindShuffle Kind = "shuffle"
	KindSort    Kind = "sort"
	KindCount   Kind = "count"
	KindPeek    Kind = "peek"
	KindDraw    Kind = "draw"
	KindBury    Kind = "bury"
	KindChance  Kind = "chance"
	KindAceHigh Kind = "ace-high"
)

// Command is one parsed verb. Only the fields its Kind uses are set.
type Command struct {
	Raw  string
	Kind Kind

	N         int                // draw
	Cards     []cards.Card       // bury
	Position  cards.BuryPosition // bury
	Rank      cards.Rank         // chance
	Suit      cards.Suit         // chance
	AceIsHigh bool               // ace-high
}

// Parse turns CLI words into commands:
//
//	shuffle | sort | count | peek
//	draw | draw:N
//	bury:AS,10H[@top|@middle|@bottom]
//	chance:rank=ace[,suit=heart]
//	ace-high:on|off
func Parse(words []string) ([]Command, error) {
	cmds := make([]Command, 0, len(words))
	for _, w := range words {
		cmd, err := ParseCommand(w)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func ParseCommand(word string) (Command, error) {
	raw := strings.TrimSpace(word)
	name, arg, hasArg := strings.Cut(raw, ":")
	cmd := Command{Raw: raw, Kind: Kind(strings.ToLower(name))}

	switch cmd.Kind {
	case KindShuffle, KindSort, KindCount, KindPeek:
		if hasArg {
			return Command{}, fmt.Errorf("%s takes no argument: %w", cmd.Kind, ErrInvalidArgument)
		}
	case KindDraw:
		cmd.N = 1
		if hasArg {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return Command{}, fmt.Errorf("draw count %q: %w", arg, ErrInvalidArgument)
			}
			cmd.N = n
		}
	case KindBury:
		if err := parseBury(arg, &cmd); err != nil {
			return Command{}, err
		}
	case KindChance:
		if err := parseChance(arg, &cmd); err != nil {
			return Command{}, err
		}
	case KindAceHigh:
		b, err := parseSwitch(arg)
		if err != nil {
			return Command{}, err
		}
		cmd.AceIsHigh = b
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return cmd, nil
}

func parseBury(arg string, cmd *Command) error {
	list, pos, hasPos := strings.Cut(arg, "@")
	cmd.Position = cards.Top
	if hasPos {
		switch strings.ToLower(pos) {
		case "top":
			cmd.Position = cards.Top
		case "middle":
			cmd.Position = cards.Middle
		case "bottom":
			cmd.Position = cards.Bottom
		default:
			return fmt.Errorf("bury position %q: %w", pos, ErrInvalidArgument)
		}
	}
	for _, code := range strings.Split(list, ",") {
		if strings.TrimSpace(code) == "" {
			continue
		}
		c, err := cards.ParseCard(code)
		if err != nil {
			return fmt.Errorf("bury: %w: %w", ErrInvalidArgument, err)
		}
		cmd.Cards = append(cmd.Cards, c)
	}
	if len(cmd.Cards) == 0 {
		return fmt.Errorf("bury needs at least one card: %w", ErrInvalidArgument)
	}
	return nil
}

// parseChance leaves Rank and Suit at AnyRank/AnySuit when omitted; the
// deck decides what an empty query means.
func parseChance(arg string, cmd *Command) error {
	for _, part := range strings.Split(arg, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			return fmt.Errorf("chance term %q: %w", part, ErrInvalidArgument)
		}
		switch strings.ToLower(key) {
		case "rank":
			r, err := cards.ParseRank(val)
			if err != nil {
				return fmt.Errorf("chance: %w: %w", ErrInvalidArgument, err)
			}
			cmd.Rank = r
		case "suit":
			s, err := cards.ParseSuit(val)
			if err != nil {
				return fmt.Errorf("chance: %w: %w", ErrInvalidArgument, err)
			}
			cmd.Suit = s
		default:
			return fmt.Errorf("chance key %q: %w", key, ErrInvalidArgument)
		}
	}
	return nil
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("ace-high %q: %w", v, ErrInvalidArgument)
}
