package cards

import (
	"fmt"
	"strings"
)

// Suit is the category symbol of a card.
type Suit int

const (
	AnySuit Suit = iota
	Club
	Diamond
	Heart
	Spade
)

// Suits lists the suits in canonical construction order.
var Suits = []Suit{Club, Diamond, Heart, Spade}

var suitNames = [...]string{"", "club", "diamond", "heart", "spade"}

// Color is the color associated with a suit.
type Color int

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "black":
		*c = Black
	case "red":
		*c = Red
	default:
		return fmt.Errorf("invalid color %q", string(b))
	}
	return nil
}

func (s Suit) Valid() bool {
	return s >= Club && s <= Spade
}

func (s Suit) Color() Color {
	switch s {
	case Diamond, Heart:
		return Red
	}
	return Black
}

// PipFill is the filled unicode pip. The trailing U+FE0E forces text
// presentation; Deck.Sort breaks ties on these strings.
func (s Suit) PipFill() string {
	switch s {
	case Club:
		return "♣︎"
	case Diamond:
		return "♦︎"
	case Heart:
		return "♥︎"
	case Spade:
		return "♠︎"
	}
	return ""
}

func (s Suit) PipOutline() string {
	switch s {
	case Club:
		return "♧"
	case Diamond:
		return "♢"
	case Heart:
		return "♡"
	case Spade:
		return "♤"
	}
	return ""
}

// Letter is the suit part of a card code.
func (s Suit) Letter() string {
	switch s {
	case Club:
		return "C"
	case Diamond:
		return "D"
	case Heart:
		return "H"
	case Spade:
		return "S"
	}
	return ""
}

// Description is the plural English name, e.g. "hearts".
func (s Suit) Description() string {
	if !s.Valid() {
		return ""
	}
	return suitNames[s] + "s"
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSuit, int(s))
	}
	return []byte(suitNames[s]), nil
}

func (s *Suit) UnmarshalText(b []byte) error {
	v, err := ParseSuit(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSuit accepts "heart", "hearts" or "H", ignoring case.
func ParseSuit(v string) (Suit, error) {
	for _, s := range Suits {
		if strings.EqualFold(v, suitNames[s]) || strings.EqualFold(v, s.Description()) || strings.EqualFold(v, s.Letter()) {
			return s, nil
		}
	}
	return AnySuit, fmt.Errorf("%w: %q", ErrInvalidSuit, v)
}
