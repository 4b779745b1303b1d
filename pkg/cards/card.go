package cards

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Card is an immutable rank and suit pair. Only a Deck rewrites the
// ace-high mode of the cards it holds.
type Card struct {
	rank      Rank
	suit      Suit
	aceIsHigh bool
	id        uuid.UUID
}

// NewCard returns an ace-low card with a fresh id.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit, id: uuid.New()}
}

func NewCardAceHigh(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit, aceIsHigh: true, id: uuid.New()}
}

func (c Card) Rank() Rank { return c.rank }
func (c Card) Suit() Suit { return c.suit }
func (c Card) AceIsHigh() bool { return c.aceIsHigh }
func (c Card) ID() uuid.UUID { return c.id }
func (c Card) Value() int { return c.rank.Value(c.aceIsHigh) }
func (c Card) IsZero() bool { return c.rank == AnyRank && c.suit == AnySuit }

func (c Card) withMode(aceIsHigh bool) Card {
	c.aceIsHigh = aceIsHigh
	return c
}

// Equal compares rank only: the ace of clubs equals the ace of spades.
// Use SameCard to also compare suit and id.
func (c Card) Equal(other Card) bool {
	return c.rank == other.rank
}

// SameCard reports whether both values are the same physical card.
func (c Card) SameCard(other Card) bool {
	return c.rank == other.rank && c.suit == other.suit && c.id == other.id
}

// Compare orders by Value only; suit never participates.
func (c Card) Compare(other Card) int {
	return cmp.Compare(c.Value(), other.Value())
}

func (c Card) Less(other Card) bool {
	return c.Value() < other.Value()
}

// Description reads "ace of clubs"; a joker is just "joker".
func (c Card) Description() string {
	if c.rank == Joker {
		return c.rank.Description()
	}
	return fmt.Sprintf("%s of %s", c.rank.Description(), c.suit.Description())
}

// Code is the compact form accepted by ParseCard, e.g. "AS", "10H", "JKS".
func (c Card) Code() string {
	return c.rank.code() + c.suit.Letter()
}

func (c Card) String() string {
	return c.Code()
}

// ParseCard reads a card code. The result is ace-low with a fresh id.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	suit, err := ParseSuit(s[len(s)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("parse card %q: %w", s, err)
	}
	rankStr := s[:len(s)-1]
	var r Rank
	for _, candidate := range Ranks {
		if candidate.code() == rankStr {
			r = candidate
			break
		}
	}
	if r == AnyRank {
		return Card{}, fmt.Errorf("parse card %q: %w", s, ErrInvalidRank)
	}
	return NewCard(r, suit), nil
}
