package cards

import (
	"fmt"
	"strings"
)

// Rank is the face value category of a card.
type Rank int

const (
	AnyRank Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Joker
)

// Ranks lists every rank in canonical order, joker last.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Joker}

var rankNames = [...]string{"", "ace", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "jack", "queen", "king", "joker"}

func (r Rank) Valid() bool {
	return r >= Ace && r <= Joker
}

// Value is 1 through 13 for ace through king, or 14 for an ace when
// aceIsHigh is set. A joker is always 15.
func (r Rank) Value(aceIsHigh bool) int {
	switch r {
	case Ace:
		if aceIsHigh {
			return 14
		}
		return 1
	case Joker:
		return 15
	default:
		return int(r)
	}
}

func (r Rank) IsFaceCard() bool {
	switch r {
	case Jack, Queen, King, Joker:
		return true
	}
	return false
}

// PipCount is the number of suit symbols printed on a non-face card.
func (r Rank) PipCount() int {
	if r.IsFaceCard() || !r.Valid() {
		return 0
	}
	return r.Value(false)
}

func (r Rank) Symbol() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Joker:
		return "🃏"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return ""
}

// code is the rank part of a card code; unlike Symbol it stays ASCII.
func (r Rank) code() string {
	if r == Joker {
		return "JK"
	}
	return r.Symbol()
}

func (r Rank) Description() string {
	if !r.Valid() {
		return ""
	}
	return rankNames[r]
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRank, int(r))
	}
	return []byte(rankNames[r]), nil
}

func (r *Rank) UnmarshalText(b []byte) error {
	v, err := ParseRank(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// ParseRank accepts the canonical name ("queen") or the card-code form
// ("Q", "10", "JK"), ignoring case.
func ParseRank(s string) (Rank, error) {
	for _, r := range Ranks {
		if strings.EqualFold(s, rankNames[r]) || strings.EqualFold(s, r.code()) {
			return r, nil
		}
	}
	return AnyRank, fmt.Errorf("%w: %q", ErrInvalidRank, s)
}
