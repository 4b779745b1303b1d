package cards

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Rand is the random source used for shuffling and middle burials.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// globalRand uses the auto-seeded top-level math/rand/v2 generator.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// BuryPosition selects where Bury puts a card back.
type BuryPosition int

const (
	// Top is the tail of the deck, so a card buried on top is drawn next.
	Top BuryPosition = iota
	// Middle is a uniformly random index, both ends included.
	Middle
	// Bottom is index 0, drawn last.
	Bottom
)

func (p BuryPosition) String() string {
	switch p {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

type DeckOptions struct {
	// Multiple is how many times each card is repeated. Values below 1
	// are treated as 1.
	Multiple int

	AceIsHigh bool

	// IncludeJokers adds two jokers per multiple.
	IncludeJokers bool

	// Rand defaults to the global math/rand/v2 source when nil.
	Rand Rand
}

// Deck is an ordered pile of cards. Index 0 is the bottom; draws come
// off the end. A Deck is not safe for concurrent use.
type Deck struct {
	id        uuid.UUID
	aceIsHigh bool
	cards     []Card
	rng       Rand
}

// NewStandardDeck returns a single 52 card deck, ace low, no jokers.
func NewStandardDeck() *Deck {
	return NewDeck(DeckOptions{})
}

// NewDeck builds the cards suit-major, rank-minor: clubs, diamonds,
// hearts then spades, each ace through king, repeated Multiple times.
func NewDeck(opts DeckOptions) *Deck {
	multiple := max(opts.Multiple, 1)
	perDeck := 52
	if opts.IncludeJokers {
		perDeck = 54
	}

	d := &Deck{
		id:        uuid.New(),
		aceIsHigh: opts.AceIsHigh,
		cards:     make([]Card, 0, multiple*perDeck),
		rng:       opts.Rand,
	}
	for range multiple {
		for _, s := range Suits {
			for _, r := range Ranks {
				if r == Joker {
					// Jokers have no suit, but two per deck are stored in
					// the heart and spade slots; clubs and diamonds get none.
					if !opts.IncludeJokers || s == Club || s == Diamond {
						continue
					}
				}
				d.cards = append(d.cards, Card{rank: r, suit: s, aceIsHigh: opts.AceIsHigh, id: uuid.New()})
			}
		}
	}
	return d
}

func (d *Deck) ID() uuid.UUID { return d.id }

func (d *Deck) Count() int { return len(d.cards) }

func (d *Deck) IsEmpty() bool { return len(d.cards) == 0 }

func (d *Deck) AceIsHigh() bool { return d.aceIsHigh }

// SetAceIsHigh changes the mode of the deck and of every card in it.
func (d *Deck) SetAceIsHigh(aceIsHigh bool) {
	if d.aceIsHigh == aceIsHigh {
		return
	}
	d.aceIsHigh = aceIsHigh
	for i := range d.cards {
		d.cards[i].aceIsHigh = aceIsHigh
	}
}

// SetRand replaces the random source; nil restores the default.
func (d *Deck) SetRand(r Rand) {
	d.rng = r
}

func (d *Deck) random() Rand {
	if d.rng == nil {
		return globalRand{}
	}
	return d.rng
}

// Draw removes the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, false
	}
	card = d.cards[n-1]
	d.cards[n-1] = Card{}
	d.cards = d.cards[:n-1]
	return card, true
}

// DrawN draws up to n cards, top first. It never returns more than the
// deck holds and returns an empty slice when n <= 0.
func (d *Deck) DrawN(n int) []Card {
	n = min(n, len(d.cards))
	if n <= 0 {
		return []Card{}
	}
	drawn := make([]Card, 0, n)
	for range n {
		c, _ := d.Draw()
		drawn = append(drawn, c)
	}
	return drawn
}

// Bury returns a card to the deck. The card takes on the deck's ace mode.
func (d *Deck) Bury(card Card, pos BuryPosition) {
	card = card.withMode(d.aceIsHigh)
	switch pos {
	case Bottom:
		d.cards = slices.Insert(d.cards, 0, card)
	case Middle:
		i := 0
		if len(d.cards) > 0 {
			i = d.random().IntN(len(d.cards) + 1)
		}
		d.cards = slices.Insert(d.cards, i, card)
	default:
		d.cards = append(d.cards, card)
	}
}

// BuryAll buries each card in order. With Middle every card gets its own
// random index, so the cards end up scattered rather than adjacent.
func (d *Deck) BuryAll(cards []Card, pos BuryPosition) {
	for _, c := range cards {
		d.Bury(c, pos)
	}
}

func (d *Deck) Shuffle() {
	d.random().Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Sort orders the deck by value, lowest at the bottom, breaking ties on
// the suit's PipFill string. Byte order of those glyphs puts spades
// before clubs, hearts, then diamonds.
func (d *Deck) Sort() {
	slices.SortStableFunc(d.cards, func(a, b Card) int {
		if c := a.Compare(b); c != 0 {
			return c
		}
		return strings.Compare(a.suit.PipFill(), b.suit.PipFill())
	})
}

// Peek returns a copy of the remaining cards, bottom first.
func (d *Deck) Peek() []Card {
	return slices.Clone(d.cards)
}

// ChanceOfDrawing is the probability, 0 through 1, that the next card
// matches rank and/or suit. AnyRank and AnySuit leave that part
// unconstrained. ok is false when neither is given or the deck is empty.
func (d *Deck) ChanceOfDrawing(rank Rank, suit Suit) (chance float64, ok bool) {
	if rank == AnyRank && suit == AnySuit {
		return 0, false
	}
	if len(d.cards) == 0 {
		return 0, false
	}
	matching := 0
	for _, c := range d.cards {
		if rank != AnyRank && c.rank != rank {
			continue
		}
		if suit != AnySuit && c.suit != suit {
			continue
		}
		matching++
	}
	return float64(matching) / float64(len(d.cards)), true
}

// Clone returns an independent deck with the same id, mode and cards.
// The random source is shared.
func (d *Deck) Clone() *Deck {
	return &Deck{
		id:        d.id,
		aceIsHigh: d.aceIsHigh,
		cards:     slices.Clone(d.cards),
		rng:       d.rng,
	}
}

// Equal reports whether both decks have the same id, mode, and the same
// physical cards in the same order.
func (d *Deck) Equal(other *Deck) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.id != other.id || d.aceIsHigh != other.aceIsHigh {
		return false
	}
	return slices.EqualFunc(d.cards, other.cards, Card.SameCard)
}
