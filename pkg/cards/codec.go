package cards

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type cardRecord struct {
	Rank      Rank      `json:"rank" yaml:"rank"`
	Suit      Suit      `json:"suit" yaml:"suit"`
	AceIsHigh bool      `json:"ace_is_high" yaml:"ace_is_high"`
	ID        uuid.UUID `json:"id" yaml:"id"`
}

type deckRecord struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	AceIsHigh bool      `json:"ace_is_high" yaml:"ace_is_high"`
	Cards     []Card    `json:"cards" yaml:"cards"`
}

func (c Card) record() cardRecord {
	return cardRecord{Rank: c.rank, Suit: c.suit, AceIsHigh: c.aceIsHigh, ID: c.id}
}

func (c *Card) fromRecord(r cardRecord) error {
	if !r.Rank.Valid() {
		return fmt.Errorf("decode card: %w", ErrInvalidRank)
	}
	if !r.Suit.Valid() {
		return fmt.Errorf("decode card: %w", ErrInvalidSuit)
	}
	*c = Card{rank: r.Rank, suit: r.Suit, aceIsHigh: r.AceIsHigh, id: r.ID}
	return nil
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.record())
}

func (c *Card) UnmarshalJSON(b []byte) error {
	var r cardRecord
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	return c.fromRecord(r)
}

func (c Card) MarshalYAML() (interface{}, error) {
	return c.record(), nil
}

func (c *Card) UnmarshalYAML(node *yaml.Node) error {
	var r cardRecord
	if err := node.Decode(&r); err != nil {
		return err
	}
	return c.fromRecord(r)
}

func (d *Deck) record() deckRecord {
	cards := d.cards
	if cards == nil {
		cards = []Card{}
	}
	return deckRecord{ID: d.id, AceIsHigh: d.aceIsHigh, Cards: cards}
}

// fromRecord keeps the existing random source and forces every decoded
// card onto the deck's mode.
func (d *Deck) fromRecord(r deckRecord) {
	d.id = r.ID
	d.aceIsHigh = r.AceIsHigh
	d.cards = r.Cards
	if d.cards == nil {
		d.cards = []Card{}
	}
	for i := range d.cards {
		d.cards[i].aceIsHigh = r.AceIsHigh
	}
}

func (d *Deck) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.record())
}

func (d *Deck) UnmarshalJSON(b []byte) error {
	var r deckRecord
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	d.fromRecord(r)
	return nil
}

func (d *Deck) MarshalYAML() (interface{}, error) {
	return d.record(), nil
}

func (d *Deck) UnmarshalYAML(node *yaml.Node) error {
	var r deckRecord
	if err := node.Decode(&r); err != nil {
		return err
	}
	d.fromRecord(r)
	return nil
}
