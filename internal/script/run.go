package script

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/language"

	"playing-cards-go/internal/tracing"
	"playing-cards-go/pkg/cards"
)

// CardView is the read-only projection of a card a display needs.
type CardView struct {
	Code        string      `json:"code" yaml:"code"`
	Rank        cards.Rank  `json:"rank" yaml:"rank"`
	Suit        cards.Suit  `json:"suit" yaml:"suit"`
	Value       int         `json:"value" yaml:"value"`
	Symbol      string      `json:"symbol" yaml:"symbol"`
	Pip         string      `json:"pip" yaml:"pip"`
	Color       cards.Color `json:"color" yaml:"color"`
	FaceCard    bool        `json:"face_card" yaml:"face_card"`
	Description string      `json:"description" yaml:"description"`
}

type Result struct {
	Command string     `json:"command" yaml:"command"`
	Count   int        `json:"count" yaml:"count"`
	Cards   []CardView `json:"cards,omitempty" yaml:"cards,omitempty"`

	// Chance is omitted when the query has no answer.
	Chance *float64 `json:"chance,omitempty" yaml:"chance,omitempty"`
}

type Runner struct {
	Deck     *cards.Deck
	Language language.Tag
}

func (r *Runner) view(c cards.Card) CardView {
	return CardView{
		Code:        c.Code(),
		Rank:        c.Rank(),
		Suit:        c.Suit(),
		Value:       c.Value(),
		Symbol:      c.Rank().Symbol(),
		Pip:         c.Suit().PipFill(),
		Color:       c.Suit().Color(),
		FaceCard:    c.Rank().IsFaceCard(),
		Description: c.LocalizedDescription(r.Language),
	}
}

func (r *Runner) views(cs []cards.Card) []CardView {
	out := make([]CardView, 0, len(cs))
	for _, c := range cs {
		out = append(out, r.view(c))
	}
	return out
}

// Run executes the commands in order, one span each. It stops early only
// when ctx is done.
func (r *Runner) Run(ctx context.Context, cmds []Command) ([]Result, error) {
	results := make([]Result, 0, len(cmds))
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		_, span := tracing.StartSpan(ctx, "deck."+string(cmd.Kind),
			attribute.String("deck.command", cmd.Raw),
			attribute.Int("deck.count_before", r.Deck.Count()),
		)
		res := r.Exec(cmd)
		span.SetAttributes(attribute.Int("deck.count_after", r.Deck.Count()))
		if res.Chance != nil {
			span.SetAttributes(attribute.Float64("deck.chance", *res.Chance))
		}
		span.End()
		results = append(results, res)
	}
	return results, nil
}

// Exec applies a single command to the deck.
func (r *Runner) Exec(cmd Command) Result {
	d := r.Deck
	res := Result{Command: cmd.Raw}
	switch cmd.Kind {
	case KindShuffle:
		d.Shuffle()
	case KindSort:
		d.Sort()
	case KindPeek:
		res.Cards = r.views(d.Peek())
	case KindDraw:
		res.Cards = r.views(d.DrawN(cmd.N))
	case KindBury:
		d.BuryAll(cmd.Cards, cmd.Position)
	case KindChance:
		if chance, ok := d.ChanceOfDrawing(cmd.Rank, cmd.Suit); ok {
			res.Chance = &chance
		}
	case KindAceHigh:
		d.SetAceIsHigh(cmd.AceIsHigh)
	}
	res.Count = d.Count()
	return res
}
