package script

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"playing-cards-go/pkg/cards"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
	}{
		{"shuffle", Command{Raw: "shuffle", Kind: KindShuffle}},
		{"SORT", Command{Raw: "SORT", Kind: KindSort}},
		{"draw", Command{Raw: "draw", Kind: KindDraw, N: 1}},
		{"draw:5", Command{Raw: "draw:5", Kind: KindDraw, N: 5}},
		{"draw:-2", Command{Raw: "draw:-2", Kind: KindDraw, N: -2}},
		{"chance:rank=eight", Command{Raw: "chance:rank=eight", Kind: KindChance, Rank: cards.Eight}},
		{"chance:suit=D", Command{Raw: "chance:suit=D", Kind: KindChance, Suit: cards.Diamond}},
		{"chance:rank=A,suit=spades", Command{Raw: "chance:rank=A,suit=spades", Kind: KindChance, Rank: cards.Ace, Suit: cards.Spade}},
		{"chance", Command{Raw: "chance", Kind: KindChance}},
		{"ace-high:on", Command{Raw: "ace-high:on", Kind: KindAceHigh, AceIsHigh: true}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCommand(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Bury(t *testing.T) {
	cmd, err := ParseCommand("bury:AS,10h@middle")
	require.NoError(t, err)
	assert.Equal(t, KindBury, cmd.Kind)
	assert.Equal(t, cards.Middle, cmd.Position)
	require.Len(t, cmd.Cards, 2)
	assert.Equal(t, "AS", cmd.Cards[0].Code())
	assert.Equal(t, "10H", cmd.Cards[1].Code())

	cmd, err = ParseCommand("bury:KD")
	require.NoError(t, err)
	assert.Equal(t, cards.Top, cmd.Position)
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"deal", ErrUnknownCommand},
		{"shuffle:3", ErrInvalidArgument},
		{"draw:x", ErrInvalidArgument},
		{"bury:", ErrInvalidArgument},
		{"bury:ZZ", ErrInvalidArgument},
		{"bury:AS@side", ErrInvalidArgument},
		{"chance:colour=red", ErrInvalidArgument},
		{"chance:rank", ErrInvalidArgument},
		{"chance:rank=knight", ErrInvalidArgument},
		{"ace-high:maybe", ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseCommand(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_KeepsCardErrorsInspectable(t *testing.T) {
	_, err := Parse([]string{"sort", "bury:AX"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, cards.ErrInvalidSuit)
}

func TestRunner_Run(t *testing.T) {
	deck := cards.NewDeck(cards.DeckOptions{Rand: rand.New(rand.NewPCG(1, 2))})
	r := &Runner{Deck: deck, Language: language.English}

	cmds, err := Parse([]string{"sort", "draw:4", "chance:rank=king", "bury:KS@top", "chance:rank=king", "chance", "count", "shuffle", "peek"})
	require.NoError(t, err)

	results, err := r.Run(context.Background(), cmds)
	require.NoError(t, err)
	require.Len(t, results, len(cmds))

	drawn := results[1]
	assert.Equal(t, 48, drawn.Count)
	require.Len(t, drawn.Cards, 4)
	assert.Equal(t, "KD", drawn.Cards[0].Code)
	assert.Equal(t, "king of diamonds", drawn.Cards[0].Description)
	assert.Equal(t, 13, drawn.Cards[0].Value)
	assert.Equal(t, cards.Red, drawn.Cards[0].Color)
	assert.True(t, drawn.Cards[0].FaceCard)

	require.NotNil(t, results[2].Chance)
	assert.Zero(t, *results[2].Chance)

	assert.Equal(t, 49, results[3].Count)
	require.NotNil(t, results[4].Chance)
	assert.InDelta(t, 1.0/49, *results[4].Chance, 1e-12)

	assert.Nil(t, results[5].Chance, "no rank or suit means no answer")
	assert.Equal(t, 49, results[6].Count)
	assert.Len(t, results[8].Cards, 49)
}

func TestRunner_AceHighAndLocale(t *testing.T) {
	r := &Runner{Deck: cards.NewStandardDeck(), Language: language.French}
	cmds, err := Parse([]string{"ace-high:on", "sort", "draw"})
	require.NoError(t, err)

	results, err := r.Run(context.Background(), cmds)
	require.NoError(t, err)
	require.Len(t, results[2].Cards, 1)
	top := results[2].Cards[0]
	assert.Equal(t, cards.Ace, top.Rank)
	assert.Equal(t, 14, top.Value)
	assert.Equal(t, "as de carreaux", top.Description)
}

func TestRunner_StopsOnCancelledContext(t *testing.T) {
	r := &Runner{Deck: cards.NewStandardDeck()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := r.Run(ctx, []Command{{Raw: "draw", Kind: KindDraw, N: 1}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
	assert.Equal(t, 52, r.Deck.Count())
}
