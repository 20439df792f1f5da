package render_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unolite/server/render"
	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/color"
	"github.com/unolite/server/uno/game"
)

func TestErrorText(t *testing.T) {
	require.Equal(t, "That card doesn't match the top card. \n", render.ErrorText(game.ErrIllegalMove))
	require.Equal(t, "It's not your turn. \n", render.ErrorText(game.ErrTurn))
	require.Equal(t, "boom\n", render.ErrorText(errors.New("boom")))

	// Internal engine conditions never leak their developer text.
	require.Equal(t, "Something went wrong, please try again. \n", render.ErrorText(game.ErrExhausted))
	require.Equal(t, "Something went wrong, please try again. \n", render.ErrorText(game.ErrUnknownAction))
}

func TestGameView(t *testing.T) {
	state := &game.State{
		ID:      "TEST",
		Variant: game.VariantClassic,
		Phase:   game.PhaseInProgress,
		Players: [2]*game.Player{
			{ID: "p0", UserID: 1, Name: "alice", Hand: []card.Card{card.NewNumberCard(color.Blue, 7)}},
			{ID: "p1", UserID: 2, Name: "bob", Hand: []card.Card{card.NewNumberCard(color.Red, 1), card.NewWildCard()}},
		},
		DiscardPile:  []card.Card{card.NewNumberCard(color.Blue, 3)},
		CurrentColor: color.Blue,
	}

	view := render.GameView(state, 1)
	require.Contains(t, view, "Top card:")
	require.Contains(t, view, "bob holds 2 card(s)")
	require.Contains(t, view, "It's your turn!")
	require.Contains(t, view, "Your hand:")

	view = render.GameView(state, 2)
	require.Contains(t, view, "alice holds 1 card(s)")
	require.Contains(t, view, "It's alice's turn!")
}

func TestGameViewAwaitingColorChoice(t *testing.T) {
	state := &game.State{
		ID:      "TEST",
		Variant: game.VariantClassic,
		Phase:   game.PhaseAwaitingColorChoice,
		Players: [2]*game.Player{
			{ID: "p0", UserID: 1, Name: "alice", Hand: []card.Card{card.NewNumberCard(color.Blue, 7)}},
			{ID: "p1", UserID: 2, Name: "bob", Hand: []card.Card{card.NewNumberCard(color.Red, 1)}},
		},
		DiscardPile: []card.Card{card.NewWildCard()},
	}

	view := render.GameView(state, 2)
	require.Contains(t, view, "waiting for a color choice")
}

func TestHandView(t *testing.T) {
	state := &game.State{
		Players: [2]*game.Player{
			{ID: "p0", UserID: 1, Name: "alice", Hand: []card.Card{
				card.NewNumberCard(color.Blue, 7),
				card.NewSkipCard(color.Red),
			}},
			nil,
		},
	}
	view := render.HandView(state, 1)
	require.Contains(t, view, "Your hand:")
	require.Contains(t, view, "0:")
	require.Contains(t, view, "1:")
	require.Empty(t, render.HandView(state, 99))
}
