package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/color"
	"github.com/unolite/server/uno/game"
)

func TestPlayableCards(t *testing.T) {
	hand := []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
	}
	lastPlayedCard := card.NewNumberCard(color.Blue, 7)
	playableCards := game.PlayableCards(hand, lastPlayedCard, color.Blue)
	require.ElementsMatch(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewDrawTwoCard(color.Blue),
	}, playableCards)
}

func TestHasPlayable(t *testing.T) {
	lastPlayedCard := card.NewNumberCard(color.Blue, 7)
	require.True(t, game.HasPlayable([]card.Card{
		card.NewNumberCard(color.Red, 5),
		card.NewNumberCard(color.Blue, 2),
	}, lastPlayedCard, color.Blue))
	require.False(t, game.HasPlayable([]card.Card{
		card.NewNumberCard(color.Red, 5),
		card.NewNumberCard(color.Green, 2),
	}, lastPlayedCard, color.Blue))
	require.False(t, game.HasPlayable(nil, lastPlayedCard, color.Blue))
}
