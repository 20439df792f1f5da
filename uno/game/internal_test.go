package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/color"
)

func TestRemoveAt(t *testing.T) {
	hand := []card.Card{
		card.NewNumberCard(color.Blue, 1),
		card.NewNumberCard(color.Red, 2),
		card.NewNumberCard(color.Green, 3),
	}
	remaining, removed := removeAt(hand, 1)
	require.Equal(t, card.NewNumberCard(color.Red, 2), removed)
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 1),
		card.NewNumberCard(color.Green, 3),
	}, remaining)
	// Input hand untouched.
	require.Len(t, hand, 3)
	require.Equal(t, card.NewNumberCard(color.Red, 2), hand[1])
}

func TestDrawOne(t *testing.T) {
	t.Run("takes_the_front_card_of_the_draw_pile", func(t *testing.T) {
		drawPile := []card.Card{
			card.NewNumberCard(color.Blue, 1),
			card.NewNumberCard(color.Red, 2),
		}
		discardPile := []card.Card{card.NewNumberCard(color.Green, 3)}
		drawn, drawRest, discardRest, err := drawOne(drawPile, discardPile, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		require.Equal(t, card.NewNumberCard(color.Blue, 1), drawn)
		require.Len(t, drawRest, 1)
		require.Equal(t, discardPile, discardRest)
	})

	t.Run("reshuffles_the_discard_pile_keeping_its_top", func(t *testing.T) {
		top := card.NewNumberCard(color.Green, 9)
		discardPile := []card.Card{
			card.NewNumberCard(color.Blue, 1),
			card.NewNumberCard(color.Red, 2),
			top,
		}
		drawn, drawRest, discardRest, err := drawOne(nil, discardPile, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		require.Equal(t, []card.Card{top}, discardRest)
		require.Len(t, drawRest, 1)
		require.ElementsMatch(t, []card.Card{
			card.NewNumberCard(color.Blue, 1),
			card.NewNumberCard(color.Red, 2),
		}, append([]card.Card{drawn}, drawRest...))
	})

	t.Run("resolved_wilds_go_back_in_unresolved", func(t *testing.T) {
		top := card.NewNumberCard(color.Green, 9)
		discardPile := []card.Card{
			card.NewColoredCard(card.NewWildCard(), color.Blue),
			top,
		}
		drawn, drawRest, discardRest, err := drawOne(nil, discardPile, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		require.Equal(t, card.NewWildCard(), drawn)
		require.Empty(t, drawRest)
		require.Equal(t, []card.Card{top}, discardRest)
	})

	t.Run("errors_when_no_card_exists_anywhere", func(t *testing.T) {
		discardPile := []card.Card{card.NewNumberCard(color.Green, 9)}
		_, _, _, err := drawOne(nil, discardPile, rand.New(rand.NewSource(1)))
		require.ErrorIs(t, err, ErrExhausted)
	})
}

type bogusAction struct{}

func (bogusAction) isAction() {}

func TestReduceUnknownAction(t *testing.T) {
	reducer := NewReducer(rand.New(rand.NewSource(1)))
	s := NewState("TEST", VariantClassic)
	next, err := reducer.Reduce(s, bogusAction{})
	require.ErrorIs(t, err, ErrUnknownAction)
	require.Same(t, s, next)
}
