package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/color"
	"github.com/unolite/server/uno/game"
)

func TestPlayable(t *testing.T) {
	scenarios := []struct {
		description    string
		candidateCard  card.Card
		lastPlayedCard card.Card
		activeColor    color.Color
		expectedResult bool
	}{
		{
			description:    "wild_card_is_always_playable",
			candidateCard:  card.NewWildCard(),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "wild_draw_four_card_is_always_playable",
			candidateCard:  card.NewWildDrawFourCard(),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 5),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_same_number",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_cards_with_different_color_and_number",
			candidateCard:  card.NewNumberCard(color.Red, 5),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "reverse_cards",
			candidateCard:  card.NewReverseCard(color.Red),
			lastPlayedCard: card.NewReverseCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "skip_cards",
			candidateCard:  card.NewSkipCard(color.Red),
			lastPlayedCard: card.NewSkipCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "draw_two_cards",
			candidateCard:  card.NewDrawTwoCard(color.Red),
			lastPlayedCard: card.NewDrawTwoCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "action_cards_with_same_color",
			candidateCard:  card.NewReverseCard(color.Blue),
			lastPlayedCard: card.NewDrawTwoCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "action_cards_with_different_color",
			candidateCard:  card.NewReverseCard(color.Red),
			lastPlayedCard: card.NewDrawTwoCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "number_card_then_action_card_with_same_color",
			candidateCard:  card.NewReverseCard(color.Blue),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "number_card_then_action_card_with_different_color",
			candidateCard:  card.NewReverseCard(color.Red),
			lastPlayedCard: card.NewNumberCard(color.Blue, 7),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "action_card_then_number_card_with_same_color",
			candidateCard:  card.NewNumberCard(color.Blue, 7),
			lastPlayedCard: card.NewReverseCard(color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "action_card_then_number_card_with_different_color",
			candidateCard:  card.NewNumberCard(color.Blue, 7),
			lastPlayedCard: card.NewReverseCard(color.Red),
			activeColor:    color.Red,
			expectedResult: false,
		},
		{
			description:    "colored_wild_card_then_card_with_chosen_color",
			candidateCard:  card.NewNumberCard(color.Blue, 7),
			lastPlayedCard: card.NewColoredCard(card.NewWildCard(), color.Blue),
			activeColor:    color.Blue,
			expectedResult: true,
		},
		{
			description:    "colored_wild_card_then_card_with_different_color",
			candidateCard:  card.NewNumberCard(color.Red, 7),
			lastPlayedCard: card.NewColoredCard(card.NewWildCard(), color.Blue),
			activeColor:    color.Blue,
			expectedResult: false,
		},
		{
			description:    "matching_the_active_color_of_a_resolved_wild",
			candidateCard:  card.NewNumberCard(color.Green, 3),
			lastPlayedCard: card.NewColoredCard(card.NewWildCard(), color.Green),
			activeColor:    color.Green,
			expectedResult: true,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result := game.Playable(scenario.candidateCard, scenario.lastPlayedCard, scenario.activeColor)
			require.Equal(t, scenario.expectedResult, result)
		})
	}
}
