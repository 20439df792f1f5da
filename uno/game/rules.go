package game

import (
	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/color"
)

// Playable decides whether candidateCard may be played on the current
// discard top under the active color. Wilds always may; anything else must
// match the active color, or match the top card's face value or action kind.
func Playable(candidateCard card.Card, topCard card.Card, activeColor color.Color) bool {
	switch candidateCard.(type) {
	case card.WildCard, card.WildDrawFourCard:
		return true
	}

	if activeColor != nil && candidateCard.Color() == activeColor {
		return true
	}

	// A resolved wild on top only matches by color, never by kind.
	if coloredCard, ok := topCard.(card.ColoredCard); ok {
		topCard = coloredCard.Unwrap()
	}

	switch candidateCard := candidateCard.(type) {
	case card.NumberCard:
		topNumberCard, isNumberCard := topCard.(card.NumberCard)
		return isNumberCard && topNumberCard.Number() == candidateCard.Number()
	case card.SkipCard:
		_, isSkipCard := topCard.(card.SkipCard)
		return isSkipCard
	case card.ReverseCard:
		_, isReverseCard := topCard.(card.ReverseCard)
		return isReverseCard
	case card.DrawTwoCard:
		_, isDrawTwoCard := topCard.(card.DrawTwoCard)
		return isDrawTwoCard
	default:
		return false
	}
}
