package game

import (
	"math/rand"

	"github.com/unolite/server/uno/card"
)

// drawOne takes the front card of the draw pile. When the draw pile is
// empty it keeps the discard top in place and shuffles the rest of the
// discard pile into a fresh draw pile. ErrExhausted fires only when no
// card exists anywhere to draw, which a closed card count rules out; it
// signals a data-integrity bug, not a game situation.
func drawOne(drawPile, discardPile []card.Card, rng *rand.Rand) (card.Card, []card.Card, []card.Card, error) {
	if len(drawPile) == 0 {
		if len(discardPile) <= 1 {
			return nil, drawPile, discardPile, ErrExhausted
		}
		top := discardPile[len(discardPile)-1]
		reshuffled := make([]card.Card, 0, len(discardPile)-1)
		for _, buried := range discardPile[:len(discardPile)-1] {
			// Wilds go back in unresolved, without their chosen color.
			if colored, ok := buried.(card.ColoredCard); ok {
				buried = colored.Unwrap()
			}
			reshuffled = append(reshuffled, buried)
		}
		rng.Shuffle(len(reshuffled), func(i, j int) { reshuffled[i], reshuffled[j] = reshuffled[j], reshuffled[i] })
		drawPile = reshuffled
		discardPile = []card.Card{top}
	}
	drawn := drawPile[0]
	return drawn, drawPile[1:], discardPile, nil
}
