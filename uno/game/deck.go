package game

import (
	"math/rand"

	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/color"
)

const (
	classicDeckSize = 108
	numericDeckSize = 72
)

// NewDeck builds the card multiset for the variant and shuffles it with the
// supplied source, so a seeded source yields a reproducible order.
func NewDeck(variant Variant, rng *rand.Rand) []card.Card {
	var cards []card.Card
	switch variant {
	case VariantNumeric:
		cards = make([]card.Card, 0, numericDeckSize)
		for _, cardColor := range color.All {
			cards = append(cards, createNumericCards(cardColor)...)
		}
	default:
		cards = make([]card.Card, 0, classicDeckSize)
		cards = append(cards, createBlackCards()...)
		for _, cardColor := range color.All {
			cards = append(cards, createClassicCards(cardColor)...)
		}
	}
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return cards
}

func createClassicCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createNumericCards(cardColor color.Color) []card.Card {
	cards := make([]card.Card, 0, 18)
	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}
	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
