package game

import (
	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/color"
)

// PlayableCards filters a hand down to the cards that may legally go on
// top of the discard pile.
func PlayableCards(hand []card.Card, top card.Card, active color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range hand {
		if Playable(candidateCard, top, active) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// HasPlayable reports whether at least one card in the hand is legal.
func HasPlayable(hand []card.Card, top card.Card, active color.Color) bool {
	for _, candidateCard := range hand {
		if Playable(candidateCard, top, active) {
			return true
		}
	}
	return false
}

// removeAt takes the card at index out of the hand without reordering the
// remaining cards. The input slice is left untouched.
func removeAt(hand []card.Card, index int) ([]card.Card, card.Card) {
	removed := hand[index]
	remaining := make([]card.Card, 0, len(hand)-1)
	remaining = append(remaining, hand[:index]...)
	remaining = append(remaining, hand[index+1:]...)
	return remaining, removed
}
