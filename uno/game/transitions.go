package game

import (
	"fmt"
	"math/rand"

	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/action"
	"github.com/unolite/server/uno/card/color"
)

const startingHandSize = 7

// Every transition validates against the input state, then clones it and
// applies the change to the clone. On failure the input is returned as-is
// alongside the error, so a failed call is observably a no-op.

// Join seats a user at the first empty slot. The first joiner takes seat 0
// and therefore the opening turn.
func Join(s *State, userID int64, name string) (*State, error) {
	if s.Phase != PhaseWaitingForPlayers && s.Phase != PhaseReadyToStart {
		return s, ErrBadPhase
	}
	seatIndex := -1
	for i, player := range s.Players {
		if player == nil {
			seatIndex = i
			break
		}
	}
	if seatIndex < 0 {
		return s, ErrRoomFull
	}
	next := s.clone()
	next.Players[seatIndex] = &Player{
		ID:     fmt.Sprintf("p%d", seatIndex),
		UserID: userID,
		Name:   name,
	}
	if next.Players[0] != nil && next.Players[1] != nil {
		next.Phase = PhaseReadyToStart
	}
	return next, nil
}

// Start shuffles a fresh deck, deals seven cards to each seat one at a time
// and flips the opening card. A flipped wild is consumed onto the discard
// pile and the flip repeats until a colored opener appears.
func Start(s *State, rng *rand.Rand) (*State, error) {
	if s.Phase == PhaseWaitingForPlayers {
		return s, ErrNeedPlayers
	}
	if s.Phase != PhaseReadyToStart {
		return s, ErrBadPhase
	}
	if s.Players[0] == nil || s.Players[1] == nil {
		return s, ErrNeedPlayers
	}
	next := s.clone()
	next.DrawPile = NewDeck(next.Variant, rng)
	next.DiscardPile = nil
	for round := 0; round < startingHandSize; round++ {
		for _, player := range next.Players {
			dealt, drawPile, discardPile, err := drawOne(next.DrawPile, next.DiscardPile, rng)
			if err != nil {
				return s, err
			}
			player.Hand = append(player.Hand, dealt)
			next.DrawPile, next.DiscardPile = drawPile, discardPile
		}
	}
	for {
		opener, drawPile, discardPile, err := drawOne(next.DrawPile, next.DiscardPile, rng)
		if err != nil {
			return s, err
		}
		next.DrawPile = drawPile
		next.DiscardPile = append(discardPile, opener)
		if opener.Color() != nil {
			next.CurrentColor = opener.Color()
			break
		}
	}
	next.CurrentPlayer = 0
	next.PendingDraw = 0
	next.PendingSkip = false
	next.HasDrawn = false
	next.Phase = PhaseInProgress
	return next, nil
}

// PlayCard plays the card at handIndex from the acting user's hand onto the
// discard pile. An emptied hand wins immediately, overriding whatever effect
// the played card would otherwise have had.
func PlayCard(s *State, userID int64, handIndex int) (*State, error) {
	if s.Phase != PhaseInProgress {
		return s, ErrBadPhase
	}
	if err := checkTurn(s, userID); err != nil {
		return s, err
	}
	if s.PendingDraw > 0 {
		return s, ErrPendingDraw
	}
	if s.PendingSkip {
		return s, ErrPendingSkip
	}
	seat := s.Players[s.CurrentPlayer]
	if handIndex < 0 || handIndex >= len(seat.Hand) {
		return s, ErrBadIndex
	}
	if !Playable(seat.Hand[handIndex], s.Top(), s.CurrentColor) {
		return s, ErrIllegalMove
	}

	next := s.clone()
	player := next.Players[next.CurrentPlayer]
	remaining, played := removeAt(player.Hand, handIndex)
	player.Hand = remaining
	next.DiscardPile = append(next.DiscardPile, played)

	if playedColor := played.Color(); playedColor != nil {
		next.CurrentColor = playedColor
	}
	for _, cardAction := range played.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			next.PendingDraw = cardAction.Amount()
		case action.SkipTurnAction:
			next.PendingSkip = true
		case action.ReverseTurnsAction:
			// Two seats only, so a reverse cannot change direction and
			// behaves as a skip.
			next.PendingSkip = true
		case action.PickColorAction:
			next.Phase = PhaseAwaitingColorChoice
			next.CurrentColor = nil
		}
	}

	if len(player.Hand) == 0 {
		next.WinnerID = player.ID
		next.Phase = PhaseFinished
	}
	return next, nil
}

// ChooseColor resolves the color of the wild just played and returns the
// room to normal play. The frozen turn completes afterwards in the reducer.
func ChooseColor(s *State, userID int64, chosen color.Color) (*State, error) {
	if s.Phase != PhaseAwaitingColorChoice {
		return s, ErrBadPhase
	}
	if err := checkTurn(s, userID); err != nil {
		return s, err
	}
	next := s.clone()
	next.CurrentColor = chosen
	next.DiscardPile[len(next.DiscardPile)-1] = card.NewColoredCard(next.Top(), chosen)
	next.Phase = PhaseInProgress
	return next, nil
}

// DrawCards gives the acting user their owed penalty cards, or a single
// discretionary card when no penalty is outstanding. Drawing never advances
// the turn.
func DrawCards(s *State, userID int64, rng *rand.Rand) (*State, error) {
	if s.Phase != PhaseInProgress {
		return s, ErrBadPhase
	}
	if err := checkTurn(s, userID); err != nil {
		return s, err
	}
	seat := s.Players[s.CurrentPlayer]
	if s.Variant == VariantNumeric {
		if s.HasDrawn {
			return s, ErrAlreadyDrawn
		}
		if HasPlayable(seat.Hand, s.Top(), s.CurrentColor) {
			return s, ErrHasPlayable
		}
	}
	amount := s.PendingDraw
	if amount < 1 {
		amount = 1
	}
	next := s.clone()
	player := next.Players[next.CurrentPlayer]
	for i := 0; i < amount; i++ {
		drawn, drawPile, discardPile, err := drawOne(next.DrawPile, next.DiscardPile, rng)
		if err != nil {
			return s, err
		}
		player.Hand = append(player.Hand, drawn)
		next.DrawPile, next.DiscardPile = drawPile, discardPile
	}
	next.PendingDraw = 0
	next.HasDrawn = true
	return next, nil
}

// Pass ends the acting user's turn. Under the numeric rules the mandatory
// draw must have happened first; under the classic rules an owed penalty
// draw blocks passing instead.
func Pass(s *State, userID int64) (*State, error) {
	if s.Phase != PhaseInProgress {
		return s, ErrBadPhase
	}
	if err := checkTurn(s, userID); err != nil {
		return s, err
	}
	switch s.Variant {
	case VariantNumeric:
		if !s.HasDrawn {
			return s, ErrMustDrawFirst
		}
	default:
		if s.PendingDraw > 0 {
			return s, ErrPendingDraw
		}
	}
	next := s.clone()
	// A pass is the skipped player taking their lost turn, so it consumes
	// any armed skip instead of letting advanceTurn bounce the turn back.
	next.PendingSkip = false
	advanceTurn(next)
	return next, nil
}

func checkTurn(s *State, userID int64) error {
	seat := s.Players[s.CurrentPlayer]
	if seat == nil || seat.UserID != userID {
		return ErrTurn
	}
	return nil
}

// advanceTurn rotates the turn pointer and resolves an armed skip by
// rotating past the skipped seat. A skip owed together with a penalty draw
// is not resolved here: it stays armed through the penalized player's
// turn, blocking them from playing a card, and their pass consumes it.
func advanceTurn(s *State) {
	s.CurrentPlayer = 1 - s.CurrentPlayer
	if s.PendingSkip && s.PendingDraw == 0 {
		s.CurrentPlayer = 1 - s.CurrentPlayer
		s.PendingSkip = false
	}
	s.HasDrawn = false
}
