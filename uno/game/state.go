package game

import (
	"github.com/unolite/server/uno/card"
	"github.com/unolite/server/uno/card/color"
)

type Phase int

const (
	PhaseWaitingForPlayers Phase = iota
	PhaseReadyToStart
	PhaseInProgress
	PhaseAwaitingColorChoice
	PhaseFinished
)

var phaseNames = map[Phase]string{
	PhaseWaitingForPlayers:   "waiting_for_players",
	PhaseReadyToStart:        "ready_to_start",
	PhaseInProgress:          "in_progress",
	PhaseAwaitingColorChoice: "awaiting_color_choice",
	PhaseFinished:            "finished",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// Player occupies one of the two fixed seats. ID is the seat id ("p0"/"p1"),
// stable for the lifetime of the room; UserID and Name come from the
// transport's auth handshake and are opaque to the engine.
type Player struct {
	ID     string
	UserID int64
	Name   string
	Hand   []card.Card
}

// State is the whole snapshot of a room. Transitions never mutate a State
// in place; they clone it and return the clone, so callers may keep any
// returned value and treat it as immutable.
type State struct {
	ID            string
	Variant       Variant
	Phase         Phase
	Players       [2]*Player
	DrawPile      []card.Card
	DiscardPile   []card.Card
	CurrentPlayer int
	CurrentColor  color.Color
	PendingDraw   int
	PendingSkip   bool
	HasDrawn      bool
	WinnerID      string
}

// NewState creates an empty room waiting for its two players.
func NewState(roomID string, variant Variant) *State {
	return &State{
		ID:      roomID,
		Variant: variant,
		Phase:   PhaseWaitingForPlayers,
	}
}

func (s *State) clone() *State {
	next := *s
	for i, player := range s.Players {
		if player != nil {
			seat := *player
			seat.Hand = append([]card.Card(nil), player.Hand...)
			next.Players[i] = &seat
		}
	}
	next.DrawPile = append([]card.Card(nil), s.DrawPile...)
	next.DiscardPile = append([]card.Card(nil), s.DiscardPile...)
	return &next
}

// Top returns the discard pile's top card, nil before the game starts.
func (s *State) Top() card.Card {
	if len(s.DiscardPile) == 0 {
		return nil
	}
	return s.DiscardPile[len(s.DiscardPile)-1]
}

// Current returns the seat whose turn it is, nil before the game starts.
func (s *State) Current() *Player {
	if s.Phase != PhaseInProgress && s.Phase != PhaseAwaitingColorChoice {
		return nil
	}
	return s.Players[s.CurrentPlayer]
}

// Seat finds the player owned by the given user identity.
func (s *State) Seat(userID int64) *Player {
	for _, player := range s.Players {
		if player != nil && player.UserID == userID {
			return player
		}
	}
	return nil
}

// CardCount sums every card in play. Constant from the moment the game
// starts until the room is torn down.
func (s *State) CardCount() int {
	count := len(s.DrawPile) + len(s.DiscardPile)
	for _, player := range s.Players {
		if player != nil {
			count += len(player.Hand)
		}
	}
	return count
}
