package game

import (
	"math/rand"

	"github.com/unolite/server/uno/card/color"
)

// Action is the closed set of inputs the engine accepts. The marker method
// keeps the union sealed inside this package.
type Action interface {
	isAction()
}

type JoinAction struct {
	UserID int64
	Name   string
}

type StartAction struct{}

type PlayAction struct {
	UserID int64
	Index  int
}

type ChooseColorAction struct {
	UserID int64
	Color  color.Color
}

type DrawAction struct {
	UserID int64
}

type PassAction struct {
	UserID int64
}

func (JoinAction) isAction()        {}
func (StartAction) isAction()       {}
func (PlayAction) isAction()        {}
func (ChooseColorAction) isAction() {}
func (DrawAction) isAction()        {}
func (PassAction) isAction()        {}

// Reducer is the single dispatch point from actions to transitions. It owns
// the random source used for shuffling, so tests can seed it and replay
// identical deals.
type Reducer struct {
	rng *rand.Rand
}

func NewReducer(rng *rand.Rand) *Reducer {
	return &Reducer{rng: rng}
}

// Reduce runs one action against the state and returns the resulting state.
// After a play that neither froze the turn for a color choice nor ended the
// game, and after a color choice, the shared end-turn step runs here rather
// than in the transitions, so PlayCard and Pass can never drift apart.
func (r *Reducer) Reduce(s *State, a Action) (*State, error) {
	switch a := a.(type) {
	case JoinAction:
		return Join(s, a.UserID, a.Name)
	case StartAction:
		return Start(s, r.rng)
	case PlayAction:
		next, err := PlayCard(s, a.UserID, a.Index)
		if err != nil {
			return s, err
		}
		if next.Phase == PhaseInProgress {
			advanceTurn(next)
		}
		return next, nil
	case ChooseColorAction:
		next, err := ChooseColor(s, a.UserID, a.Color)
		if err != nil {
			return s, err
		}
		advanceTurn(next)
		return next, nil
	case DrawAction:
		return DrawCards(s, a.UserID, r.rng)
	case PassAction:
		return Pass(s, a.UserID)
	default:
		return s, ErrUnknownAction
	}
}
