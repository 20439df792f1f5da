package card

import (
	"github.com/unolite/server/uno/card/action"
	"github.com/unolite/server/uno/card/color"
)

// Card is the closed vocabulary of playable cards. Concrete types are
// immutable values; Equal compares by kind and face, not by identity.
type Card interface {
	Actions() []action.Action
	Color() color.Color
	Equal(other Card) bool
	String() string
}
