package card

import (
	"github.com/unolite/server/uno/card/action"
	"github.com/unolite/server/uno/card/color"
)

// ColoredCard wraps a wild card with the color chosen for it, so the
// discard top carries a real color once the choice is resolved.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	return ColoredCard{
		card:  card,
		color: color,
	}
}

func (c ColoredCard) Actions() []action.Action {
	return c.card.Actions()
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

func (c ColoredCard) Equal(other Card) bool {
	return c.card.Equal(other)
}

func (c ColoredCard) Unwrap() Card {
	return c.card
}

func (c ColoredCard) String() string {
	return c.card.String() + c.color.Paintf("(%s)", c.color.Name())
}
