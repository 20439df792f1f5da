package render

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/unolite/server/consts"
	"github.com/unolite/server/database"
	"github.com/unolite/server/uno/game"
)

// User-facing wording for the engine's error codes. The engine itself only
// ever reports codes plus developer text.
var errorTexts = map[string]string{
	"bad_phase":       "You can't do that right now. ",
	"need_players":    "The room needs two players before starting. ",
	"room_full":       "This room already has two players. ",
	"turn":            "It's not your turn. ",
	"pending_draw":    "You must draw your penalty cards first. ",
	"pending_skip":    "Your turn is skipped, you can only draw and pass. ",
	"bad_index":       "There is no card at that position. ",
	"illegal_move":    "That card doesn't match the top card. ",
	"has_playable":    "You have a playable card, play it instead. ",
	"already_drawn":   "You already drew this turn. ",
	"must_draw_first": "Draw a card before passing. ",
}

// ErrorText translates an engine error code into user wording. Codes with
// no entry are internal conditions (exhausted piles, unknown actions) whose
// developer text never reaches a player.
func ErrorText(err error) string {
	var gameErr game.Error
	if errors.As(err, &gameErr) {
		if text, ok := errorTexts[gameErr.Code]; ok {
			return text + "\n"
		}
		return "Something went wrong, please try again. \n"
	}
	return err.Error() + "\n"
}

func Welcome(player *database.Player) error {
	return player.WriteString(fmt.Sprintf("Hi %s, welcome to UNO Lite! \n", player.Name))
}

func RoomList(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-10s%-10s%-10s\n", "Code", "Variant", "Players", "State"))
	for _, room := range database.GetRooms() {
		buf.WriteString(fmt.Sprintf("%-10s%-10s%-10d%-10s\n", room.Code, room.Variant, room.PlayerCount(), consts.RoomStates[room.State()]))
	}
	buf.WriteString("Input a room code to join, or 'ls' to refresh. \n")
	return player.WriteString(buf.String())
}

func RoomInfo(player *database.Player, room *database.Room) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Room code: %s (%s)\n", room.Code, room.Variant))
	buf.WriteString(fmt.Sprintf("%-20s%-10s\n", "Name", "Title"))
	for _, seat := range room.GameState().Players {
		if seat == nil {
			continue
		}
		title := "player"
		if seat.UserID == room.Creator {
			title = "owner"
		}
		buf.WriteString(fmt.Sprintf("%-20s%-10s\n", seat.Name, title))
	}
	return player.WriteString(buf.String())
}

// GameView is the per-player table view: discard top, active color, the
// opponent's card count, whose turn it is, and the viewer's own hand.
func GameView(state *game.State, viewerID int64) string {
	buf := bytes.Buffer{}
	if top := state.Top(); top != nil {
		buf.WriteString(fmt.Sprintf("Top card: %s \n", top))
	}
	if state.CurrentColor != nil {
		buf.WriteString(fmt.Sprintf("Active color: %s \n", state.CurrentColor))
	} else if state.Phase == game.PhaseAwaitingColorChoice {
		buf.WriteString("Active color: waiting for a color choice \n")
	}
	for _, seat := range state.Players {
		if seat == nil || seat.UserID == viewerID {
			continue
		}
		buf.WriteString(fmt.Sprintf("%s holds %d card(s) \n", seat.Name, len(seat.Hand)))
	}
	if current := state.Current(); current != nil {
		if current.UserID == viewerID {
			buf.WriteString("It's your turn! \n")
		} else {
			buf.WriteString(fmt.Sprintf("It's %s's turn! \n", current.Name))
		}
	}
	buf.WriteString(HandView(state, viewerID))
	return buf.String()
}

func HandView(state *game.State, viewerID int64) string {
	seat := state.Seat(viewerID)
	if seat == nil {
		return ""
	}
	buf := bytes.Buffer{}
	buf.WriteString("Your hand:")
	for i, handCard := range seat.Hand {
		buf.WriteString(fmt.Sprintf(" %d:%s", i, handCard))
	}
	buf.WriteString(" \n")
	return buf.String()
}
