package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unolite/server/consts"
	"github.com/unolite/server/database"
	"github.com/unolite/server/render"
	"github.com/unolite/server/uno/card/color"
	"github.com/unolite/server/uno/event"
	unogame "github.com/unolite/server/uno/game"
)

// Uno is the in-game conversational loop. Each player's session polls the
// room's snapshot and re-renders whenever the other seat changed it, while
// translating chat commands into engine actions.
type Uno struct{}

func (s *Uno) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomCode)
	if room == nil {
		_ = player.WriteError(consts.ErrorsRoomInvalid)
		return consts.StateHome, nil
	}
	player.StartTransaction()
	defer player.StopTransaction()

	lastSeen := room.GameState()
	_ = player.WriteString(render.GameView(lastSeen, player.ID))
	for {
		signal, err := player.AskForStringWithoutTransaction(consts.PollTimeout)
		if err != nil && err != consts.ErrorsTimeout {
			return 0, err
		}
		if database.GetRoom(player.RoomCode) != room {
			_ = player.WriteString("Room was closed. \n")
			player.RoomCode = ""
			return consts.StateHome, nil
		}
		// The other session may have reset the room after a win.
		if room.State() != consts.RoomStateRunning {
			return consts.StateWaiting, nil
		}
		if st := room.GameState(); st != lastSeen {
			lastSeen = st
			if st.Phase == unogame.PhaseFinished {
				room.Reset()
				return consts.StateWaiting, nil
			}
			_ = player.WriteString(render.GameView(st, player.ID))
		}
		signal = strings.TrimSpace(signal)
		if signal == "" {
			continue
		}
		fields := strings.Fields(strings.ToLower(signal))
		switch fields[0] {
		case "play", "p":
			if next, ok := s.play(player, room, fields); ok {
				return next, nil
			}
		case "color", "c":
			s.chooseColor(player, room, fields)
		case "draw", "d":
			s.draw(player, room)
		case "pass":
			s.pass(player, room)
		case "hand", "h":
			_ = player.WriteString(render.HandView(room.GameState(), player.ID))
		case "ls", "v":
			_ = player.WriteString(render.GameView(room.GameState(), player.ID))
		default:
			database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
		}
	}
}

func (s *Uno) play(player *database.Player, room *database.Room, fields []string) (consts.StateID, bool) {
	if len(fields) < 2 {
		_ = player.WriteString("Usage: play <position> \n")
		return 0, false
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		_ = player.WriteString(render.ErrorText(consts.ErrorsInputInvalid))
		return 0, false
	}
	st, err := room.Apply(unogame.PlayAction{UserID: player.ID, Index: index})
	if err != nil {
		_ = player.WriteString(render.ErrorText(err))
		return 0, false
	}
	event.CardPlayed.Emit(event.CardPlayedPayload{
		RoomCode:   room.Code,
		PlayerName: player.Name,
		Card:       st.Top(),
	})
	if st.Phase == unogame.PhaseAwaitingColorChoice {
		_ = player.WriteString("Pick a color: red, yellow, green or blue. \n")
		return 0, false
	}
	if st.Phase == unogame.PhaseFinished {
		event.GameWon.Emit(event.GameWonPayload{
			RoomCode:   room.Code,
			PlayerName: player.Name,
		})
		room.Reset()
		return consts.StateWaiting, true
	}
	return 0, false
}

func (s *Uno) chooseColor(player *database.Player, room *database.Room, fields []string) {
	if len(fields) < 2 {
		_ = player.WriteString("Usage: color <red|yellow|green|blue> \n")
		return
	}
	chosen, err := color.ByName(fields[1])
	if err != nil {
		_ = player.WriteString(err.Error() + "\n")
		return
	}
	if _, err := room.Apply(unogame.ChooseColorAction{UserID: player.ID, Color: chosen}); err != nil {
		_ = player.WriteString(render.ErrorText(err))
		return
	}
	event.ColorPicked.Emit(event.ColorPickedPayload{
		RoomCode:   room.Code,
		PlayerName: player.Name,
		Color:      chosen,
	})
}

func (s *Uno) draw(player *database.Player, room *database.Room) {
	before := 0
	if seat := room.GameState().Seat(player.ID); seat != nil {
		before = len(seat.Hand)
	}
	st, err := room.Apply(unogame.DrawAction{UserID: player.ID})
	if err != nil {
		_ = player.WriteString(render.ErrorText(err))
		return
	}
	drawn := 0
	if seat := st.Seat(player.ID); seat != nil {
		drawn = len(seat.Hand) - before
	}
	_ = player.WriteString(fmt.Sprintf("You drew %d card(s). \n", drawn))
	_ = player.WriteString(render.HandView(st, player.ID))
	database.Broadcast(room.Code, fmt.Sprintf("%s drew %d card(s). \n", player.Name, drawn), player.ID)
}

func (s *Uno) pass(player *database.Player, room *database.Room) {
	if _, err := room.Apply(unogame.PassAction{UserID: player.ID}); err != nil {
		_ = player.WriteString(render.ErrorText(err))
		return
	}
	event.PlayerPassed.Emit(event.PlayerPassedPayload{
		RoomCode:   room.Code,
		PlayerName: player.Name,
	})
}

// Exit abandons the match. A running two-player room cannot survive a
// walkout, so the registry tears it down and the opponent's loop notices.
func (s *Uno) Exit(player *database.Player) consts.StateID {
	if room := database.GetRoom(player.RoomCode); room != nil {
		database.Broadcast(room.Code, fmt.Sprintf("%s exited room! \n", player.Name), player.ID)
		database.LeaveRoom(room.Code, player.ID)
	}
	return consts.StateHome
}
