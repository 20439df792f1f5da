package state

import (
	"fmt"
	"strings"

	"github.com/unolite/server/consts"
	"github.com/unolite/server/database"
	"github.com/unolite/server/render"
	"github.com/unolite/server/uno/event"
	"github.com/unolite/server/uno/game"
)

type waiting struct{}

// Next polls for the room to fill and start. Both players sit in this
// state; the owner types start, the other seat just sees the room flip to
// running on the next poll.
func (s *waiting) Next(player *database.Player) (consts.StateID, error) {
	room := database.GetRoom(player.RoomCode)
	if room == nil {
		_ = player.WriteError(consts.ErrorsRoomInvalid)
		return consts.StateHome, nil
	}
	access := false
	player.StartTransaction()
	defer player.StopTransaction()
	for {
		signal, err := player.AskForStringWithoutTransaction(consts.PollTimeout)
		if err != nil && err != consts.ErrorsTimeout {
			return 0, err
		}
		if room.State() == consts.RoomStateRunning {
			access = true
			break
		}
		signal = strings.ToLower(strings.TrimSpace(signal))
		if isLs(signal) {
			if err := render.RoomInfo(player, room); err != nil {
				return 0, player.WriteError(err)
			}
			continue
		}
		if signal == "start" || signal == "s" {
			if room.Creator != player.ID {
				_ = player.WriteString("Only the room owner can start the game. \n")
				continue
			}
			st, err := room.Apply(game.StartAction{})
			if err != nil {
				_ = player.WriteString(render.ErrorText(err))
				continue
			}
			room.SetState(consts.RoomStateRunning)
			database.Broadcast(room.Code, "Game starting! \n")
			event.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
				RoomCode: room.Code,
				Card:     st.Top(),
			})
			access = true
			break
		}
		if signal != "" {
			database.BroadcastChat(player, fmt.Sprintf("%s say: %s\n", player.Name, signal))
		}
	}
	if access {
		return consts.StateUnoGame, nil
	}
	return s.Exit(player), nil
}

func (*waiting) Exit(player *database.Player) consts.StateID {
	room := database.GetRoom(player.RoomCode)
	if room != nil {
		database.Broadcast(room.Code, fmt.Sprintf("%s exited room! \n", player.Name), player.ID)
		database.LeaveRoom(room.Code, player.ID)
	}
	return consts.StateHome
}
