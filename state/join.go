package state

import (
	"fmt"
	"strings"

	"github.com/unolite/server/consts"
	"github.com/unolite/server/database"
	"github.com/unolite/server/render"
	"github.com/unolite/server/uno/game"
)

type join struct{}

func (s *join) Next(player *database.Player) (consts.StateID, error) {
	err := render.RoomList(player)
	if err != nil {
		return 0, player.WriteError(err)
	}
	signal, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	if isLs(signal) {
		return consts.StateJoin, nil
	}
	code := strings.ToUpper(strings.TrimSpace(signal))
	room := database.GetRoom(code)
	if room == nil {
		return 0, player.WriteError(consts.ErrorsRoomInvalid)
	}
	if room.State() == consts.RoomStateRunning {
		return 0, player.WriteError(consts.ErrorsJoinFailForRoomRunning)
	}
	if _, err := room.Apply(game.JoinAction{UserID: player.ID, Name: player.Name}); err != nil {
		_ = player.WriteString(render.ErrorText(err))
		return consts.StateJoin, nil
	}
	player.RoomCode = room.Code
	database.Broadcast(room.Code, fmt.Sprintf("%s joined room! room current has %d players\n", player.Name, room.PlayerCount()), player.ID)
	return consts.StateWaiting, nil
}

func (*join) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}
