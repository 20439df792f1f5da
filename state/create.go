package state

import (
	"bytes"
	"fmt"

	"github.com/unolite/server/consts"
	"github.com/unolite/server/database"
	"github.com/unolite/server/render"
	"github.com/unolite/server/uno/game"
)

type create struct{}

func (s *create) Next(player *database.Player) (consts.StateID, error) {
	buf := bytes.Buffer{}
	buf.WriteString("Please select rule variant\n")
	for _, id := range consts.VariantIds {
		buf.WriteString(fmt.Sprintf("%d.%s\n", id, consts.Variants[id]))
	}
	err := player.WriteString(buf.String())
	if err != nil {
		return 0, player.WriteError(err)
	}
	selected, err := player.AskForInt()
	if err != nil {
		return 0, player.WriteError(err)
	}
	variant, ok := consts.Variants[selected]
	if !ok {
		return 0, player.WriteError(consts.ErrorsVariantInvalid)
	}
	room := database.CreateRoom(player.ID, variant)
	if _, err := room.Apply(game.JoinAction{UserID: player.ID, Name: player.Name}); err != nil {
		database.DeleteRoom(room.Code)
		_ = player.WriteString(render.ErrorText(err))
		return s.Exit(player), nil
	}
	player.RoomCode = room.Code
	_ = player.WriteString(fmt.Sprintf("Room %s created, waiting for an opponent... \n", room.Code))
	return consts.StateWaiting, nil
}

func (*create) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}
