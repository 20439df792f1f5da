package state

import (
	"strings"

	"github.com/ratel-online/core/log"
	"github.com/unolite/server/consts"
	"github.com/unolite/server/database"
	stategame "github.com/unolite/server/state/game"
)

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateJoin, &join{})
	register(consts.StateCreate, &create{})
	register(consts.StateWaiting, &waiting{})
	register(consts.StateUnoGame, &stategame.Uno{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

// Run drives one player's conversation until the connection dies. Typing
// exit backs out through the state's Exit hook; an Exit of 0 or any other
// error ends the session. Returning id 0 from Next re-enters the same state.
func Run(player *database.Player) {
	player.State(consts.StateWelcome)
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			if err == consts.ErrorsExist {
				stateId = state.Exit(player)
				if stateId > 0 {
					player.State(stateId)
					continue
				}
			} else {
				log.Error(err)
			}
			break
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}

func isLs(signal string) bool {
	signal = strings.ToLower(strings.TrimSpace(signal))
	return signal == "ls" || signal == "v"
}
