package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
	"github.com/unolite/server/uno/game"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateJoin
	StateCreate
	StateWaiting
	StateUnoGame
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	// A room seats exactly two players.
	MaxPlayers = 2

	RoomStateWaiting = 1
	RoomStateRunning = 2

	AuthTimeout = 3 * time.Second
	PollTimeout = time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Msg: msg, Exit: exit}
}

var (
	ErrorsExist                  = NewErr(1, true, "Exist. ")
	ErrorsChanClosed             = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout                = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid           = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail               = NewErr(1, true, "Auth fail. ")
	ErrorsRoomInvalid            = NewErr(1, true, "Room invalid. ")
	ErrorsVariantInvalid         = NewErr(1, false, "Rule variant invalid. ")
	ErrorsRoomPlayersIsFull      = NewErr(1, false, "Room players is full. ")
	ErrorsJoinFailForRoomRunning = NewErr(1, false, "Join fail, room is running. ")

	RoomStates = map[int]string{
		RoomStateWaiting: "Waiting",
		RoomStateRunning: "Running",
	}

	Variants = map[int]game.Variant{
		1: game.VariantClassic,
		2: game.VariantNumeric,
	}
	VariantIds = []int{1, 2}
)
