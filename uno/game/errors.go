package game

// Error is a rule failure with a stable machine-readable code. The Msg is
// developer-oriented; user-facing text is the presentation layer's job.
type Error struct {
	Code string
	Msg  string
}

func (e Error) Error() string {
	return e.Msg
}

func newErr(code, msg string) Error {
	return Error{Code: code, Msg: msg}
}

var (
	ErrBadPhase      = newErr("bad_phase", "action is not valid in the current phase")
	ErrNeedPlayers   = newErr("need_players", "both seats must be filled to start")
	ErrRoomFull      = newErr("room_full", "no empty seat left")
	ErrTurn          = newErr("turn", "not this player's turn")
	ErrPendingDraw   = newErr("pending_draw", "a forced draw must be resolved first")
	ErrPendingSkip   = newErr("pending_skip", "this turn is skipped")
	ErrBadIndex      = newErr("bad_index", "hand index out of range")
	ErrIllegalMove   = newErr("illegal_move", "card does not match the discard top")
	ErrHasPlayable   = newErr("has_playable", "a playable card must be played instead of drawing")
	ErrAlreadyDrawn  = newErr("already_drawn", "only one draw per turn")
	ErrMustDrawFirst = newErr("must_draw_first", "a card must be drawn before passing")
	ErrExhausted     = newErr("exhausted", "no card left anywhere to draw")
	ErrUnknownAction = newErr("unknown_action", "unrecognized engine action")
)
