package database

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/util/async"
	"github.com/unolite/server/consts"
	"github.com/unolite/server/uno/event"
	"github.com/unolite/server/uno/game"
)

var players = hashmap.New()
var rooms = hashmap.New()

const roomIdleTimeout = 30 * time.Minute

func init() {
	async.Async(func() {
		for {
			time.Sleep(time.Minute)
			rooms.Foreach(func(e *hashmap.Entry) {
				room := e.Value().(*Room)
				if time.Since(room.LastActive()) > roomIdleTimeout {
					DeleteRoom(room.Code)
				}
			})
		}
	})
}

// Room owns the engine state for one match. Every action funnels through
// Apply under the room's lock, so each transition observes a consistent
// prior state and replaces it wholesale.
type Room struct {
	sync.Mutex

	Code    string
	Creator int64
	Variant game.Variant

	state      int
	engine     *game.Reducer
	current    *game.State
	activeTime time.Time
}

func CreateRoom(creator int64, variant game.Variant) *Room {
	room := &Room{
		Code:       generateRoomCode(),
		state:      consts.RoomStateWaiting,
		Creator:    creator,
		Variant:    variant,
		engine:     game.NewReducer(rand.New(rand.NewSource(time.Now().UnixNano()))),
		activeTime: time.Now(),
	}
	room.current = game.NewState(room.Code, variant)
	rooms.Set(room.Code, room)
	event.FirstCardPlayed.AddListener(room)
	event.CardPlayed.AddListener(room)
	event.ColorPicked.AddListener(room)
	event.PlayerPassed.AddListener(room)
	event.GameWon.AddListener(room)
	return room
}

func getRoom(code string) *Room {
	if v, ok := rooms.Get(code); ok {
		return v.(*Room)
	}
	return nil
}

func GetRoom(code string) *Room {
	return getRoom(code)
}

func GetRooms() []*Room {
	list := make([]*Room, 0)
	rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	return list
}

func DeleteRoom(code string) {
	rooms.Del(code)
}

// LeaveRoom detaches a player from a room. A running two-player match
// cannot continue without both seats, so the whole room is torn down; a
// waiting room is rebuilt without the leaver, or deleted when it empties.
func LeaveRoom(code string, playerID int64) {
	room := getRoom(code)
	if room == nil {
		return
	}
	if player := GetPlayer(playerID); player != nil && player.RoomCode == code {
		player.RoomCode = ""
	}
	room.Lock()
	defer room.Unlock()
	if room.state == consts.RoomStateRunning {
		DeleteRoom(code)
		return
	}
	rebuilt := game.NewState(code, room.Variant)
	remaining := int64(0)
	for _, seat := range room.current.Players {
		if seat == nil || seat.UserID == playerID {
			continue
		}
		if next, err := game.Join(rebuilt, seat.UserID, seat.Name); err == nil {
			rebuilt = next
			remaining = seat.UserID
		}
	}
	if remaining == 0 {
		DeleteRoom(code)
		return
	}
	room.current = rebuilt
	if room.Creator == playerID {
		room.Creator = remaining
	}
}

// Apply runs one engine action against the room's current state. On
// success the returned state becomes the room's state; on failure the old
// state stays in place untouched.
func (r *Room) Apply(a game.Action) (*game.State, error) {
	r.Lock()
	defer r.Unlock()
	next, err := r.engine.Reduce(r.current, a)
	if err != nil {
		return r.current, err
	}
	r.current = next
	r.activeTime = time.Now()
	return next, nil
}

// GameState returns the current snapshot. Callers must treat it as
// read-only; all changes go through Apply.
func (r *Room) GameState() *game.State {
	r.Lock()
	defer r.Unlock()
	return r.current
}

// Reset rebuilds a finished match into a fresh waiting state with the same
// seats. Safe to call from both players' loops; only the first call past a
// finished state does anything.
func (r *Room) Reset() {
	r.Lock()
	defer r.Unlock()
	if r.current.Phase != game.PhaseFinished {
		return
	}
	rebuilt := game.NewState(r.Code, r.Variant)
	for _, seat := range r.current.Players {
		if seat == nil {
			continue
		}
		if next, err := game.Join(rebuilt, seat.UserID, seat.Name); err == nil {
			rebuilt = next
		}
	}
	r.current = rebuilt
	r.state = consts.RoomStateWaiting
}

// State reads the lobby state under the room lock; the two sessions poll it
// from separate goroutines.
func (r *Room) State() int {
	r.Lock()
	defer r.Unlock()
	return r.state
}

func (r *Room) SetState(state int) {
	r.Lock()
	defer r.Unlock()
	r.state = state
}

func (r *Room) LastActive() time.Time {
	r.Lock()
	defer r.Unlock()
	return r.activeTime
}

func (r *Room) PlayerCount() int {
	count := 0
	for _, seat := range r.GameState().Players {
		if seat != nil {
			count++
		}
	}
	return count
}

// alive filters out events for rooms that have already been torn down;
// emitter registrations have no matching removal.
func (r *Room) alive() bool {
	return getRoom(r.Code) == r
}

func (r *Room) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	if payload.RoomCode != r.Code || !r.alive() {
		return
	}
	Broadcast(r.Code, fmt.Sprintf("First card is %s\n", payload.Card))
}

func (r *Room) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.RoomCode != r.Code || !r.alive() {
		return
	}
	Broadcast(r.Code, fmt.Sprintf("%s played %s!\n", payload.PlayerName, payload.Card))
}

func (r *Room) OnColorPicked(payload event.ColorPickedPayload) {
	if payload.RoomCode != r.Code || !r.alive() {
		return
	}
	Broadcast(r.Code, fmt.Sprintf("%s picked color %s!\n", payload.PlayerName, payload.Color))
}

func (r *Room) OnPlayerPassed(payload event.PlayerPassedPayload) {
	if payload.RoomCode != r.Code || !r.alive() {
		return
	}
	Broadcast(r.Code, fmt.Sprintf("%s passed!\n", payload.PlayerName))
}

func (r *Room) OnGameWon(payload event.GameWonPayload) {
	if payload.RoomCode != r.Code || !r.alive() {
		return
	}
	Broadcast(r.Code, fmt.Sprintf("%s wins! \n", payload.PlayerName))
}

// Broadcast writes a message to every seated player in the room except the
// excluded ones.
func Broadcast(code string, msg string, exclude ...int64) {
	room := getRoom(code)
	if room == nil {
		return
	}
	excludeSet := map[int64]bool{}
	for _, exc := range exclude {
		excludeSet[exc] = true
	}
	for _, seat := range room.GameState().Players {
		if seat == nil || excludeSet[seat.UserID] {
			continue
		}
		if player := GetPlayer(seat.UserID); player != nil && player.online {
			_ = player.WriteString(msg)
		}
	}
}

func BroadcastChat(player *Player, msg string) {
	Broadcast(player.RoomCode, msg, player.ID)
}

func generateRoomCode() string {
	for {
		code := make([]byte, 4)
		for i := range code {
			code[i] = 'A' + byte(rand.Intn(26))
		}
		if _, ok := rooms.Get(string(code)); !ok {
			return string(code)
		}
	}
}
