package game

import (
	game_constants "Blackjack/constants/game"
	"errors"
	"log"
	"strings"
	"unicode/utf8"
)

// Engine is the operation surface consumed by the gateways. Each call
// returns the resulting filtered view and whether any state changed;
// invalid requests are absorbed as no-ops.
type Engine struct {
	rooms *Registry
}

func NewEngine(rooms *Registry) *Engine {
	return &Engine{rooms: rooms}
}

func (e *Engine) Registry() *Registry {
	return e.rooms
}

// NormalizeRoomCode trims a room code and rejects empty or oversized ones.
func NormalizeRoomCode(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" || utf8.RuneCountInString(code) > game_constants.MaxRoomCodeLength {
		return "", false
	}
	return code, true
}

func normalizeName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	if utf8.RuneCountInString(name) > game_constants.MaxDisplayNameLength {
		name = string([]rune(name)[:game_constants.MaxDisplayNameLength])
	}
	return name, true
}

func (e *Engine) Join(roomCode, playerID, username string) (RoomView, bool) {
	code, ok := NormalizeRoomCode(roomCode)
	if !ok || playerID == "" {
		return RoomView{}, false
	}
	name, ok := normalizeName(username)
	if !ok {
		return RoomView{}, false
	}

	for {
		room := e.rooms.GetOrCreate(code)
		view, changed, err := room.Join(playerID, name)
		if errors.Is(err, ErrRoomClosed) {
			continue
		}
		return view, changed
	}
}

func (e *Engine) Act(roomCode, playerID string, action Action) (RoomView, bool) {
	room, ok := e.lookup(roomCode)
	if !ok {
		return RoomView{}, false
	}
	return room.Act(playerID, action)
}

func (e *Engine) Restart(roomCode string) (RoomView, bool) {
	room, ok := e.lookup(roomCode)
	if !ok {
		return RoomView{}, false
	}
	return room.Restart()
}

// Leave removes a player and drops the room once it is empty.
func (e *Engine) Leave(roomCode, playerID string) (RoomView, bool) {
	room, ok := e.lookup(roomCode)
	if !ok {
		return RoomView{}, false
	}
	view, changed, empty := room.Leave(playerID)
	if empty && e.rooms.RemoveIfEmpty(room.Code()) {
		log.Printf("[ROOM] Room %s is empty, removed", room.Code())
		if e.rooms.opts.OnRemove != nil {
			e.rooms.opts.OnRemove(room.Code())
		}
	}
	return view, changed
}

// View returns the filtered snapshot of a room.
func (e *Engine) View(roomCode string) (RoomView, bool) {
	room, ok := e.lookup(roomCode)
	if !ok {
		return RoomView{}, false
	}
	return room.View(), true
}

type RoomSummary struct {
	Code        string `json:"roomCode"`
	Phase       Phase  `json:"gameState"`
	PlayerCount int    `json:"playerCount"`
}

func (e *Engine) Rooms() []RoomSummary {
	codes := e.rooms.Codes()
	out := make([]RoomSummary, 0, len(codes))
	for _, code := range codes {
		room, ok := e.rooms.Get(code)
		if !ok {
			continue
		}
		v := room.View()
		out = append(out, RoomSummary{Code: code, Phase: v.Phase, PlayerCount: len(v.Players)})
	}
	return out
}

func (e *Engine) lookup(roomCode string) (*Room, bool) {
	code, ok := NormalizeRoomCode(roomCode)
	if !ok {
		return nil, false
	}
	return e.rooms.Get(code)
}

// ParseAction maps a wire action name to an Action.
func ParseAction(s string) (Action, bool) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionHit:
		return ActionHit, true
	case ActionStand:
		return ActionStand, true
	}
	return "", false
}
