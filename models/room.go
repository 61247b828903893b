package models

import "Blackjack/services/game"

// JoinRequest to take a seat in a room
type JoinRequest struct {
	Username string `json:"username" binding:"required"`
}

// ActionRequest to hit or stand
type ActionRequest struct {
	Action string `json:"action" binding:"required"` // "hit", "stand"
}

// RoomResponse is returned by every room operation. Changed is false when
// the request was valid but had no effect in the room's current state.
type RoomResponse struct {
	PlayerID string        `json:"player_id,omitempty"`
	Changed  bool          `json:"changed"`
	Room     game.RoomView `json:"room"`
}

// RoomList lists the live rooms
type RoomList struct {
	Rooms []game.RoomSummary `json:"rooms"`
}

// OutcomesResponse settles a finished round
type OutcomesResponse struct {
	RoomCode string               `json:"roomCode"`
	Outcomes []game.PlayerOutcome `json:"outcomes"`
}
