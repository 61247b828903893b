package game_constants

import "time"

const BlackjackTarget = 21

// Dealer draws while below this score, whatever the players hold.
const DealerStandsOn = 17

const CardsPerInitialDeal = 2

const DefaultDealerTick = 1 * time.Second

const MaxRoomCodeLength = 32
const MaxDisplayNameLength = 24

// Socket.io / websocket event names, kept identical to the browser client.
const (
	EventJoinRoom     = "joinRoom"
	EventPlayerAction = "playerAction"
	EventRestartGame  = "restartGame"
	EventLeaveRoom    = "leaveRoom"
	EventGameState    = "gameState"
	EventError        = "error"
)
