package controllers

import (
	"Blackjack/middleware"
	"Blackjack/models"
	"Blackjack/services/game"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func roomCode(c *gin.Context) (string, bool) {
	code, ok := game.NormalizeRoomCode(c.Param("code"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room code"})
	}
	return code, ok
}

func roomNotFound(c *gin.Context, code string) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Room " + code + " not found"})
}

// @Summary Lists the live rooms
// @Description Returns the code, phase and number of players of every room
// @Tags rooms
// @Produce json
// @Success 200 {object} models.RoomList
// @Router /rooms [get]
func ListRooms(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.RoomList{Rooms: engine.Rooms()})
	}
}

// @Summary Gives the state of a room
// @Description Returns the same filtered view pushed to the room's observers
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} game.RoomView
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /rooms/{code} [get]
func GetRoom(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, ok := roomCode(c)
		if !ok {
			return
		}
		view, ok := engine.View(code)
		if !ok {
			roomNotFound(c, code)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// @Summary Settles a finished round
// @Description Returns win, lose, push or blackjack for every dealt player
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} models.OutcomesResponse
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /rooms/{code}/outcomes [get]
func GetOutcomes(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, ok := roomCode(c)
		if !ok {
			return
		}
		view, ok := engine.View(code)
		if !ok {
			roomNotFound(c, code)
			return
		}
		if view.Phase != game.PhaseFinished {
			c.JSON(http.StatusConflict, gin.H{"error": "Round is not finished", "gameState": view.Phase})
			return
		}
		c.JSON(http.StatusOK, models.OutcomesResponse{RoomCode: code, Outcomes: game.ResolveOutcomes(view)})
	}
}

// @Summary Joins a room
// @Description Seats the session's player, creating the room on first use
// @Tags rooms
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param body body models.JoinRequest true "Display name"
// @Success 200 {object} models.RoomResponse
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /rooms/{code}/join [post]
func JoinRoom(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, ok := roomCode(c)
		if !ok {
			return
		}
		var req models.JoinRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
			return
		}

		playerID := middleware.PlayerID(c)
		view, changed := engine.Join(code, playerID, req.Username)
		if !changed && !view.Seated(playerID) {
			log.Printf("[JOIN-REJECTED] HTTP player %s could not join room %s", playerID, code)
			c.JSON(http.StatusConflict, gin.H{"error": "Could not join room"})
			return
		}
		c.JSON(http.StatusOK, models.RoomResponse{PlayerID: playerID, Changed: changed, Room: view})
	}
}

// @Summary Hit or stand
// @Description Applies the action when it is legal; otherwise nothing changes
// @Tags rooms
// @Accept json
// @Produce json
// @Param code path string true "Room code"
// @Param body body models.ActionRequest true "hit or stand"
// @Success 200 {object} models.RoomResponse
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /rooms/{code}/action [post]
func PlayerAction(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, ok := roomCode(c)
		if !ok {
			return
		}
		var req models.ActionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Action is required"})
			return
		}
		action, ok := game.ParseAction(req.Action)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown action " + req.Action})
			return
		}

		playerID := middleware.PlayerID(c)
		view, changed := engine.Act(code, playerID, action)
		if view.Code == "" {
			roomNotFound(c, code)
			return
		}
		c.JSON(http.StatusOK, models.RoomResponse{PlayerID: playerID, Changed: changed, Room: view})
	}
}

// @Summary Deals a new round
// @Description Only has an effect once the current round has finished
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} models.RoomResponse
// @Failure 404 {object} object{error=string}
// @Router /rooms/{code}/restart [post]
func RestartGame(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, ok := roomCode(c)
		if !ok {
			return
		}
		view, changed := engine.Restart(code)
		if view.Code == "" {
			roomNotFound(c, code)
			return
		}
		c.JSON(http.StatusOK, models.RoomResponse{Changed: changed, Room: view})
	}
}

// @Summary Leaves a room
// @Description Removes the session's player; an emptied room is discarded
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} models.RoomResponse
// @Failure 404 {object} object{error=string}
// @Router /rooms/{code}/leave [post]
func LeaveRoom(engine *game.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		code, ok := roomCode(c)
		if !ok {
			return
		}
		playerID := middleware.PlayerID(c)
		view, changed := engine.Leave(code, playerID)
		if view.Code == "" {
			roomNotFound(c, code)
			return
		}
		c.JSON(http.StatusOK, models.RoomResponse{PlayerID: playerID, Changed: changed, Room: view})
	}
}
