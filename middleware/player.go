package middleware

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	playerKey        = "player_id"
	playerContextKey = "player_id"
)

// PlayerRequired gives each HTTP client a transient player id held in its
// session cookie. Nothing about the player outlives the cookie.
func PlayerRequired(c *gin.Context) {
	session := sessions.Default(c)
	id, _ := session.Get(playerKey).(string)
	if id == "" {
		id = uuid.NewString()
		session.Set(playerKey, id)
		if err := session.Save(); err != nil {
			log.Printf("[SESSION-ERROR] Could not save session: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
			return
		}
	}
	c.Set(playerContextKey, id)
	c.Next()
}

// PlayerID returns the id set by PlayerRequired.
func PlayerID(c *gin.Context) string {
	return c.GetString(playerContextKey)
}
