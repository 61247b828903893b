package utils

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs information about each request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Start time
		startTime := time.Now()

		// Process request
		c.Next()

		// Calculate latency
		latency := time.Since(startTime)

		// Register information
		log.Printf("[HTTP] %s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), latency)
	}
}

// ErrorHandler turns errors attached by handlers into a JSON reply when the
// handler did not write one itself
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, err := range c.Errors {
			log.Printf("[HTTP-ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err.Err)
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": c.Errors.Last().Error()})
		}
	}
}
