package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"main/utils"
)

// RecoveryMiddleware converts panics into 500 responses and counts them.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v", err)
				utils.TrackError("http", "panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}
