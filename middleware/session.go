package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopping-widget/models"
	"shopping-widget/store"
	"shopping-widget/utils"
)

// SessionMiddleware guards routes that need the remote service: it rejects
// the request when no token is held or the held token has expired. Presence
// of the token is the sole signal of authenticated state.
func SessionMiddleware(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.Get(store.TokenKey)
		if !ok || token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Not logged in",
			})
			c.Abort()
			return
		}

		if utils.TokenExpired(token) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Session expired, please log in again",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
