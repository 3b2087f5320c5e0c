package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// IsAuthKey is the gin context key holding the request's auth status.
const IsAuthKey = "isAuth"

// CheckAuthStatus records whether the session has a logged-in user, for
// handlers that render differently for guests.
func CheckAuthStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		c.Set(IsAuthKey, session != nil && session.IsAuthenticated())
		c.Next()
	}
}

// Protected aborts requests whose session has no authenticated user.
func Protected() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil || !session.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts requests from sessions without the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil || !session.IsAuthenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !session.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
