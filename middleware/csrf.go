package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const csrfHeader = "X-CSRF-Token"
const csrfFormField = "_csrf"

// CSRF issues the session's token to every response and validates it on
// state-changing requests. The token may arrive in the X-CSRF-Token header
// or the _csrf form field.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)
		if session == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		c.Header(csrfHeader, session.CSRFToken)

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		token := c.GetHeader(csrfHeader)
		if token == "" {
			token = c.PostForm(csrfFormField)
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(session.CSRFToken)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid CSRF token"})
			return
		}

		c.Next()
	}
}
