package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DarkcodeQuan/WebProject/models"
	"github.com/DarkcodeQuan/WebProject/repository"
)

// SessionKey is the gin context key holding the request's session.
const SessionKey = "session"

const sessionCookie = "sid"

// Session loads the visitor's session from the "sid" cookie, creating a new
// one on first interaction. The session carries the cart, the CSRF token and
// the authenticated-user marker.
func Session(sessions repository.SessionRepo, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var session *models.Session

		if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
			session, err = sessions.Get(c.Request.Context(), sid)
			if err != nil {
				_ = c.Error(err)
				c.Abort()
				return
			}
		}

		if session == nil {
			session = &models.Session{
				ID:        uuid.NewString(),
				CSRFToken: uuid.NewString(),
				Cart:      models.NewCart(),
			}
			if err := sessions.Save(c.Request.Context(), session); err != nil {
				_ = c.Error(err)
				c.Abort()
				return
			}
			c.SetCookie(sessionCookie, session.ID, int(ttl.Seconds()), "/", "", false, true)
		}

		// Older sessions may predate the cart field.
		if session.Cart == nil {
			session.Cart = models.NewCart()
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// GetSession returns the session stored on the context. The session
// middleware guarantees it is present on every route registered behind it.
func GetSession(c *gin.Context) *models.Session {
	if v, exists := c.Get(SessionKey); exists {
		if session, ok := v.(*models.Session); ok {
			return session
		}
	}
	return nil
}

// DestroySession removes the session from the store and expires the cookie.
func DestroySession(c *gin.Context, sessions repository.SessionRepo) error {
	session := GetSession(c)
	if session == nil {
		return nil
	}
	if err := sessions.Delete(c.Request.Context(), session.ID); err != nil {
		return err
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	return nil
}
