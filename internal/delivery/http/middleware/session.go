package middleware

import (
	"context"
	"net/http"

	"go-internship-backend/internal/domain"
	"go-internship-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session"

// SessionParser resolves a session cookie value to its claims.
type SessionParser interface {
	Parse(token string) (*security.SessionClaims, error)
}

// LoadSession attaches the caller's identity to the context when the session
// cookie is valid. It never rejects a request; guards do that.
func LoadSession(sessions SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		claims, err := sessions.Parse(token)
		if err != nil {
			security.DefaultLogger().LogSessionRejected(c.Request.Context(), c.ClientIP(), c.GetString(string(domain.KeyRequestID)), err.Error())
			c.Next()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			security.DefaultLogger().LogSessionRejected(c.Request.Context(), c.ClientIP(), c.GetString(string(domain.KeyRequestID)), "bad subject")
			c.Next()
			return
		}

		c.Set(string(domain.KeySession), &domain.Session{UserID: userID, Email: claims.Email})
		c.Next()
	}
}

// CurrentSession returns the session loaded for this request, or nil.
func CurrentSession(c *gin.Context) *domain.Session {
	v, ok := c.Get(string(domain.KeySession))
	if !ok {
		return nil
	}
	s, _ := v.(*domain.Session)
	return s
}

// RequireSession sends anonymous visitors back to the landing page.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ProfileChecker reports whether a user has filled in a candidate profile.
type ProfileChecker interface {
	HasProfile(ctx context.Context, userID int64) (bool, error)
}

// RequireCandidate sends users without a profile to the profile form.
// It must run after RequireSession.
func RequireCandidate(profiles ProfileChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)
		if session == nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		ok, err := profiles.HasProfile(c.Request.Context(), session.UserID)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		if !ok {
			c.Redirect(http.StatusFound, "/profile")
			c.Abort()
			return
		}
		c.Next()
	}
}
