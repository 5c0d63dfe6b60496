package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/storefront-demo/internal/session/domain"
	"github.com/ridloal/storefront-demo/internal/session/service"
)

// SessionKey adalah key context gin tempat middleware menaruh session aktif.
const SessionKey = "activeSession"

// RequireSession memvalidasi bearer token dan memuat session yang dipersist.
// Token guest juga valid; endpoint cart terbuka untuk guest.
func RequireSession(ss service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			return
		}

		sessionID, err := service.ParseSessionToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		session, err := ss.Current(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
			return
		}
		// Token harus menunjuk session yang masih aktif di device ini.
		if session.ID != sessionID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session is no longer active"})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// ActiveSession mengambil session yang sudah diset middleware.
func ActiveSession(c *gin.Context) *domain.UserSession {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	session, ok := value.(*domain.UserSession)
	if !ok {
		return nil
	}
	return session
}
