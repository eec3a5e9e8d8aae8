package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jala-youth/jala-web/internal/response"
	"github.com/jala-youth/jala-web/internal/service"
)

const (
	// ContextKeyClaims is the Gin context key for session claims.
	ContextKeyClaims = "claims"
)

// RequireAdminSession validates the admin session cookie or, for non-browser
// clients, a Bearer header carrying the same token.
func RequireAdminSession(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := SessionClaims(c, authService)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrSessionRequired)
			return
		}
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// SessionClaims returns the validated claims of the request, or nil when it
// carries no valid session token.
func SessionClaims(c *gin.Context, authService *service.AuthService) *service.Claims {
	tokenStr := bearerToken(c.GetHeader("Authorization"))
	if tokenStr == "" {
		tokenStr, _ = c.Cookie(service.SessionCookie)
	}
	if tokenStr == "" {
		return nil
	}
	claims, err := authService.ValidateToken(tokenStr)
	if err != nil {
		return nil
	}
	return claims
}

// GetClaims retrieves the session claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
