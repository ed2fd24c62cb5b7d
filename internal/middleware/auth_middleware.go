// internal/middleware/auth_middleware.go
package middleware

import (
	"strings"

	"portfolio-service/internal/pkg/oidc"
	"portfolio-service/internal/pkg/response"
	"portfolio-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the browser-session credential channel.
const AccessTokenCookie = "access_token"

type AuthMiddleware struct {
	authService *auth.AuthService
}

func NewAuthMiddleware(authService *auth.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Auth resolves the session credential and validates it. The cookie wins
// unconditionally over the Authorization header: the cookie is the
// trusted browser channel, the header only exists so API-docs tooling
// can authenticate.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			response.Unauthorized(c, "missing authorization token")
			return
		}

		claims, err := m.authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.FromError(c, err, "invalid or expired token")
			return
		}

		c.Set("subject", claims.Subject)
		c.Set("claims", claims)

		c.Next()
	}
}

// ExtractToken returns the request credential: session cookie first, then
// bearer header.
func ExtractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}

	return ""
}

// GetSubject gets the verified subject identifier from context.
func GetSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get("subject")
	if !exists {
		return "", false
	}

	s, ok := subject.(string)
	return s, ok
}

// MustGetSubject gets the subject from context or panics. Only for use
// behind Auth().
func MustGetSubject(c *gin.Context) string {
	subject, exists := GetSubject(c)
	if !exists {
		panic("subject not found in context")
	}
	return subject
}

// GetClaims gets the verified claims from context.
func GetClaims(c *gin.Context) (*oidc.Claims, bool) {
	claims, exists := c.Get("claims")
	if !exists {
		return nil, false
	}

	cl, ok := claims.(*oidc.Claims)
	return cl, ok
}
