// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"

	"portfolio-service/internal/middleware"
	xerrors "portfolio-service/internal/pkg/errors"
	"portfolio-service/internal/pkg/response"
	authUsecase "portfolio-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const (
	refreshTokenCookie = "refresh_token"
	stateCookie        = "oauth_state"
)

// CookieConfig carries the cookie lifetimes and transport flags.
type CookieConfig struct {
	Secure            bool
	AccessMaxAge      int
	RefreshMaxAge     int
	PostLoginRedirect string
}

type AuthHandler struct {
	authService *authUsecase.AuthService
	cookies     CookieConfig
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, cookies CookieConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
		logger:      logger,
	}
}

// Login redirects the browser to the provider's authorize endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	state := ulid.Make().String()

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/", "", h.cookies.Secure, true)

	c.Redirect(http.StatusFound, h.authService.LoginURL(state))
}

// Callback completes the authorization-code flow and establishes the
// cookie session. Profile provisioning failures are swallowed inside the
// service; only exchange failures surface here.
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.ValidationError(c, "missing authorization code", nil)
		return
	}

	expected, err := c.Cookie(stateCookie)
	if err != nil || expected == "" || c.Query("state") != expected {
		response.ValidationError(c, "state mismatch", nil)
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.cookies.Secure, true)

	tokens, err := h.authService.HandleCallback(c.Request.Context(), code)
	if err != nil {
		h.logger.Error("code exchange failed", zap.Error(err))
		response.FromError(c, err, "authentication failed")
		return
	}

	h.setAccessCookie(c, tokens.AccessToken)
	if tokens.RefreshToken != "" {
		h.setRefreshCookie(c, tokens.RefreshToken)
	}

	c.Redirect(http.StatusFound, h.cookies.PostLoginRedirect)
}

type setCookieRequest struct {
	Token string `json:"token" binding:"required"`
}

// SetCookie verifies a caller-supplied token and installs it as the
// session cookie.
func (h *AuthHandler) SetCookie(c *gin.Context) {
	var req setCookieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	if _, err := h.authService.ValidateToken(c.Request.Context(), req.Token); err != nil {
		response.FromError(c, err, "invalid token")
		return
	}

	h.setAccessCookie(c, req.Token)
	response.Success(c, http.StatusOK, "cookie set successfully", nil)
}

// Refresh rotates the access token using the refresh cookie. A missing
// refresh cookie clears the access cookie, since the session cannot be
// renewed; a provider rejection clears both cookies to force a fresh
// login. The refresh cookie is only replaced when the provider issued a
// new one.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		h.clearAccessCookie(c)
		response.Unauthorized(c, "missing refresh credential")
		return
	}

	tokens, err := h.authService.RefreshTokens(c.Request.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, xerrors.ErrUpstreamRejected) {
			h.clearAccessCookie(c)
			h.clearRefreshCookie(c)
			response.FromError(c, err, "refresh rejected")
			return
		}
		h.logger.Error("token refresh failed", zap.Error(err))
		response.FromError(c, err, "refresh failed")
		return
	}

	h.setAccessCookie(c, tokens.AccessToken)
	if tokens.RefreshToken != "" {
		h.setRefreshCookie(c, tokens.RefreshToken)
	}

	response.Success(c, http.StatusOK, "token refreshed", nil)
}

// Logout clears the session cookies.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearAccessCookie(c)
	h.clearRefreshCookie(c)
	response.Success(c, http.StatusOK, "logged out successfully", nil)
}

// Protected is an authenticated probe endpoint.
func (h *AuthHandler) Protected(c *gin.Context) {
	claims, _ := middleware.GetClaims(c)
	response.Success(c, http.StatusOK, "you are authenticated", claims)
}

// --- Cookie helpers ---

func (h *AuthHandler) setAccessCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, token, h.cookies.AccessMaxAge, "/", "", h.cookies.Secure, true)
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookie, token, h.cookies.RefreshMaxAge, "/", "", h.cookies.Secure, true)
}

func (h *AuthHandler) clearAccessCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.cookies.Secure, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", h.cookies.Secure, true)
}
