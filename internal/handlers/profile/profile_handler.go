// internal/handlers/profile/profile_handler.go
package profile

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"portfolio-service/internal/domain/portfolio"
	"portfolio-service/internal/middleware"
	"portfolio-service/internal/pkg/response"
	authUsecase "portfolio-service/internal/service/auth"
	portfolioUsecase "portfolio-service/internal/service/portfolio"
	"portfolio-service/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxAvatarSize = 5 << 20 // 5 MiB

var allowedAvatarExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type ProfileHandler struct {
	authService      *authUsecase.AuthService
	portfolioService *portfolioUsecase.PortfolioService
	store            storage.BlobStore
	logger           *zap.Logger
}

func NewProfileHandler(
	authService *authUsecase.AuthService,
	portfolioService *portfolioUsecase.PortfolioService,
	store storage.BlobStore,
	logger *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		authService:      authService,
		portfolioService: portfolioService,
		store:            store,
		logger:           logger,
	}
}

// GetMyProfile returns the caller's own profile, provisioning it from the
// token claims when it does not exist yet.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		response.Unauthorized(c, "missing authorization token")
		return
	}

	p, err := h.authService.EnsureProfile(c.Request.Context(), claims)
	if err != nil {
		response.FromError(c, err, "failed to load profile")
		return
	}

	// Reload with child collections attached.
	full, err := h.portfolioService.GetProfile(c.Request.Context(), p.ID)
	if err != nil {
		response.FromError(c, err, "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", full)
}

// GetProfile returns any profile by id. Public: portfolios are meant to
// be viewed without logging in.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	p, err := h.portfolioService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "failed to load profile")
		return
	}
	response.Success(c, http.StatusOK, "profile retrieved", p)
}

// CreateProfile creates the caller's profile. The profile id is always
// the authenticated subject, never taken from the request body.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	var req portfolio.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	var claimsEmail string
	if claims, ok := middleware.GetClaims(c); ok {
		claimsEmail = claims.Email
	}

	p, err := h.portfolioService.CreateProfile(c.Request.Context(), subject, claimsEmail, &req)
	if err != nil {
		response.FromError(c, err, "failed to create profile")
		return
	}

	response.Success(c, http.StatusCreated, "profile created", p)
}

// UpdateProfile replaces the mutable fields of the caller's profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	var req portfolio.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	p, err := h.portfolioService.UpdateProfile(c.Request.Context(), subject, c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err, "failed to update profile")
		return
	}

	response.Success(c, http.StatusOK, "profile updated", p)
}

// UploadAvatar stores an uploaded image and records its URL on the
// caller's profile.
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	subject := middleware.MustGetSubject(c)
	profileID := c.Param("id")

	if profileID != subject {
		response.Forbidden(c, "cannot modify another user's profile")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ValidationError(c, "missing file", err)
		return
	}

	if fileHeader.Size > maxAvatarSize {
		response.ValidationError(c, "file too large", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedAvatarExts[ext] {
		response.ValidationError(c, "unsupported file type", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read upload", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxAvatarSize+1))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read upload", err)
		return
	}
	if len(data) > maxAvatarSize {
		response.ValidationError(c, "file too large", nil)
		return
	}

	avatarURL, err := h.store.Put(profileID, fileHeader.Filename, data)
	if err != nil {
		h.logger.Error("avatar store failed",
			zap.String("profile_id", profileID),
			zap.Error(err),
		)
		response.Error(c, http.StatusInternalServerError, "failed to store avatar", err)
		return
	}

	if err := h.portfolioService.SetAvatar(c.Request.Context(), subject, profileID, avatarURL); err != nil {
		response.FromError(c, err, "failed to update avatar")
		return
	}

	response.Success(c, http.StatusOK, "avatar uploaded", portfolio.AvatarResponse{AvatarURL: avatarURL})
}
