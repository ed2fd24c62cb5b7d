// internal/handlers/social/social_handler.go
package social

import (
	"net/http"
	"strconv"

	"portfolio-service/internal/domain/portfolio"
	"portfolio-service/internal/middleware"
	"portfolio-service/internal/pkg/response"
	portfolioUsecase "portfolio-service/internal/service/portfolio"

	"github.com/gin-gonic/gin"
)

type SocialLinkHandler struct {
	portfolioService *portfolioUsecase.PortfolioService
}

func NewSocialLinkHandler(portfolioService *portfolioUsecase.PortfolioService) *SocialLinkHandler {
	return &SocialLinkHandler{portfolioService: portfolioService}
}

// ListSocialLinks returns the social links belonging to the given profile.
func (h *SocialLinkHandler) ListSocialLinks(c *gin.Context) {
	links, err := h.portfolioService.ListSocialLinks(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "failed to list social links")
		return
	}
	response.Success(c, http.StatusOK, "social links retrieved", links)
}

func (h *SocialLinkHandler) CreateSocialLink(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	var req portfolio.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	l, err := h.portfolioService.CreateSocialLink(c.Request.Context(), subject, &req)
	if err != nil {
		response.FromError(c, err, "failed to create social link")
		return
	}
	response.Success(c, http.StatusCreated, "social link created", l)
}

func (h *SocialLinkHandler) UpdateSocialLink(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid social link id", err)
		return
	}

	var req portfolio.SocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	l, err := h.portfolioService.UpdateSocialLink(c.Request.Context(), subject, id, &req)
	if err != nil {
		response.FromError(c, err, "failed to update social link")
		return
	}
	response.Success(c, http.StatusOK, "social link updated", l)
}

func (h *SocialLinkHandler) DeleteSocialLink(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid social link id", err)
		return
	}

	if err := h.portfolioService.DeleteSocialLink(c.Request.Context(), subject, id); err != nil {
		response.FromError(c, err, "failed to delete social link")
		return
	}
	response.Success(c, http.StatusOK, "social link deleted", nil)
}
