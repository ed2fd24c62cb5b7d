// internal/handlers/project/project_handler.go
package project

import (
	"net/http"
	"strconv"

	"portfolio-service/internal/domain/portfolio"
	"portfolio-service/internal/middleware"
	"portfolio-service/internal/pkg/response"
	portfolioUsecase "portfolio-service/internal/service/portfolio"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	portfolioService *portfolioUsecase.PortfolioService
}

func NewProjectHandler(portfolioService *portfolioUsecase.PortfolioService) *ProjectHandler {
	return &ProjectHandler{portfolioService: portfolioService}
}

// ListProjects returns the projects belonging to the given profile,
// ordered by sort order.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.portfolioService.ListProjects(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "failed to list projects")
		return
	}
	response.Success(c, http.StatusOK, "projects retrieved", projects)
}

// GetProject returns a single project by its own id.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid project id", err)
		return
	}

	p, err := h.portfolioService.GetProject(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "failed to load project")
		return
	}
	response.Success(c, http.StatusOK, "project retrieved", p)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	var req portfolio.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	p, err := h.portfolioService.CreateProject(c.Request.Context(), subject, &req)
	if err != nil {
		response.FromError(c, err, "failed to create project")
		return
	}
	response.Success(c, http.StatusCreated, "project created", p)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid project id", err)
		return
	}

	var req portfolio.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	p, err := h.portfolioService.UpdateProject(c.Request.Context(), subject, id, &req)
	if err != nil {
		response.FromError(c, err, "failed to update project")
		return
	}
	response.Success(c, http.StatusOK, "project updated", p)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid project id", err)
		return
	}

	if err := h.portfolioService.DeleteProject(c.Request.Context(), subject, id); err != nil {
		response.FromError(c, err, "failed to delete project")
		return
	}
	response.Success(c, http.StatusOK, "project deleted", nil)
}
