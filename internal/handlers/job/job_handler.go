// internal/handlers/job/job_handler.go
package job

import (
	"net/http"
	"strconv"

	"portfolio-service/internal/domain/portfolio"
	"portfolio-service/internal/middleware"
	"portfolio-service/internal/pkg/response"
	portfolioUsecase "portfolio-service/internal/service/portfolio"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	portfolioService *portfolioUsecase.PortfolioService
}

func NewJobHandler(portfolioService *portfolioUsecase.PortfolioService) *JobHandler {
	return &JobHandler{portfolioService: portfolioService}
}

// ListJobs returns the jobs belonging to the given profile.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.portfolioService.ListJobs(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "failed to list jobs")
		return
	}
	response.Success(c, http.StatusOK, "jobs retrieved", jobs)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	var req portfolio.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	j, err := h.portfolioService.CreateJob(c.Request.Context(), subject, &req)
	if err != nil {
		response.FromError(c, err, "failed to create job")
		return
	}
	response.Success(c, http.StatusCreated, "job created", j)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid job id", err)
		return
	}

	var req portfolio.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	j, err := h.portfolioService.UpdateJob(c.Request.Context(), subject, id, &req)
	if err != nil {
		response.FromError(c, err, "failed to update job")
		return
	}
	response.Success(c, http.StatusOK, "job updated", j)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid job id", err)
		return
	}

	if err := h.portfolioService.DeleteJob(c.Request.Context(), subject, id); err != nil {
		response.FromError(c, err, "failed to delete job")
		return
	}
	response.Success(c, http.StatusOK, "job deleted", nil)
}
