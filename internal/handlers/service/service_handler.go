// internal/handlers/service/service_handler.go
package service

import (
	"net/http"
	"strconv"

	"portfolio-service/internal/domain/portfolio"
	"portfolio-service/internal/middleware"
	"portfolio-service/internal/pkg/response"
	portfolioUsecase "portfolio-service/internal/service/portfolio"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	portfolioService *portfolioUsecase.PortfolioService
}

func NewServiceHandler(portfolioService *portfolioUsecase.PortfolioService) *ServiceHandler {
	return &ServiceHandler{portfolioService: portfolioService}
}

// ListServices returns the services belonging to the given profile,
// ordered by sort order.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.portfolioService.ListServices(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err, "failed to list services")
		return
	}
	response.Success(c, http.StatusOK, "services retrieved", services)
}

// GetService returns a single service by its own id.
func (h *ServiceHandler) GetService(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("service_id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid service id", err)
		return
	}

	svc, err := h.portfolioService.GetService(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "failed to load service")
		return
	}
	response.Success(c, http.StatusOK, "service retrieved", svc)
}

func (h *ServiceHandler) CreateService(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	var req portfolio.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	svc, err := h.portfolioService.CreateService(c.Request.Context(), subject, &req)
	if err != nil {
		response.FromError(c, err, "failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, "service created", svc)
}

func (h *ServiceHandler) UpdateService(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid service id", err)
		return
	}

	var req portfolio.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	svc, err := h.portfolioService.UpdateService(c.Request.Context(), subject, id, &req)
	if err != nil {
		response.FromError(c, err, "failed to update service")
		return
	}
	response.Success(c, http.StatusOK, "service updated", svc)
}

func (h *ServiceHandler) DeleteService(c *gin.Context) {
	subject := middleware.MustGetSubject(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid service id", err)
		return
	}

	if err := h.portfolioService.DeleteService(c.Request.Context(), subject, id); err != nil {
		response.FromError(c, err, "failed to delete service")
		return
	}
	response.Success(c, http.StatusOK, "service deleted", nil)
}
