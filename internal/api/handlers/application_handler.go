package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk-go/internal/application"
	"github.com/jobdesk/jobdesk-go/internal/domain/job"
	"github.com/jobdesk/jobdesk-go/pkg/response"
)

type ApplicationHandler struct {
	svc *application.ApplicationService
}

func NewApplicationHandler(svc *application.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

// Submit handles POST /applications. Public; no auth required.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var input job.CreateApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	a, err := h.svc.Submit(input)
	if err != nil {
		if errors.Is(err, application.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing fields"})
			return
		}
		if errors.Is(err, application.ErrInvalidJobID) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid job id"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": a})
}

// List handles GET /applications: every application joined with its job
// title, newest first.
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.svc.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
