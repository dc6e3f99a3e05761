package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk-go/internal/application"
	"github.com/jobdesk/jobdesk-go/internal/domain/job"
	"github.com/jobdesk/jobdesk-go/pkg/response"
)

type AIHandler struct {
	svc *application.JobService
}

func NewAIHandler(svc *application.JobService) *AIHandler {
	return &AIHandler{svc: svc}
}

// GenerateDescription handles POST /ai/job-description. Generation is a
// single attempt; every upstream failure surfaces as the same generic
// message with the detail kept server-side.
func (h *AIHandler) GenerateDescription(c *gin.Context) {
	var input job.GenerateDescriptionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	text, err := h.svc.GenerateDescription(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, application.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: genericGenerationFailure})
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": text})
}
