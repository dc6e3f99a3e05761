package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk-go/internal/application"
	"github.com/jobdesk/jobdesk-go/internal/domain/job"
	"github.com/jobdesk/jobdesk-go/pkg/response"
	"github.com/jobdesk/jobdesk-go/pkg/utils"
)

// genericGenerationFailure is what callers see when any description-phase
// failure occurs; the precise reason stays in the server log.
const genericGenerationFailure = "could not produce description"

type JobHandler struct {
	svc *application.JobService
}

func NewJobHandler(svc *application.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// imageFromForm pulls the optional "image" file out of a multipart request.
// A missing file is not an error.
func imageFromForm(c *gin.Context) (*job.ImageFile, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &job.ImageFile{
		Data:        data,
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
	}, nil
}

// ListJobs handles GET /jobs with keyword/location/experience filters.
func (h *JobHandler) ListJobs(c *gin.Context) {
	var filter job.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	jobs, err := h.svc.ListJobs(filter)
	if err != nil {
		if errors.Is(err, application.ErrInvalidExperience) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GetJob handles GET /jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid job id"})
		return
	}

	j, err := h.svc.GetJob(id)
	if err != nil {
		if errors.Is(err, application.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "failed to load job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}

// CreateJob handles POST /jobs. Accepts JSON, or multipart form data with
// an optional "image" file that runs through the upload phase.
func (h *JobHandler) CreateJob(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	var input job.CreateJobDTO
	var image *job.ImageFile

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		image, err = imageFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
	}

	result, err := h.svc.CreateJob(c.Request.Context(), claims, input, image)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrTitleRequired):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrImageUpload):
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "image upload failed"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	if result.GenerationErr != nil {
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"data":    result.Job,
			"warning": genericGenerationFailure,
		})
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Success: true, Data: result.Job})
}

// UpdateJob handles PATCH /jobs/:id with partial field semantics.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid job id"})
		return
	}

	var input job.UpdateJobDTO
	var image *job.ImageFile

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
		image, err = imageFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
			return
		}
	}

	result, err := h.svc.UpdateJob(c.Request.Context(), claims, id, input, image)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrJobNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "job not found"})
		case errors.Is(err, application.ErrForbidden):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrTitleRequired):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrImageUpload):
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "image upload failed"})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	if result.GenerationErr != nil {
		c.JSON(http.StatusOK, gin.H{"job": result.Job, "warning": genericGenerationFailure})
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": result.Job})
}

// DeleteJob handles DELETE /jobs/:id. Hard delete, no cascade.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid job id"})
		return
	}

	if err := h.svc.DeleteJob(claims, id); err != nil {
		switch {
		case errors.Is(err, application.ErrJobNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "job not found"})
		case errors.Is(err, application.ErrForbidden):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
