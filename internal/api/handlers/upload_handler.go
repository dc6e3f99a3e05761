package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk-go/internal/storage"
	"github.com/jobdesk/jobdesk-go/pkg/response"
)

type UploadHandler struct {
	store storage.Uploader
}

func NewUploadHandler(store storage.Uploader) *UploadHandler {
	return &UploadHandler{store: store}
}

// UploadImage handles POST /upload-image: multipart "file" in, public URL out.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "No file uploaded"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	url, _, err := h.store.Upload(c.Request.Context(), data, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"publicUrl": url})
}
