package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk-go/internal/api/handlers"
	"github.com/jobdesk/jobdesk-go/internal/api/middleware"
	"github.com/jobdesk/jobdesk-go/internal/application"
	"github.com/jobdesk/jobdesk-go/internal/storage"
)

// RegisterRoutes wires the public browse/apply surface and the JWT-guarded
// HR management surface.
func RegisterRoutes(r *gin.Engine, services *application.Services, store storage.Uploader) *handlers.Handlers {
	h := handlers.New(services, store)

	r.POST("/auth/register", h.User.Register)
	r.POST("/auth/login", h.User.Login)

	// Public: browse and apply.
	r.GET("/jobs", h.Job.ListJobs)
	r.GET("/jobs/:id", h.Job.GetJob)
	r.POST("/applications", h.Application.Submit)

	// HR management.
	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.POST("/jobs", h.Job.CreateJob)
		auth.PATCH("/jobs/:id", h.Job.UpdateJob)
		auth.DELETE("/jobs/:id", h.Job.DeleteJob)
		auth.GET("/applications", h.Application.List)
		auth.POST("/upload-image", h.Upload.UploadImage)
		auth.POST("/ai/job-description", h.AI.GenerateDescription)
	}

	return h
}
