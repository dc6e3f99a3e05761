package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/jobdesk/jobdesk-go/internal/api/routes"
	"github.com/jobdesk/jobdesk-go/internal/application"
	"github.com/jobdesk/jobdesk-go/internal/storage"
)

func SetupRouter(services *application.Services, store storage.Uploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, services, store)
	return r
}
