package handlers

import (
	"github.com/jobdesk/jobdesk-go/internal/application"
	"github.com/jobdesk/jobdesk-go/internal/storage"
)

type Handlers struct {
	Job         *JobHandler
	Application *ApplicationHandler
	Upload      *UploadHandler
	AI          *AIHandler
	User        *UserHandler
}

func New(svc *application.Services, store storage.Uploader) *Handlers {
	return &Handlers{
		Job:         NewJobHandler(svc.Job),
		Application: NewApplicationHandler(svc.Application),
		Upload:      NewUploadHandler(store),
		AI:          NewAIHandler(svc.Job),
		User:        NewUserHandler(svc.User),
	}
}
