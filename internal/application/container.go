package application

import (
	"github.com/jobdesk/jobdesk-go/internal/ai"
	"github.com/jobdesk/jobdesk-go/internal/repository"
	"github.com/jobdesk/jobdesk-go/internal/storage"
)

type Services struct {
	Job         *JobService
	Application *ApplicationService
	User        *UserService
}

func New(repos *repository.Repos, store storage.Uploader, gen ai.Generator) *Services {
	return &Services{
		Job:         NewJobService(repos, store, gen),
		Application: NewApplicationService(repos),
		User:        NewUserService(repos),
	}
}
