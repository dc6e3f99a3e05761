package application

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-go/internal/domain/job"
	"github.com/jobdesk/jobdesk-go/internal/repository"
)

var (
	ErrMissingFields = errors.New("job_id, name, phone and email are required")
	ErrInvalidJobID  = errors.New("job_id is not a valid id")
)

type ApplicationService struct {
	Repos *repository.Repos
}

func NewApplicationService(repos *repository.Repos) *ApplicationService {
	return &ApplicationService{Repos: repos}
}

// Submit validates presence of the required fields and stores the
// application. The job id is not checked against the jobs table; the store
// accepts applications for ids it has never seen.
func (s *ApplicationService) Submit(input job.CreateApplicationDTO) (*job.Application, error) {
	if input.JobID == "" || input.Name == "" || input.Phone == "" || input.Email == "" {
		return nil, ErrMissingFields
	}

	jobID, err := uuid.Parse(input.JobID)
	if err != nil {
		return nil, ErrInvalidJobID
	}

	a := &job.Application{
		JobID: jobID,
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
	}
	if err := s.Repos.Application.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAll returns every application joined with its job title in one query.
func (s *ApplicationService) ListAll() ([]job.ApplicationWithJob, error) {
	return s.Repos.Application.ListWithJobTitle()
}
