package application

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-go/internal/ai"
	"github.com/jobdesk/jobdesk-go/internal/domain/job"
	"github.com/jobdesk/jobdesk-go/internal/repository"
	"github.com/jobdesk/jobdesk-go/internal/storage"
	"github.com/jobdesk/jobdesk-go/pkg/types"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrForbidden         = errors.New("only the posting owner or an admin may modify it")
	ErrImageUpload       = errors.New("image upload failed")
	ErrInvalidExperience = errors.New("invalid experience filter")
	ErrTitleRequired     = errors.New("title is required")
)

type JobService struct {
	Repos     *repository.Repos
	Store     storage.Uploader
	Generator ai.Generator
}

func NewJobService(repos *repository.Repos, store storage.Uploader, gen ai.Generator) *JobService {
	return &JobService{Repos: repos, Store: store, Generator: gen}
}

// loadJobErr separates a missing row from a store failure. Only a genuine
// absence becomes ErrJobNotFound; anything else stays a store error.
func loadJobErr(id uuid.UUID, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrJobNotFound
	}
	return fmt.Errorf("load job %s: %w", id, err)
}

// PipelineResult is the outcome of a posting or edit pipeline run.
// GenerationErr is non-fatal: the job was persisted with whatever
// description the caller already held.
type PipelineResult struct {
	Job           *job.Job
	GenerationErr error
}

// CreateJob runs the posting pipeline: collect, image phase, optional
// description phase, persist. The image phase aborts the whole pipeline on
// failure; the description phase never blocks persistence.
func (s *JobService) CreateJob(ctx context.Context, actor *types.Claims, input job.CreateJobDTO, image *job.ImageFile) (PipelineResult, error) {
	if input.Title == "" {
		return PipelineResult{}, ErrTitleRequired
	}

	positions := 1
	if input.Positions != nil && *input.Positions > 0 {
		positions = *input.Positions
	}

	j := &job.Job{
		Title:       input.Title,
		Description: input.Description,
		Positions:   positions,
		Location:    input.Location,
		Experience:  input.Experience,
		Salary:      input.Salary,
		ImageURL:    input.ImageURL,
		CreatedBy:   actor.UserID,
	}

	if image != nil {
		url, key, err := s.Store.Upload(ctx, image.Data, image.Name, image.ContentType)
		if err != nil {
			return PipelineResult{}, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		j.ImageURL = url
		j.ImageKey = key
	}

	var genErr error
	if input.GenerateDescription {
		text, err := s.generateDescription(ctx, j)
		if err != nil {
			genErr = err
		} else {
			j.Description = text
		}
	}

	if err := s.Repos.Job.Create(j); err != nil {
		// The object was written before the row; reclaim it so storage
		// holds no image without an owning record.
		if j.ImageKey != "" {
			if rmErr := s.Store.Remove(ctx, j.ImageKey); rmErr != nil {
				log.Printf("Failed to remove orphaned object %s: %v", j.ImageKey, rmErr)
			}
		}
		return PipelineResult{}, err
	}

	return PipelineResult{Job: j, GenerationErr: genErr}, nil
}

// UpdateJob runs the edit pipeline against an existing posting. A new image
// replaces the stored URL; without one the existing image is untouched.
func (s *JobService) UpdateJob(ctx context.Context, actor *types.Claims, id uuid.UUID, input job.UpdateJobDTO, image *job.ImageFile) (PipelineResult, error) {
	existing, err := s.Repos.Job.GetByID(id)
	if err != nil {
		return PipelineResult{}, loadJobErr(id, err)
	}
	if !actor.IsAdmin && existing.CreatedBy != actor.UserID {
		return PipelineResult{}, ErrForbidden
	}

	fields := map[string]interface{}{}
	if input.Title != nil {
		if *input.Title == "" {
			return PipelineResult{}, ErrTitleRequired
		}
		fields["title"] = *input.Title
		existing.Title = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
		existing.Description = *input.Description
	}
	if input.Positions != nil && *input.Positions > 0 {
		fields["positions"] = *input.Positions
		existing.Positions = *input.Positions
	}
	if input.Location != nil {
		fields["location"] = *input.Location
		existing.Location = *input.Location
	}
	if input.Experience != nil {
		fields["experience"] = *input.Experience
		existing.Experience = *input.Experience
	}
	if input.Salary != nil {
		fields["salary"] = *input.Salary
		existing.Salary = *input.Salary
	}
	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
		existing.ImageURL = *input.ImageURL
	}

	oldKey := existing.ImageKey
	var newKey string
	if image != nil {
		url, key, err := s.Store.Upload(ctx, image.Data, image.Name, image.ContentType)
		if err != nil {
			return PipelineResult{}, fmt.Errorf("%w: %v", ErrImageUpload, err)
		}
		fields["image_url"] = url
		fields["image_key"] = key
		existing.ImageURL = url
		newKey = key
	}

	var genErr error
	if input.GenerateDescription {
		text, err := s.generateDescription(ctx, &existing)
		if err != nil {
			genErr = err
		} else {
			fields["description"] = text
		}
	}

	updated, err := s.Repos.Job.Update(id, fields)
	if err != nil {
		// The new object was written before the patch; reclaim it so the
		// store holds no image without an owning record.
		if newKey != "" {
			if rmErr := s.Store.Remove(ctx, newKey); rmErr != nil {
				log.Printf("Failed to remove orphaned object %s: %v", newKey, rmErr)
			}
		}
		return PipelineResult{}, err
	}

	// The patch superseded the previous image; its object is now unreferenced.
	if newKey != "" && oldKey != "" && oldKey != newKey {
		if rmErr := s.Store.Remove(ctx, oldKey); rmErr != nil {
			log.Printf("Failed to remove superseded object %s: %v", oldKey, rmErr)
		}
	}

	return PipelineResult{Job: &updated, GenerationErr: genErr}, nil
}

func (s *JobService) GetJob(id uuid.UUID) (*job.Job, error) {
	j, err := s.Repos.Job.GetByID(id)
	if err != nil {
		return nil, loadJobErr(id, err)
	}
	return &j, nil
}

// ListJobs validates the experience bucket and returns the filtered listing,
// newest first.
func (s *JobService) ListJobs(f job.Filter) ([]job.Job, error) {
	if !job.ValidExperienceBucket(f.Experience) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidExperience, f.Experience)
	}
	return s.Repos.Job.List(f)
}

func (s *JobService) DeleteJob(actor *types.Claims, id uuid.UUID) error {
	existing, err := s.Repos.Job.GetByID(id)
	if err != nil {
		return loadJobErr(id, err)
	}
	if !actor.IsAdmin && existing.CreatedBy != actor.UserID {
		return ErrForbidden
	}
	return s.Repos.Job.Delete(id)
}

// GenerateDescription serves the standalone generation endpoint, decoupled
// from posting.
func (s *JobService) GenerateDescription(ctx context.Context, input job.GenerateDescriptionDTO) (string, error) {
	if input.Title == "" {
		return "", ErrTitleRequired
	}
	return s.Generator.GenerateJobDescription(ctx, ai.Metadata{
		Title:      input.Title,
		Location:   input.Location,
		Experience: input.Experience,
		Salary:     input.Salary,
		Positions:  input.Positions,
		ImageURL:   input.ImageURL,
	})
}

func (s *JobService) generateDescription(ctx context.Context, j *job.Job) (string, error) {
	text, err := s.Generator.GenerateJobDescription(ctx, ai.Metadata{
		Title:      j.Title,
		Location:   j.Location,
		Experience: j.Experience,
		Salary:     j.Salary,
		Positions:  j.Positions,
		ImageURL:   j.ImageURL,
	})
	if err != nil {
		log.Printf("Description generation failed for %q: %v", j.Title, err)
		return "", err
	}
	return text, nil
}
