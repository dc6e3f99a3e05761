package repository

import (
	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-go/internal/domain/job"
	"gorm.io/gorm"
)

type JobRepo interface {
	Create(j *job.Job) error
	GetByID(id uuid.UUID) (job.Job, error)
	List(f job.Filter) ([]job.Job, error)
	Update(id uuid.UUID, fields map[string]interface{}) (job.Job, error)
	Delete(id uuid.UUID) error
	WithTx(tx *gorm.DB) JobRepo
}

type DBJobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *DBJobRepo {
	return &DBJobRepo{db: db}
}

func (r *DBJobRepo) Create(j *job.Job) error {
	return r.db.Create(j).Error
}

func (r *DBJobRepo) GetByID(id uuid.UUID) (job.Job, error) {
	var j job.Job
	err := r.db.First(&j, "id = ?", id).Error
	return j, err
}

// List returns the full filtered collection, newest first. No pagination.
func (r *DBJobRepo) List(f job.Filter) ([]job.Job, error) {
	q := r.db.Model(&job.Job{})

	if f.Keyword != "" {
		kw := "%" + f.Keyword + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", kw, kw)
	}
	if f.Location != "" {
		q = q.Where("location ILIKE ?", "%"+f.Location+"%")
	}
	if f.Experience != "" && f.Experience != job.ExperienceAll {
		q = q.Where("experience LIKE ?", "%"+f.Experience+"%")
	}

	var jobs []job.Job
	err := q.Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

// Update patches only the supplied columns and returns the updated row.
func (r *DBJobRepo) Update(id uuid.UUID, fields map[string]interface{}) (job.Job, error) {
	if len(fields) > 0 {
		if err := r.db.Model(&job.Job{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return job.Job{}, err
		}
	}
	return r.GetByID(id)
}

func (r *DBJobRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&job.Job{}, "id = ?", id).Error
}

func (r *DBJobRepo) WithTx(tx *gorm.DB) JobRepo {
	if tx == nil {
		return r
	}
	return &DBJobRepo{db: tx}
}
