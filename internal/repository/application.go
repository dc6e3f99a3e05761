package repository

import (
	"github.com/jobdesk/jobdesk-go/internal/domain/job"
	"gorm.io/gorm"
)

type ApplicationRepo interface {
	Create(a *job.Application) error
	ListWithJobTitle() ([]job.ApplicationWithJob, error)
	WithTx(tx *gorm.DB) ApplicationRepo
}

type DBApplicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) *DBApplicationRepo {
	return &DBApplicationRepo{db: db}
}

func (r *DBApplicationRepo) Create(a *job.Application) error {
	return r.db.Create(a).Error
}

// ListWithJobTitle joins applications with job titles in a single query.
// LEFT JOIN keeps applications whose job has been deleted.
func (r *DBApplicationRepo) ListWithJobTitle() ([]job.ApplicationWithJob, error) {
	var results []job.ApplicationWithJob

	err := r.db.Table("applications a").
		Select(`
            a.id, a.job_id, a.name, a.phone, a.email, a.created_at,
            COALESCE(j.title, '') AS job_title
        `).
		Joins("LEFT JOIN jobs j ON j.id = a.job_id").
		Order("a.created_at desc").
		Scan(&results).Error

	return results, err
}

func (r *DBApplicationRepo) WithTx(tx *gorm.DB) ApplicationRepo {
	if tx == nil {
		return r
	}
	return &DBApplicationRepo{db: tx}
}
