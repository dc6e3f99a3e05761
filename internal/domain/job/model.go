package job

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExperienceBucket values accepted by the listing filter.
const (
	ExperienceAll    = "all"
	ExperienceJunior = "0-2"
	ExperienceMid    = "2-5"
	ExperienceSenior = "5+"
)

// ValidExperienceBucket reports whether b is one of the closed filter set.
func ValidExperienceBucket(b string) bool {
	switch b {
	case "", ExperienceAll, ExperienceJunior, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}

// Job represents a published job posting. A row is visible in listings the
// moment it exists; there is no draft state.
type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Positions   int       `gorm:"default:1" json:"positions"`
	Location    string    `gorm:"size:200" json:"location"`
	Experience  string    `gorm:"size:100" json:"experience"`
	Salary      string    `gorm:"size:100" json:"salary"`
	ImageURL    string    `gorm:"size:512;column:image_url" json:"image_url"`
	ImageKey    string    `gorm:"size:512;column:image_key" json:"-"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;column:created_by" json:"created_by"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Positions <= 0 {
		j.Positions = 1
	}
	return nil
}

// Application is an applicant's submission against a job. The job_id is not
// backed by a foreign key; existence of the job is not enforced here.
// Applications are write-once: never updated or deleted by this service.
type Application struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID     uuid.UUID `gorm:"type:uuid;column:job_id;index" json:"job_id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	Email     string    `gorm:"size:200;not null" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Application) TableName() string {
	return "applications"
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ApplicationWithJob is the applicants-dashboard row: one application joined
// with the title of the job it was submitted against. Title is empty when
// the job has since been deleted.
type ApplicationWithJob struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	JobTitle  string    `json:"job_title"`
	CreatedAt time.Time `json:"created_at"`
}
