package job

// ImageFile is an in-memory image payload attached to a posting or edit.
type ImageFile struct {
	Data        []byte
	Name        string
	ContentType string
}

type CreateJobDTO struct {
	Title               string `json:"title" form:"title" binding:"required"`
	Description         string `json:"description,omitempty" form:"description"`
	Positions           *int   `json:"positions,omitempty" form:"positions"`
	Location            string `json:"location,omitempty" form:"location"`
	Experience          string `json:"experience,omitempty" form:"experience"`
	Salary              string `json:"salary,omitempty" form:"salary"`
	ImageURL            string `json:"image_url,omitempty" form:"image_url"`
	GenerateDescription bool   `json:"generate_description,omitempty" form:"generate_description"`
}

type UpdateJobDTO struct {
	Title               *string `json:"title,omitempty" form:"title,omitempty"`
	Description         *string `json:"description,omitempty" form:"description,omitempty"`
	Positions           *int    `json:"positions,omitempty" form:"positions,omitempty"`
	Location            *string `json:"location,omitempty" form:"location,omitempty"`
	Experience          *string `json:"experience,omitempty" form:"experience,omitempty"`
	Salary              *string `json:"salary,omitempty" form:"salary,omitempty"`
	ImageURL            *string `json:"image_url,omitempty" form:"image_url,omitempty"`
	GenerateDescription bool    `json:"generate_description,omitempty" form:"generate_description,omitempty"`
}

type CreateApplicationDTO struct {
	JobID string `json:"job_id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// Filter narrows the job listing. Experience must be one of the closed
// bucket set; empty or "all" disables that filter.
type Filter struct {
	Keyword    string `form:"keyword"`
	Location   string `form:"location"`
	Experience string `form:"experience"`
}

type GenerateDescriptionDTO struct {
	Title      string `json:"title" binding:"required"`
	Location   string `json:"location,omitempty"`
	Experience string `json:"experience,omitempty"`
	Salary     string `json:"salary,omitempty"`
	Positions  int    `json:"positions,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
}
