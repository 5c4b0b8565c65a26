package dto

// CreateJobApplicationRequest carries the public application form for a
// job posting.
type CreateJobApplicationRequest struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	University   string `json:"university"`
	PortfolioURL string `json:"portfolioUrl"`
	CoverLetter  string `json:"coverLetter"`
}

// UpdateApplicationStatusRequest sets the review label on an
// application. Any status may replace any other.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

// ApplicationFilter holds the list parameters for a job's applications.
type ApplicationFilter struct {
	Status string
	Page   int
	Limit  int
}
