package dto

// CreateJobRequest carries the job posting form.
type CreateJobRequest struct {
	Title               string   `json:"title"`
	Company             string   `json:"company"`
	Location            string   `json:"location"`
	JobType             string   `json:"jobType"`
	Description         string   `json:"description"`
	CompanyLogo         string   `json:"companyLogo"`
	Duration            string   `json:"duration"`
	Responsibilities    []string `json:"responsibilities"`
	Requirements        []string `json:"requirements"`
	Benefits            []string `json:"benefits"`
	ApplicationDeadline string   `json:"applicationDeadline"` // YYYY-MM-DD, optional
}

// UpdateJobRequest carries a partial job update. PUT and PATCH share
// these semantics; the is_active toggle arrives through here too.
type UpdateJobRequest struct {
	Title               *string   `json:"title"`
	Company             *string   `json:"company"`
	Location            *string   `json:"location"`
	JobType             *string   `json:"jobType"`
	Description         *string   `json:"description"`
	CompanyLogo         *string   `json:"companyLogo"`
	Duration            *string   `json:"duration"`
	Responsibilities    *[]string `json:"responsibilities"`
	Requirements        *[]string `json:"requirements"`
	Benefits            *[]string `json:"benefits"`
	ApplicationDeadline *string   `json:"applicationDeadline"`
	IsActive            *bool     `json:"isActive"`
}

// JobFilter holds the list parameters for job postings.
type JobFilter struct {
	JobType  string
	Location string
	Search   string
	// IncludeInactive is honored only for authenticated callers; the
	// public listing always filters to active postings.
	IncludeInactive bool
	Page            int
	Limit           int
}
