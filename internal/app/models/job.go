package models

import "time"

// JobType defines the employment type of a job posting
type JobType string

const (
	JobTypeInternship JobType = "Internship"
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
)

// ValidJobType reports whether t is one of the supported job types.
func ValidJobType(t string) bool {
	switch JobType(t) {
	case JobTypeInternship, JobTypeFullTime, JobTypePartTime, JobTypeContract:
		return true
	}
	return false
}

// Job represents a job posting
type Job struct {
	ID                  int64      `json:"id" db:"id"`
	Title               string     `json:"title" db:"title"`
	Company             string     `json:"company" db:"company"`
	CompanyLogo         string     `json:"companyLogo" db:"company_logo"`
	Location            string     `json:"location" db:"location"`
	JobType             JobType    `json:"jobType" db:"job_type"`
	Duration            string     `json:"duration" db:"duration"`
	Description         string     `json:"description" db:"description"`
	Responsibilities    []string   `json:"responsibilities" db:"responsibilities"`
	Requirements        []string   `json:"requirements" db:"requirements"`
	Benefits            []string   `json:"benefits" db:"benefits"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty" db:"application_deadline"`
	IsActive            bool       `json:"isActive" db:"is_active"`
	Slug                string     `json:"slug" db:"slug"`
	CreatedAt           time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time  `json:"updatedAt" db:"updated_at"`

	// ApplicationsCount is populated by list queries for the admin
	// dashboard; it is not a stored column.
	ApplicationsCount int64 `json:"applicationsCount" db:"-"`
}
