package models

import "time"

// ApplicationStatus labels the review state of a job application.
// It is a free label, not a workflow: any status may replace any other.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether s is one of the supported statuses.
func ValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// JobApplication represents a submitted application for a job posting.
// JobID may point at a deleted job; applications are preserved when the
// posting is removed.
type JobApplication struct {
	ID           int64             `json:"id" db:"id"`
	JobID        int64             `json:"jobId" db:"job_id"`
	FullName     string            `json:"fullName" db:"full_name"`
	Email        string            `json:"email" db:"email"`
	Phone        string            `json:"phone" db:"phone"`
	Location     string            `json:"location" db:"location"`
	University   string            `json:"university" db:"university"`
	PortfolioURL string            `json:"portfolioUrl" db:"portfolio_url"`
	CoverLetter  string            `json:"coverLetter" db:"cover_letter"`
	Status       ApplicationStatus `json:"status" db:"status"`
	CreatedAt    time.Time         `json:"createdAt" db:"created_at"`
}
