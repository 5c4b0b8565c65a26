package models

import "time"

// CommunityMember represents a community registration form submission.
// One row per email; duplicates are rejected at signup.
type CommunityMember struct {
	ID         int64     `json:"id" db:"id"`
	FullName   string    `json:"fullName" db:"full_name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	Occupation string    `json:"occupation" db:"occupation"`
	Motivation string    `json:"motivation" db:"motivation"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// VolunteerApplication represents a volunteer registration form
// submission. Unlike job applications it carries no review status.
type VolunteerApplication struct {
	ID             int64     `json:"id" db:"id"`
	FullName       string    `json:"fullName" db:"full_name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	AreaOfInterest string    `json:"areaOfInterest" db:"area_of_interest"`
	Experience     string    `json:"experience" db:"experience"`
	Motivation     string    `json:"motivation" db:"motivation"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
