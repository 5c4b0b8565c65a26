package models

import "time"

// Volunteer represents a team member profiled on the public site
type Volunteer struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Slug              string    `json:"slug" db:"slug"`
	Role              string    `json:"role" db:"role"`
	Specialty         string    `json:"specialty" db:"specialty"`
	Bio               string    `json:"bio" db:"bio"`
	ImageURL          string    `json:"imageUrl" db:"image_url"`
	LinkedinURL       string    `json:"linkedinUrl" db:"linkedin_url"`
	TwitterURL        string    `json:"twitterUrl" db:"twitter_url"`
	GithubURL         string    `json:"githubUrl" db:"github_url"`
	YearsOfExperience int       `json:"yearsOfExperience" db:"years_of_experience"`
	PassionateAbout   []string  `json:"passionateAbout" db:"passionate_about"`
	CoreStrengths     []string  `json:"coreStrengths" db:"core_strengths"`
	AppreciationCount int64     `json:"appreciationCount" db:"appreciation_count"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}
