package dto

// CreateVolunteerRequest carries the volunteer profile form.
type CreateVolunteerRequest struct {
	Name              string   `json:"name"`
	Role              string   `json:"role"`
	Specialty         string   `json:"specialty"`
	Bio               string   `json:"bio"`
	ImageURL          string   `json:"imageUrl"`
	LinkedinURL       string   `json:"linkedinUrl"`
	TwitterURL        string   `json:"twitterUrl"`
	GithubURL         string   `json:"githubUrl"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	PassionateAbout   []string `json:"passionateAbout"`
	CoreStrengths     []string `json:"coreStrengths"`
}

// UpdateVolunteerRequest carries a partial volunteer update. Renaming a
// volunteer re-derives the slug; the old slug is not redirected.
type UpdateVolunteerRequest struct {
	Name              *string   `json:"name"`
	Role              *string   `json:"role"`
	Specialty         *string   `json:"specialty"`
	Bio               *string   `json:"bio"`
	ImageURL          *string   `json:"imageUrl"`
	LinkedinURL       *string   `json:"linkedinUrl"`
	TwitterURL        *string   `json:"twitterUrl"`
	GithubURL         *string   `json:"githubUrl"`
	YearsOfExperience *int      `json:"yearsOfExperience"`
	PassionateAbout   *[]string `json:"passionateAbout"`
	CoreStrengths     *[]string `json:"coreStrengths"`
}

// VolunteerFilter holds the list parameters for volunteers.
type VolunteerFilter struct {
	Search string
	Role   string
	Page   int
	Limit  int
}

// AppreciationResponse returns the counter after an appreciate call.
type AppreciationResponse struct {
	AppreciationCount int64 `json:"appreciationCount" example:"12"`
}
