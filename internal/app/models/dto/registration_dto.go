package dto

// RegisterCommunityMemberRequest carries the "join the community" form.
type RegisterCommunityMemberRequest struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Occupation string `json:"occupation"`
	Motivation string `json:"motivation"`
}

// RegisterVolunteerRequest carries the "volunteer with us" form.
type RegisterVolunteerRequest struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	AreaOfInterest string `json:"areaOfInterest"`
	Experience     string `json:"experience"`
	Motivation     string `json:"motivation"`
}

// RegistrationFilter holds the list parameters for registrations.
type RegistrationFilter struct {
	Page  int
	Limit int
}
