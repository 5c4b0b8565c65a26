package services

import (
	"github.com/ets-hub/etshub-backend/internal/app/repositories"
	"github.com/ets-hub/etshub-backend/internal/pkg/auth"
	"github.com/ets-hub/etshub-backend/internal/pkg/formrelay"
)

// Services bundles every service for dependency wiring.
type Services struct {
	AuthService         *AuthService
	EventService        *EventService
	JobService          *JobService
	ApplicationService  *ApplicationService
	VolunteerService    *VolunteerService
	RegistrationService *RegistrationService
}

// NewServices creates all services on top of the shared repositories.
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, relay *formrelay.Relay) *Services {
	return &Services{
		AuthService:         NewAuthService(repos.AdminUserRepository, jwtService),
		EventService:        NewEventService(repos.EventRepository),
		JobService:          NewJobService(repos.JobRepository),
		ApplicationService:  NewApplicationService(repos.ApplicationRepository, repos.JobRepository),
		VolunteerService:    NewVolunteerService(repos.VolunteerRepository),
		RegistrationService: NewRegistrationService(repos.CommunityMemberRepository, repos.VolunteerApplicationRepository, relay),
	}
}
