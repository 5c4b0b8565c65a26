package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// Repositories bundles every repository for dependency wiring.
type Repositories struct {
	AdminUserRepository            *AdminUserRepository
	EventRepository                *EventRepository
	JobRepository                  *JobRepository
	ApplicationRepository          *ApplicationRepository
	VolunteerRepository            *VolunteerRepository
	CommunityMemberRepository      *CommunityMemberRepository
	VolunteerApplicationRepository *VolunteerApplicationRepository
}

// NewRepositories creates all repositories sharing one pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminUserRepository:            NewAdminUserRepository(db),
		EventRepository:                NewEventRepository(db),
		JobRepository:                  NewJobRepository(db),
		ApplicationRepository:          NewApplicationRepository(db),
		VolunteerRepository:            NewVolunteerRepository(db),
		CommunityMemberRepository:      NewCommunityMemberRepository(db),
		VolunteerApplicationRepository: NewVolunteerApplicationRepository(db),
	}
}
