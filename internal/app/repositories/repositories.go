package repositories

import (
	"github.com/campusworks/placementcell/internal/db"
)

// Repositories groups all repository instances
type Repositories struct {
	AccountRepository     *AccountRepository
	StudentRepository     *StudentRepository
	JobRepository         *JobRepository
	ApplicationRepository *ApplicationRepository
	ContactRepository     *ContactRepository
}

// NewRepositories creates all repositories backed by the same database
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		AccountRepository:     NewAccountRepository(database),
		StudentRepository:     NewStudentRepository(database),
		JobRepository:         NewJobRepository(database),
		ApplicationRepository: NewApplicationRepository(database),
		ContactRepository:     NewContactRepository(database),
	}
}
