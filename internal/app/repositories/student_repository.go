package repositories

import (
	"context"
	"fmt"

	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/db"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
)

// IStudentRepository defines the interface for student profile operations
type IStudentRepository interface {
	CreateProfile(ctx context.Context, profile *models.StudentProfile) error
	GetByAccountID(ctx context.Context, accountID int64) (*models.StudentProfile, error)
	ListAll(ctx context.Context) ([]*models.StudentProfile, error)
	Count(ctx context.Context) (int64, error)
}

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db *db.PostgresDB
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
	}
}

// CreateProfile inserts a new student profile
func (r *StudentRepository) CreateProfile(ctx context.Context, profile *models.StudentProfile) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO student_profiles (account_id, roll_no, department, skills, resume_file)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		profile.AccountID, profile.RollNo, profile.Department, profile.Skills, profile.ResumeFile).Scan(&profile.ID)

	if err != nil {
		return fmt.Errorf("error creating student profile: %w", err)
	}

	return nil
}

// GetByAccountID retrieves a student profile by owning account ID
func (r *StudentRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, account_id, roll_no, department, skills, resume_file
		FROM student_profiles
		WHERE account_id = $1`,
		accountID).Scan(
		&profile.ID, &profile.AccountID, &profile.RollNo, &profile.Department,
		&profile.Skills, &profile.ResumeFile)

	if err != nil {
		return nil, apperrors.ErrStudentProfileNotFound
	}

	return profile, nil
}

// ListAll retrieves every student profile with its account attached, for the
// admin student listing.
func (r *StudentRepository) ListAll(ctx context.Context) ([]*models.StudentProfile, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT s.id, s.account_id, s.roll_no, s.department, s.skills, s.resume_file,
		       a.id, a.username, a.email, a.role, a.created_at
		FROM student_profiles s
		JOIN accounts a ON a.id = s.account_id
		ORDER BY s.id`)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.StudentProfile
	for rows.Next() {
		profile := &models.StudentProfile{Account: &models.Account{}}
		err := rows.Scan(
			&profile.ID, &profile.AccountID, &profile.RollNo, &profile.Department,
			&profile.Skills, &profile.ResumeFile,
			&profile.Account.ID, &profile.Account.Username, &profile.Account.Email,
			&profile.Account.Role, &profile.Account.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Count returns the number of student profiles
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM student_profiles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
