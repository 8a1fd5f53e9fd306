package repositories

import (
	"context"
	"fmt"

	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/db"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
	"github.com/campusworks/placementcell/internal/pkg/dberrors"
)

// IApplicationRepository defines the interface for application operations
type IApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	ExistsForStudentAndJob(ctx context.Context, studentProfileID, jobPostingID int64) (bool, error)
	GetDetailByID(ctx context.Context, id int64) (*models.Application, error)
	ListByStudent(ctx context.Context, studentProfileID int64) ([]*models.Application, error)
	ListAll(ctx context.Context) ([]*models.Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Count(ctx context.Context) (int64, error)
}

const applicationDetailQuery = `
	SELECT ap.id, ap.student_profile_id, ap.job_posting_id, ap.status, ap.created_at,
	       s.id, s.account_id, s.roll_no, s.department, s.skills, s.resume_file,
	       a.id, a.username, a.email, a.role, a.created_at,
	       j.id, j.company_name, j.role, j.salary, j.eligibility, j.location, j.created_at
	FROM applications ap
	JOIN student_profiles s ON s.id = ap.student_profile_id
	JOIN accounts a ON a.id = s.account_id
	JOIN job_postings j ON j.id = ap.job_posting_id`

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *db.PostgresDB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(database *db.PostgresDB) *ApplicationRepository {
	return &ApplicationRepository{
		db: database,
	}
}

// Create inserts a new application with the default status. A concurrent
// duplicate that slips past the caller's pre-check lands on the unique pair
// constraint and is reported as ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	if application.Status == "" {
		application.Status = models.StatusApplied
	}

	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO applications (student_profile_id, job_posting_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		application.StudentProfileID, application.JobPostingID, application.Status).
		Scan(&application.ID, &application.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "applications_student_job_key") {
			return apperrors.ErrAlreadyApplied
		}
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// ExistsForStudentAndJob checks whether the (student, job) pair already has
// an application.
func (r *ApplicationRepository) ExistsForStudentAndJob(ctx context.Context, studentProfileID, jobPostingID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM applications WHERE student_profile_id = $1 AND job_posting_id = $2)`,
		studentProfileID, jobPostingID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking application: %w", err)
	}

	return exists, nil
}

func scanApplicationDetail(row interface {
	Scan(dest ...any) error
}) (*models.Application, error) {
	ap := &models.Application{
		Student: &models.StudentProfile{Account: &models.Account{}},
		Job:     &models.JobPosting{},
	}
	err := row.Scan(
		&ap.ID, &ap.StudentProfileID, &ap.JobPostingID, &ap.Status, &ap.CreatedAt,
		&ap.Student.ID, &ap.Student.AccountID, &ap.Student.RollNo, &ap.Student.Department,
		&ap.Student.Skills, &ap.Student.ResumeFile,
		&ap.Student.Account.ID, &ap.Student.Account.Username, &ap.Student.Account.Email,
		&ap.Student.Account.Role, &ap.Student.Account.CreatedAt,
		&ap.Job.ID, &ap.Job.CompanyName, &ap.Job.Role, &ap.Job.Salary,
		&ap.Job.Eligibility, &ap.Job.Location, &ap.Job.CreatedAt)
	if err != nil {
		return nil, err
	}
	return ap, nil
}

// GetDetailByID retrieves an application with its student, account and job
// attached, as needed to build a status notification.
func (r *ApplicationRepository) GetDetailByID(ctx context.Context, id int64) (*models.Application, error) {
	row := r.db.Pool.QueryRow(ctx, applicationDetailQuery+` WHERE ap.id = $1`, id)
	ap, err := scanApplicationDetail(row)
	if err != nil {
		return nil, apperrors.ErrApplicationNotFound
	}
	return ap, nil
}

// ListByStudent retrieves all applications of one student, joined with the
// postings they target.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentProfileID int64) ([]*models.Application, error) {
	rows, err := r.db.Pool.Query(ctx, applicationDetailQuery+` WHERE ap.student_profile_id = $1 ORDER BY ap.id`, studentProfileID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		ap, err := scanApplicationDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, ap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return applications, nil
}

// ListAll retrieves every application with student and job detail attached,
// for the admin tracking view.
func (r *ApplicationRepository) ListAll(ctx context.Context) ([]*models.Application, error) {
	rows, err := r.db.Pool.Query(ctx, applicationDetailQuery+` ORDER BY ap.id`)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.Application
	for rows.Next() {
		ap, err := scanApplicationDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		applications = append(applications, ap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return applications, nil
}

// UpdateStatus overwrites the status of one application. Only the latest
// value is kept; there is no transition history.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE applications SET status = $1 WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// Count returns the number of applications
func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}
