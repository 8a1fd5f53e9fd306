package repositories

import (
	"context"
	"fmt"

	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/db"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
)

// IJobRepository defines the interface for job posting operations
type IJobRepository interface {
	Create(ctx context.Context, job *models.JobPosting) error
	GetByID(ctx context.Context, id int64) (*models.JobPosting, error)
	ListAll(ctx context.Context) ([]*models.JobPosting, error)
	Count(ctx context.Context) (int64, error)
}

// JobRepository handles job posting database operations
type JobRepository struct {
	db *db.PostgresDB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(database *db.PostgresDB) *JobRepository {
	return &JobRepository{
		db: database,
	}
}

// Create inserts a new job posting
func (r *JobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO job_postings (company_name, role, salary, eligibility, location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		job.CompanyName, job.Role, job.Salary, job.Eligibility, job.Location).Scan(&job.ID, &job.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating job posting: %w", err)
	}

	return nil
}

// GetByID retrieves a job posting by ID
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	job := &models.JobPosting{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, company_name, role, salary, eligibility, location, created_at
		FROM job_postings
		WHERE id = $1`,
		id).Scan(
		&job.ID, &job.CompanyName, &job.Role, &job.Salary,
		&job.Eligibility, &job.Location, &job.CreatedAt)

	if err != nil {
		return nil, apperrors.ErrJobPostingNotFound
	}

	return job, nil
}

// ListAll retrieves every job posting, newest first
func (r *JobRepository) ListAll(ctx context.Context) ([]*models.JobPosting, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id, company_name, role, salary, eligibility, location, created_at
		FROM job_postings
		ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("error listing job postings: %w", err)
	}
	defer rows.Close()

	var jobs []*models.JobPosting
	for rows.Next() {
		job := &models.JobPosting{}
		err := rows.Scan(
			&job.ID, &job.CompanyName, &job.Role, &job.Salary,
			&job.Eligibility, &job.Location, &job.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	return jobs, nil
}

// Count returns the number of job postings
func (r *JobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting job postings: %w", err)
	}
	return count, nil
}
