package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/app/repositories"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
)

// JobService handles job posting operations
type JobService struct {
	jobRepo repositories.IJobRepository
	logger  zerolog.Logger
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repositories.IJobRepository, logger zerolog.Logger) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// PostJob creates a new job posting from the admin form
func (s *JobService) PostJob(ctx context.Context, req *dto.PostJobRequest) (*models.JobPosting, error) {
	req.CompanyName = strings.TrimSpace(req.CompanyName)
	req.Role = strings.TrimSpace(req.Role)

	if req.CompanyName == "" || req.Role == "" {
		return nil, fmt.Errorf("%w: company name and role are required", apperrors.ErrValidationFailed)
	}

	job := &models.JobPosting{
		CompanyName: req.CompanyName,
		Role:        req.Role,
		Salary:      strings.TrimSpace(req.Salary),
		Eligibility: strings.TrimSpace(req.Eligibility),
		Location:    strings.TrimSpace(req.Location),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("jobID", job.ID).
		Str("company", job.CompanyName).
		Str("role", job.Role).
		Msg("Job posted")

	return job, nil
}

// ListJobs retrieves all job postings
func (s *JobService) ListJobs(ctx context.Context) ([]*models.JobPosting, error) {
	return s.jobRepo.ListAll(ctx)
}
