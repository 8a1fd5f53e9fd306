package services

import (
	"context"

	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/app/repositories"
)

// StudentService serves the admin student listing and the student dashboard.
type StudentService struct {
	studentRepo     repositories.IStudentRepository
	jobRepo         repositories.IJobRepository
	applicationRepo repositories.IApplicationRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo repositories.IStudentRepository,
	jobRepo repositories.IJobRepository,
	applicationRepo repositories.IApplicationRepository,
) *StudentService {
	return &StudentService{
		studentRepo:     studentRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// ListStudents retrieves every student profile with account detail
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.StudentProfile, error) {
	return s.studentRepo.ListAll(ctx)
}

// Dashboard builds the student landing view: own profile, all postings and
// the student's applications.
func (s *StudentService) Dashboard(ctx context.Context, accountID int64) (*dto.StudentDashboard, error) {
	profile, err := s.studentRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.ListByStudent(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	return &dto.StudentDashboard{
		Profile:      profile,
		Jobs:         jobs,
		Applications: toViews(applications),
	}, nil
}

// AdminDashboard builds the placement-cell overview counts.
func (s *StudentService) AdminDashboard(ctx context.Context) (*dto.AdminDashboard, error) {
	jobs, err := s.jobRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboard{
		JobPostings:  jobs,
		Students:     students,
		Applications: applications,
	}, nil
}
