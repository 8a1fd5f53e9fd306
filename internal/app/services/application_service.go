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
	"github.com/campusworks/placementcell/internal/pkg/mailer"
)

// ApplicationService handles the application lifecycle: submission by
// students and status tracking by administrators.
type ApplicationService struct {
	applicationRepo repositories.IApplicationRepository
	studentRepo     repositories.IStudentRepository
	jobRepo         repositories.IJobRepository
	notifier        mailer.Mailer
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	studentRepo repositories.IStudentRepository,
	jobRepo repositories.IJobRepository,
	notifier mailer.Mailer,
	logger zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		studentRepo:     studentRepo,
		jobRepo:         jobRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Apply creates an application for the calling student unless one already
// exists for the (student, job) pair.
func (s *ApplicationService) Apply(ctx context.Context, accountID, jobPostingID int64) (*models.Application, error) {
	profile, err := s.studentRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if _, err := s.jobRepo.GetByID(ctx, jobPostingID); err != nil {
		return nil, err
	}

	exists, err := s.applicationRepo.ExistsForStudentAndJob(ctx, profile.ID, jobPostingID)
	if err != nil {
		return nil, fmt.Errorf("error checking application: %w", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	application := &models.Application{
		StudentProfileID: profile.ID,
		JobPostingID:     jobPostingID,
		Status:           models.StatusApplied,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("applicationID", application.ID).
		Int64("studentProfileID", profile.ID).
		Int64("jobPostingID", jobPostingID).
		Msg("Application submitted")

	return application, nil
}

// ListAll returns the joined tracking rows for every application
func (s *ApplicationService) ListAll(ctx context.Context) ([]*dto.ApplicationView, error) {
	applications, err := s.applicationRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toViews(applications), nil
}

// UpdateStatus is a two-step protocol: the status change is committed first,
// then one notification attempt is made. The returned result reports both
// outcomes; a failed send never rolls the status back.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID int64, status string) (*dto.StatusUpdateResult, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", apperrors.ErrValidationFailed)
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}

	result := &dto.StatusUpdateResult{
		ApplicationID: applicationID,
		Status:        status,
	}

	detail, err := s.applicationRepo.GetDetailByID(ctx, applicationID)
	if err != nil {
		// Status is committed; only the notification is lost.
		s.logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Failed to load application detail for notification")
		result.EmailError = "could not load application detail for notification"
		return result, nil
	}

	sendResult := s.notifier.SendStatusUpdate(ctx, mailer.StatusUpdate{
		RecipientEmail: detail.Student.Account.Email,
		RecipientName:  detail.Student.Account.Username,
		JobTitle:       detail.Job.Role,
		CompanyName:    detail.Job.CompanyName,
		NewStatus:      status,
	})

	result.EmailSent = sendResult.Sent
	result.EmailError = sendResult.Err

	if !sendResult.Sent {
		s.logger.Warn().
			Int64("applicationID", applicationID).
			Str("emailError", sendResult.Err).
			Msg("Status updated but notification failed")
	}

	return result, nil
}

// toViews maps joined application rows to their display form
func toViews(applications []*models.Application) []*dto.ApplicationView {
	views := make([]*dto.ApplicationView, 0, len(applications))
	for _, ap := range applications {
		view := &dto.ApplicationView{
			ID:     ap.ID,
			Status: ap.Status,
		}
		if ap.Student != nil {
			view.RollNo = ap.Student.RollNo
			if ap.Student.Account != nil {
				view.StudentName = ap.Student.Account.Username
				view.StudentEmail = ap.Student.Account.Email
			}
		}
		if ap.Job != nil {
			view.CompanyName = ap.Job.CompanyName
			view.JobRole = ap.Job.Role
		}
		views = append(views, view)
	}
	return views
}
