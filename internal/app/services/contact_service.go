package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/app/repositories"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
)

// ContactService records public contact-form submissions.
type ContactService struct {
	contactRepo repositories.IContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repositories.IContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// Submit stores a contact message
func (s *ContactService) Submit(ctx context.Context, req *dto.ContactRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)

	if name == "" || email == "" || message == "" {
		return fmt.Errorf("%w: all fields are required", apperrors.ErrValidationFailed)
	}

	return s.contactRepo.Create(ctx, &models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	})
}
