package repositories

import (
	"context"
	"fmt"

	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/db"
)

// IContactRepository defines the interface for contact message operations
type IContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
}

// ContactRepository handles contact message database operations
type ContactRepository struct {
	db *db.PostgresDB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(database *db.PostgresDB) *ContactRepository {
	return &ContactRepository{
		db: database,
	}
}

// Create inserts a new contact message
func (r *ContactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO contact_messages (name, email, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		message.Name, message.Email, message.Message).Scan(&message.ID, &message.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating contact message: %w", err)
	}

	return nil
}
