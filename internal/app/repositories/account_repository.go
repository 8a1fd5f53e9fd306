package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/db"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
	"github.com/campusworks/placementcell/internal/pkg/dberrors"
)

// IAccountRepository defines the interface for account-related database operations
type IAccountRepository interface {
	Create(ctx context.Context, account *models.Account) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByEmailAndRole(ctx context.Context, email string, role models.RoleType) (*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	CreateAdminProfile(ctx context.Context, profile *models.AdminProfile) error
	DeleteStudentAccount(ctx context.Context, accountID int64) (resumeFile string, err error)
}

// AccountRepository handles account database operations
type AccountRepository struct {
	db *db.PostgresDB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(database *db.PostgresDB) *AccountRepository {
	return &AccountRepository{
		db: database,
	}
}

// Create inserts a new account and returns its id. Duplicate email or
// username surfaces as a conflict error even when two identical requests
// race past the pre-check: the unique constraints decide.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) (int64, error) {
	var id int64
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO accounts (username, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		account.Username, account.Email, account.Password, account.Role).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "accounts_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "accounts_username_key") {
			return 0, apperrors.ErrUsernameAlreadyExists
		}
		return 0, fmt.Errorf("error creating account: %w", err)
	}

	return id, nil
}

// GetByID retrieves an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	account := &models.Account{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, username, email, password, role, created_at
		FROM accounts
		WHERE id = $1`,
		id).Scan(
		&account.ID, &account.Username, &account.Email, &account.Password,
		&account.Role, &account.CreatedAt)

	if err != nil {
		return nil, apperrors.ErrAccountNotFound
	}

	return account, nil
}

// GetByEmailAndRole retrieves an account by email, scoped to the claimed
// role. Login uses this so a student email submitted with role=admin misses.
func (r *AccountRepository) GetByEmailAndRole(ctx context.Context, email string, role models.RoleType) (*models.Account, error) {
	account := &models.Account{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, username, email, password, role, created_at
		FROM accounts
		WHERE email = $1 AND role = $2`,
		email, role).Scan(
		&account.ID, &account.Username, &account.Email, &account.Password,
		&account.Role, &account.CreatedAt)

	if err != nil {
		return nil, apperrors.ErrAccountNotFound
	}

	return account, nil
}

// EmailExists checks if an email already exists
func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UsernameExists checks if a username already exists
func (r *AccountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// CreateAdminProfile inserts the placement-cell profile for an ADMIN account
func (r *AccountRepository) CreateAdminProfile(ctx context.Context, profile *models.AdminProfile) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO admin_profiles (account_id, department)
		VALUES ($1, $2)
		RETURNING id`,
		profile.AccountID, profile.Department).Scan(&profile.ID)

	if err != nil {
		return fmt.Errorf("error creating admin profile: %w", err)
	}

	return nil
}

// DeleteStudentAccount removes a student's applications, profile and account
// in one transaction and returns the stored resume filename, if any, so the
// caller can remove the file after the commit. File deletion is deliberately
// outside the transaction.
func (r *AccountRepository) DeleteStudentAccount(ctx context.Context, accountID int64) (string, error) {
	var resumeFile string

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var profileID int64
		var stored *string
		err := tx.QueryRow(ctx, `
			SELECT id, resume_file FROM student_profiles WHERE account_id = $1`,
			accountID).Scan(&profileID, &stored)
		if err != nil {
			if err == pgx.ErrNoRows {
				return apperrors.ErrStudentProfileNotFound
			}
			return fmt.Errorf("error loading student profile: %w", err)
		}
		if stored != nil {
			resumeFile = *stored
		}

		if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE student_profile_id = $1`, profileID); err != nil {
			return fmt.Errorf("error deleting applications: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM student_profiles WHERE id = $1`, profileID); err != nil {
			return fmt.Errorf("error deleting student profile: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, accountID); err != nil {
			return fmt.Errorf("error deleting account: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return resumeFile, nil
}
