package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusworks/placementcell/internal/app/models"
	"github.com/campusworks/placementcell/internal/app/models/dto"
	"github.com/campusworks/placementcell/internal/app/repositories"
	"github.com/campusworks/placementcell/internal/pkg/apperrors"
	"github.com/campusworks/placementcell/internal/pkg/auth"
	"github.com/campusworks/placementcell/internal/pkg/filestorage"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AuthService handles registration, login and account deletion.
type AuthService struct {
	accountRepo repositories.IAccountRepository
	studentRepo repositories.IStudentRepository
	resumeStore filestorage.ResumeStore
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	accountRepo repositories.IAccountRepository,
	studentRepo repositories.IStudentRepository,
	resumeStore filestorage.ResumeStore,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		studentRepo: studentRepo,
		resumeStore: resumeStore,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (s *AuthService) validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}
	return nil
}

// RegisterStudent creates a student Account and its StudentProfile, storing
// the optional resume first so a disallowed file type is rejected before any
// database write. On success the student is logged in immediately.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest, resume *multipart.FileHeader) (*dto.SessionResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.RollNo = strings.TrimSpace(req.RollNo)
	req.Department = strings.TrimSpace(req.Department)
	req.Skills = strings.TrimSpace(req.Skills)

	if req.Username == "" || req.Password == "" || req.RollNo == "" || req.Department == "" {
		return nil, fmt.Errorf("%w: please fill required fields", apperrors.ErrValidationFailed)
	}
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}

	// Resume type check happens before anything is persisted
	hasResume := resume != nil && resume.Filename != ""
	if hasResume && !filestorage.AllowedExtension(resume.Filename) {
		return nil, apperrors.ErrResumeTypeNotAllowed
	}

	exists, err := s.accountRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	exists, err = s.accountRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	var resumeFile *string
	if hasResume {
		stored, err := s.resumeStore.Save(resume, req.Username)
		if err != nil {
			return nil, err
		}
		resumeFile = &stored
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleStudent,
	}

	accountID, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		if resumeFile != nil {
			_ = s.resumeStore.Delete(*resumeFile)
		}
		return nil, err
	}
	account.ID = accountID

	profile := &models.StudentProfile{
		AccountID:  accountID,
		RollNo:     req.RollNo,
		Department: req.Department,
		Skills:     req.Skills,
		ResumeFile: resumeFile,
	}

	if err := s.studentRepo.CreateProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("student profile creation error: %w", err)
	}

	s.logger.Info().
		Str("username", account.Username).
		Int64("accountID", accountID).
		Msg("Student registered")

	return s.sessionResponse(account)
}

// RegisterAdmin creates an ADMIN Account and its placement-cell profile and
// logs the administrator in.
func (s *AuthService) RegisterAdmin(ctx context.Context, req *dto.RegisterAdminRequest) (*dto.SessionResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)

	if req.Username == "" || req.Password == "" || req.Department == "" {
		return nil, fmt.Errorf("%w: please fill required fields", apperrors.ErrValidationFailed)
	}
	if err := s.validateEmail(req.Email); err != nil {
		return nil, err
	}

	exists, err := s.accountRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}

	accountID, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	account.ID = accountID

	profile := &models.AdminProfile{
		AccountID:  accountID,
		Department: req.Department,
	}

	if err := s.accountRepo.CreateAdminProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("admin profile creation error: %w", err)
	}

	s.logger.Info().
		Str("username", account.Username).
		Int64("accountID", accountID).
		Msg("Placement-cell administrator registered")

	return s.sessionResponse(account)
}

// Login authenticates a principal against the role scope the request claims.
// Unknown email, wrong password and wrong role all collapse into the same
// generic invalid-credentials failure.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	req.Email = strings.TrimSpace(req.Email)

	role, err := roleFromString(req.Role)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	account, err := s.accountRepo.GetByEmailAndRole(ctx, req.Email, role)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(account.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.sessionResponse(account)
}

// DeleteStudentAccount removes the student's applications, profile and
// account in one transaction, then the resume file. A failed file removal is
// logged, not surfaced: the database state is already committed.
func (s *AuthService) DeleteStudentAccount(ctx context.Context, accountID int64) error {
	resumeFile, err := s.accountRepo.DeleteStudentAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if resumeFile != "" {
		if err := s.resumeStore.Delete(resumeFile); err != nil {
			s.logger.Warn().Err(err).Str("resumeFile", resumeFile).Msg("Failed to delete resume after account deletion")
		}
	}

	s.logger.Info().Int64("accountID", accountID).Msg("Student account deleted")
	return nil
}

func (s *AuthService) sessionResponse(account *models.Account) (*dto.SessionResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(account.ID, account.Username, string(account.Role))
	if err != nil {
		return nil, err
	}

	return &dto.SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: expiresIn,
		AccountID: account.ID,
		Username:  account.Username,
		Role:      string(account.Role),
	}, nil
}

func roleFromString(role string) (models.RoleType, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "student":
		return models.RoleStudent, nil
	case "admin":
		return models.RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: unrecognized role %q", apperrors.ErrValidationFailed, role)
	}
}
