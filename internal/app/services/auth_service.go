package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/app/models/dto"
	"github.com/2403A51L17/SESD-Project/internal/app/repositories"
	"github.com/2403A51L17/SESD-Project/internal/pkg/apperrors"
	"github.com/2403A51L17/SESD-Project/internal/pkg/auth"
	"github.com/2403A51L17/SESD-Project/internal/pkg/validation"
)

// AuthService handles registration and credential checking
type AuthService interface {
	// Register creates an account in the table matching the request role
	Register(ctx context.Context, req *dto.RegisterRequest) error

	// Login verifies credentials and returns a signed session token plus
	// the established identity
	Login(ctx context.Context, req *dto.LoginRequest) (string, *dto.SessionResponse, error)
}

type authService struct {
	studentRepo repositories.IStudentRepository
	mentorRepo  repositories.IMentorRepository
	sessions    *auth.SessionService
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	mentorRepo repositories.IMentorRepository,
	sessions *auth.SessionService,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		studentRepo: studentRepo,
		mentorRepo:  mentorRepo,
		sessions:    sessions,
		logger:      logger,
	}
}

// validateRegistration enforces the minimal field checks that registration
// relies on; everything else is left to the form.
func (s *authService) validateRegistration(req *dto.RegisterRequest) error {
	if !req.Role.Valid() {
		return apperrors.ErrInvalidRole
	}
	if !validation.ValidUsername(req.Username) {
		return fmt.Errorf("%w: username cannot be empty", apperrors.ErrInvalidCredentials)
	}
	if !validation.ValidEmail(req.Email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrInvalidCredentials)
	}
	if !validation.ValidPassword(req.Password) {
		return fmt.Errorf("%w: password must be at least %d characters", apperrors.ErrInvalidCredentials, validation.PasswordMinLength)
	}
	return nil
}

// Register hashes the password and inserts a row into the table matching
// the requested role. Duplicate username or email surfaces as
// apperrors.ErrDuplicateAccount.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	if err := s.validateRegistration(req); err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	switch req.Role {
	case models.RoleStudent:
		_, err = s.studentRepo.Create(ctx, &models.Student{
			Username:     req.Username,
			PasswordHash: passwordHash,
			Email:        req.Email,
			Branch:       req.Branch,
			Year:         req.Year,
			Semester:     req.Semester,
		})
	case models.RoleMentor:
		_, err = s.mentorRepo.Create(ctx, &models.Mentor{
			Username:     req.Username,
			PasswordHash: passwordHash,
			Email:        req.Email,
			Branch:       req.Branch,
			Year:         req.Year,
			Subject:      req.Subject,
		})
	}

	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateAccount) {
			return err
		}
		s.logger.Error().Err(err).Str("role", string(req.Role)).Str("email", req.Email).Msg("Registration insert failed")
		return err
	}

	s.logger.Info().Str("role", string(req.Role)).Str("username", req.Username).Msg("Account registered")
	return nil
}

// Login looks up the account in the table matching the role, verifies the
// password hash, and issues a session token. Missing account and wrong
// password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (string, *dto.SessionResponse, error) {
	if !req.Role.Valid() {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	var (
		id           int64
		username     string
		passwordHash string
	)

	switch req.Role {
	case models.RoleStudent:
		student, err := s.studentRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return "", nil, s.loginFailure(err, req.Email)
		}
		id, username, passwordHash = student.ID, student.Username, student.PasswordHash
	case models.RoleMentor:
		mentor, err := s.mentorRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return "", nil, s.loginFailure(err, req.Email)
		}
		id, username, passwordHash = mentor.ID, mentor.Username, mentor.PasswordHash
	}

	if !auth.CheckPassword(passwordHash, req.Password) {
		s.logger.Warn().Str("email", req.Email).Str("role", string(req.Role)).Msg("Password mismatch")
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(id, username, req.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue session: %w", err)
	}

	identity := &dto.SessionResponse{UserID: id, Username: username, Role: req.Role}
	s.logger.Info().Str("username", username).Str("role", string(req.Role)).Msg("Login successful")
	return token, identity, nil
}

func (s *authService) loginFailure(err error, email string) error {
	if errors.Is(err, apperrors.ErrAccountNotFound) {
		s.logger.Warn().Str("email", email).Msg("Login attempt for unknown account")
		return apperrors.ErrInvalidCredentials
	}
	s.logger.Error().Err(err).Str("email", email).Msg("Login lookup failed")
	return err
}
