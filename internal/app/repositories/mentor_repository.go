package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/pkg/apperrors"
	"github.com/2403A51L17/SESD-Project/internal/pkg/dberrors"
	"github.com/2403A51L17/SESD-Project/internal/pkg/logger"
)

// MentorRepository handles mentor database operations
type MentorRepository struct {
	db *pgxpool.Pool
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{db: db}
}

// Create inserts a new mentor and returns the generated id.
// A username or email collision surfaces as apperrors.ErrDuplicateAccount.
func (r *MentorRepository) Create(ctx context.Context, mentor *models.Mentor) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO mentors (username, password_hash, email, branch, year, subject)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		mentor.Username, mentor.PasswordHash, mentor.Email,
		mentor.Branch, mentor.Year, mentor.Subject).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().Str("username", mentor.Username).Msg("Duplicate mentor registration attempt")
			return 0, apperrors.ErrDuplicateAccount
		}
		logger.Error().Err(err).Str("username", mentor.Username).Msg("Error creating mentor")
		return 0, fmt.Errorf("error creating mentor: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves a mentor by email
func (r *MentorRepository) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	mentor := &models.Mentor{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, email, branch, year, subject, expertise, availability
		FROM mentors
		WHERE email = $1`,
		email).Scan(
		&mentor.ID, &mentor.Username, &mentor.PasswordHash, &mentor.Email,
		&mentor.Branch, &mentor.Year, &mentor.Subject,
		&mentor.Expertise, &mentor.Availability)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}

	return mentor, nil
}

// GetByID retrieves a mentor by id
func (r *MentorRepository) GetByID(ctx context.Context, id int64) (*models.Mentor, error) {
	mentor := &models.Mentor{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, email, branch, year, subject, expertise, availability
		FROM mentors
		WHERE id = $1`,
		id).Scan(
		&mentor.ID, &mentor.Username, &mentor.PasswordHash, &mentor.Email,
		&mentor.Branch, &mentor.Year, &mentor.Subject,
		&mentor.Expertise, &mentor.Availability)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}

	return mentor, nil
}
