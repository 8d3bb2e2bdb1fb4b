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

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student and returns the generated id.
// A username or email collision surfaces as apperrors.ErrDuplicateAccount.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (username, password_hash, email, branch, year, semester)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		student.Username, student.PasswordHash, student.Email,
		student.Branch, student.Year, student.Semester).Scan(&id)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			logger.Warn().Str("username", student.Username).Msg("Duplicate student registration attempt")
			return 0, apperrors.ErrDuplicateAccount
		}
		logger.Error().Err(err).Str("username", student.Username).Msg("Error creating student")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, email, branch, year, semester, course, interests, goals
		FROM students
		WHERE email = $1`,
		email).Scan(
		&student.ID, &student.Username, &student.PasswordHash, &student.Email,
		&student.Branch, &student.Year, &student.Semester,
		&student.Course, &student.Interests, &student.Goals)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByID retrieves a student by id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, email, branch, year, semester, course, interests, goals
		FROM students
		WHERE id = $1`,
		id).Scan(
		&student.ID, &student.Username, &student.PasswordHash, &student.Email,
		&student.Branch, &student.Year, &student.Semester,
		&student.Course, &student.Interests, &student.Goals)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}
