package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/2403A51L17/SESD-Project/internal/pkg/auth"
)

// CreateDemoAccounts inserts one demo student and one demo mentor when the
// account tables are empty. Meant for development setups only.
func CreateDemoAccounts(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	var studentCount, mentorCount int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&studentCount); err != nil {
		return fmt.Errorf("failed to count students: %w", err)
	}
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM mentors`).Scan(&mentorCount); err != nil {
		return fmt.Errorf("failed to count mentors: %w", err)
	}

	if studentCount > 0 || mentorCount > 0 {
		lgr.Debug().Msg("Accounts already present, skipping demo seed")
		return nil
	}

	passwordHash, err := auth.HashPassword("demo1234")
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO students (username, password_hash, email, branch, year, semester)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		"demo_student", passwordHash, "student@demo.local", "CSE", "2", "4")
	if err != nil {
		return fmt.Errorf("failed to seed demo student: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO mentors (username, password_hash, email, branch, year, subject)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		"demo_mentor", passwordHash, "mentor@demo.local", "CSE", "3", "Databases")
	if err != nil {
		return fmt.Errorf("failed to seed demo mentor: %w", err)
	}

	lgr.Info().Msg("Demo accounts created (student@demo.local / mentor@demo.local, password demo1234)")
	return nil
}
