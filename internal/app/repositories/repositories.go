package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
)

// IStudentRepository defines student persistence operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// IMentorRepository defines mentor persistence operations
type IMentorRepository interface {
	Create(ctx context.Context, mentor *models.Mentor) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentor, error)
	GetByID(ctx context.Context, id int64) (*models.Mentor, error)
}

// IMaterialRepository defines uploaded-file metadata operations
type IMaterialRepository interface {
	Create(ctx context.Context, material *models.Material) (int64, error)
	ListWithMentor(ctx context.Context) ([]models.Material, error)
	FilenameExists(ctx context.Context, filename string) (bool, error)
}

// Repositories bundles all repository implementations
type Repositories struct {
	StudentRepository  *StudentRepository
	MentorRepository   *MentorRepository
	MaterialRepository *MaterialRepository
}

// NewRepositories creates the repository container over a shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:  NewStudentRepository(db),
		MentorRepository:   NewMentorRepository(db),
		MaterialRepository: NewMaterialRepository(db),
	}
}
