package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/pkg/logger"
)

// MaterialRepository handles uploaded-file metadata operations
type MaterialRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(db *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a metadata row for a stored file and returns its id
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) (int64, error) {
	sql, args, err := r.sb.Insert("uploaded_files").
		Columns("mentor_id", "filename", "description", "upload_date").
		Values(material.MentorID, material.Filename, material.Description, material.UploadDate).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create material SQL")
		return 0, fmt.Errorf("failed to build create material query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("mentorID", material.MentorID).Str("filename", material.Filename).Msg("Error creating material record")
		return 0, fmt.Errorf("error creating material record: %w", err)
	}

	logger.Info().Int64("mentorID", material.MentorID).Str("filename", material.Filename).Msg("Material record created")
	return id, nil
}

// ListWithMentor returns every uploaded file joined with the uploading
// mentor's username, newest upload first. Ties within the same minute fall
// back to insertion order, newest first.
func (r *MaterialRepository) ListWithMentor(ctx context.Context) ([]models.Material, error) {
	sql, args, err := r.sb.Select("f.id", "f.mentor_id", "f.filename", "f.description", "f.upload_date", "m.username").
		From("uploaded_files f").
		Join("mentors m ON f.mentor_id = m.id").
		OrderBy("f.upload_date DESC", "f.id DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list materials SQL")
		return nil, fmt.Errorf("failed to build list materials query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing materials: %w", err)
	}
	defer rows.Close()

	var materials []models.Material
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.MentorID, &m.Filename, &m.Description, &m.UploadDate, &m.MentorName); err != nil {
			return nil, fmt.Errorf("error scanning material row: %w", err)
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating material rows: %w", err)
	}

	return materials, nil
}

// FilenameExists checks whether a metadata row already claims the filename
func (r *MaterialRepository) FilenameExists(ctx context.Context, filename string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("uploaded_files").
		Where(squirrel.Eq{"filename": filename}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building filename exists SQL")
		return false, fmt.Errorf("failed to build filename exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking filename existence: %w", err)
	}

	return exists, nil
}
