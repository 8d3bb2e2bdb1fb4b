package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/app/repositories"
	"github.com/2403A51L17/SESD-Project/internal/pkg/apperrors"
	"github.com/2403A51L17/SESD-Project/internal/pkg/filestorage"
)

// uploadDateFormat is the stored "YYYY-MM-DD HH:MM" timestamp layout
const uploadDateFormat = "2006-01-02 15:04"

// defaultDescription is used when the upload form omits a description
const defaultDescription = "No description"

// allowedExtensions is the upload whitelist, matched case-insensitively
// against the extension after the last dot.
var allowedExtensions = map[string]struct{}{
	"png": {}, "jpg": {}, "jpeg": {}, "gif": {},
	"pdf": {}, "ppt": {}, "pptx": {}, "doc": {}, "docx": {},
	"mp4": {}, "avi": {}, "mov": {},
	"mp3": {}, "wav": {}, "m4a": {},
}

// MaterialService handles uploaded study material
type MaterialService interface {
	// Upload validates, stores, and records a file uploaded by a mentor
	Upload(ctx context.Context, mentorID int64, filename string, src io.Reader, description string) (*models.Material, error)

	// Resolve maps a requested filename to the stored file's path
	Resolve(filename string) (string, error)
}

type materialService struct {
	materialRepo repositories.IMaterialRepository
	store        filestorage.Store
	logger       zerolog.Logger
}

// NewMaterialService creates a new MaterialService
func NewMaterialService(materialRepo repositories.IMaterialRepository, store filestorage.Store, logger zerolog.Logger) MaterialService {
	return &materialService{
		materialRepo: materialRepo,
		store:        store,
		logger:       logger,
	}
}

// Upload runs the full upload flow: extension whitelist on the submitted
// name, sanitization, refusal of names the metadata already claims,
// exclusive save into the store, then the metadata insert. If the insert
// fails the stored file is removed again so the two stores cannot drift
// apart.
func (s *materialService) Upload(ctx context.Context, mentorID int64, filename string, src io.Reader, description string) (*models.Material, error) {
	if filename == "" {
		return nil, apperrors.ErrNoFile
	}

	if _, ok := allowedExtensions[filestorage.Ext(filename)]; !ok {
		s.logger.Warn().Str("filename", filename).Msg("Rejected upload with disallowed extension")
		return nil, apperrors.ErrFileTypeNotAllowed
	}

	name := filestorage.Sanitize(filename)
	if name == "" {
		return nil, apperrors.ErrNoFile
	}

	// Check the metadata first; the exclusive create below still catches a
	// race between two uploads of the same name.
	taken, err := s.materialRepo.FilenameExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check filename: %w", err)
	}
	if taken {
		s.logger.Warn().Str("filename", name).Msg("Upload refused, filename already recorded")
		return nil, apperrors.ErrFileExists
	}

	if description == "" {
		description = defaultDescription
	}

	if _, err := s.store.Save(name, src); err != nil {
		if errors.Is(err, fs.ErrExist) || os.IsExist(err) {
			s.logger.Warn().Str("filename", name).Msg("Upload refused, filename already taken")
			return nil, apperrors.ErrFileExists
		}
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	material := &models.Material{
		MentorID:    mentorID,
		Filename:    name,
		Description: description,
		UploadDate:  time.Now().Format(uploadDateFormat),
	}

	id, err := s.materialRepo.Create(ctx, material)
	if err != nil {
		// Roll the stored file back so the name stays claimable
		if rmErr := s.store.Remove(name); rmErr != nil {
			s.logger.Error().Err(rmErr).Str("filename", name).Msg("Failed to remove file after metadata insert failure")
		}
		return nil, fmt.Errorf("failed to record upload: %w", err)
	}
	material.ID = id

	s.logger.Info().Int64("mentorID", mentorID).Str("filename", name).Msg("Material uploaded")
	return material, nil
}

// Resolve sanitizes the requested name and locates it in the store.
// Unknown names surface as apperrors.ErrFileNotFound.
func (s *materialService) Resolve(filename string) (string, error) {
	name := filestorage.Sanitize(filename)
	if name == "" {
		return "", apperrors.ErrFileNotFound
	}

	path, err := s.store.Path(name)
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.ErrFileNotFound
		}
		return "", fmt.Errorf("failed to resolve file: %w", err)
	}

	return path, nil
}
