package filestorage

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/2403A51L17/SESD-Project/internal/pkg/logger"
)

// Store is the file store used for uploaded material. Names are flat,
// pre-sanitized filenames; implementations report fs.ErrExist on name
// collisions and fs.ErrNotExist for unknown names.
type Store interface {
	// Save writes src under name and returns the number of bytes written.
	Save(name string, src io.Reader) (int64, error)

	// Path resolves name to a full filesystem path for serving.
	Path(name string) (string, error)

	// Exists reports whether a file with the given name is stored.
	Exists(name string) (bool, error)

	// Remove deletes a stored file.
	Remove(name string) error
}

// LocalStorage stores uploaded files in a local directory, addressed by
// their sanitized filename.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Save writes src under name. The file is created exclusively, so a
// concurrent upload of the same name cannot overwrite an existing file;
// collisions surface as fs.ErrExist.
func (ls *LocalStorage) Save(name string, src io.Reader) (int64, error) {
	dstPath := filepath.Join(ls.basePath, name)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return 0, fmt.Errorf("file %s: %w", name, fs.ErrExist)
		}
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file content")
		// Drop the partial file so the name stays available
		_ = os.Remove(dstPath)
		return 0, fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", name).Int64("bytes", written).Msg("File saved")
	return written, nil
}

// Path resolves a stored filename to its full filesystem path
func (ls *LocalStorage) Path(name string) (string, error) {
	fullPath := filepath.Join(ls.basePath, name)
	if _, err := os.Stat(fullPath); err != nil {
		return "", err
	}
	return fullPath, nil
}

// Exists reports whether name is already taken in the store
func (ls *LocalStorage) Exists(name string) (bool, error) {
	_, err := os.Stat(filepath.Join(ls.basePath, name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Remove deletes a stored file. Removing a missing file is not an error.
func (ls *LocalStorage) Remove(name string) error {
	err := os.Remove(filepath.Join(ls.basePath, name))
	if err != nil && !os.IsNotExist(err) {
		logger.Error().Err(err).Str("filename", name).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
