package services

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/pkg/apperrors"
)

// In-memory repository fakes. They enforce the same uniqueness rules the
// real tables do so the services can be tested without a database.

type fakeStudentRepo struct {
	students []*models.Student
	nextID   int64
	failNext error
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) (int64, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return 0, err
	}
	for _, existing := range f.students {
		if existing.Username == student.Username || existing.Email == student.Email {
			return 0, apperrors.ErrDuplicateAccount
		}
	}
	f.nextID++
	clone := *student
	clone.ID = f.nextID
	f.students = append(f.students, &clone)
	return clone.ID, nil
}

func (f *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

type fakeMentorRepo struct {
	mentors []*models.Mentor
	nextID  int64
}

func (f *fakeMentorRepo) Create(_ context.Context, mentor *models.Mentor) (int64, error) {
	for _, existing := range f.mentors {
		if existing.Username == mentor.Username || existing.Email == mentor.Email {
			return 0, apperrors.ErrDuplicateAccount
		}
	}
	f.nextID++
	clone := *mentor
	clone.ID = f.nextID
	f.mentors = append(f.mentors, &clone)
	return clone.ID, nil
}

func (f *fakeMentorRepo) GetByEmail(_ context.Context, email string) (*models.Mentor, error) {
	for _, m := range f.mentors {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeMentorRepo) GetByID(_ context.Context, id int64) (*models.Mentor, error) {
	for _, m := range f.mentors {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

type fakeMaterialRepo struct {
	materials []models.Material
	nextID    int64
	failNext  error
}

func (f *fakeMaterialRepo) Create(_ context.Context, material *models.Material) (int64, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return 0, err
	}
	f.nextID++
	clone := *material
	clone.ID = f.nextID
	f.materials = append(f.materials, clone)
	return clone.ID, nil
}

func (f *fakeMaterialRepo) ListWithMentor(_ context.Context) ([]models.Material, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return nil, err
	}
	out := make([]models.Material, len(f.materials))
	copy(out, f.materials)
	return out, nil
}

func (f *fakeMaterialRepo) FilenameExists(_ context.Context, filename string) (bool, error) {
	for _, m := range f.materials {
		if m.Filename == filename {
			return true, nil
		}
	}
	return false, nil
}

// fakeStore mirrors the filestorage.Store contract in memory.
type fakeStore struct {
	files map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{files: map[string][]byte{}}
}

func (f *fakeStore) Save(name string, src io.Reader) (int64, error) {
	if _, ok := f.files[name]; ok {
		return 0, fs.ErrExist
	}
	content, err := io.ReadAll(src)
	if err != nil {
		return 0, err
	}
	f.files[name] = content
	return int64(len(content)), nil
}

func (f *fakeStore) Path(name string) (string, error) {
	if _, ok := f.files[name]; !ok {
		return "", os.ErrNotExist
	}
	return filepath.Join("/store", name), nil
}

func (f *fakeStore) Exists(name string) (bool, error) {
	_, ok := f.files[name]
	return ok, nil
}

func (f *fakeStore) Remove(name string) error {
	delete(f.files, name)
	return nil
}

var errDatabaseDown = errors.New("database unavailable")
