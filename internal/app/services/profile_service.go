package services

import (
	"context"
	"fmt"

	"github.com/2403A51L17/SESD-Project/internal/app/models/dto"
	"github.com/2403A51L17/SESD-Project/internal/app/repositories"
)

// ProfileService assembles the role-specific dashboards
type ProfileService interface {
	// StudentDashboard returns the student's own record plus the shared
	// material listing, newest upload first
	StudentDashboard(ctx context.Context, studentID int64) (*dto.StudentDashboard, error)

	// MentorDashboard returns the mentor's own record
	MentorDashboard(ctx context.Context, mentorID int64) (*dto.MentorDashboard, error)
}

type profileService struct {
	studentRepo  repositories.IStudentRepository
	mentorRepo   repositories.IMentorRepository
	materialRepo repositories.IMaterialRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(
	studentRepo repositories.IStudentRepository,
	mentorRepo repositories.IMentorRepository,
	materialRepo repositories.IMaterialRepository,
) ProfileService {
	return &profileService{
		studentRepo:  studentRepo,
		mentorRepo:   mentorRepo,
		materialRepo: materialRepo,
	}
}

func (s *profileService) StudentDashboard(ctx context.Context, studentID int64) (*dto.StudentDashboard, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	materials, err := s.materialRepo.ListWithMentor(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	responses := make([]dto.MaterialResponse, 0, len(materials))
	for i := range materials {
		responses = append(responses, dto.NewMaterialResponse(&materials[i]))
	}

	return &dto.StudentDashboard{Student: student, Materials: responses}, nil
}

func (s *profileService) MentorDashboard(ctx context.Context, mentorID int64) (*dto.MentorDashboard, error) {
	mentor, err := s.mentorRepo.GetByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	return &dto.MentorDashboard{Mentor: mentor}, nil
}
