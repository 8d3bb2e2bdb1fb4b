package services

import (
	"context"
	"errors"
	"testing"

	"github.com/2403A51L17/SESD-Project/internal/app/models"
	"github.com/2403A51L17/SESD-Project/internal/pkg/apperrors"
)

func TestStudentDashboard(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	mentorRepo := &fakeMentorRepo{}
	materialRepo := &fakeMaterialRepo{
		materials: []models.Material{
			{ID: 2, MentorID: 1, Filename: "b.pdf", Description: "Newer", UploadDate: "2026-08-30 10:00", MentorName: "bob"},
			{ID: 1, MentorID: 1, Filename: "a.pdf", Description: "Older", UploadDate: "2026-08-29 09:00", MentorName: "bob"},
		},
	}
	id, err := studentRepo.Create(context.Background(), &models.Student{
		Username: "alice", Email: "alice@example.com", PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("seeding student: %v", err)
	}

	svc := NewProfileService(studentRepo, mentorRepo, materialRepo)
	dashboard, err := svc.StudentDashboard(context.Background(), id)
	if err != nil {
		t.Fatalf("StudentDashboard: %v", err)
	}

	if dashboard.Student.Username != "alice" {
		t.Errorf("Student.Username = %q", dashboard.Student.Username)
	}
	if len(dashboard.Materials) != 2 {
		t.Fatalf("Materials len = %d, want 2", len(dashboard.Materials))
	}
	// Repository order is preserved, newest first
	if dashboard.Materials[0].Filename != "b.pdf" || dashboard.Materials[1].Filename != "a.pdf" {
		t.Errorf("Materials order = %q, %q", dashboard.Materials[0].Filename, dashboard.Materials[1].Filename)
	}
	if dashboard.Materials[0].MentorName != "bob" {
		t.Errorf("MentorName = %q, want %q", dashboard.Materials[0].MentorName, "bob")
	}
}

func TestStudentDashboardUnknownStudent(t *testing.T) {
	svc := NewProfileService(&fakeStudentRepo{}, &fakeMentorRepo{}, &fakeMaterialRepo{})

	if _, err := svc.StudentDashboard(context.Background(), 99); !errors.Is(err, apperrors.ErrAccountNotFound) {
		t.Fatalf("StudentDashboard error = %v, want ErrAccountNotFound", err)
	}
}

func TestStudentDashboardListingFailure(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	id, _ := studentRepo.Create(context.Background(), &models.Student{Username: "alice", Email: "alice@example.com"})
	materialRepo := &fakeMaterialRepo{failNext: errDatabaseDown}

	svc := NewProfileService(studentRepo, &fakeMentorRepo{}, materialRepo)
	if _, err := svc.StudentDashboard(context.Background(), id); !errors.Is(err, errDatabaseDown) {
		t.Fatalf("StudentDashboard error = %v, want wrapped database error", err)
	}
}

func TestMentorDashboard(t *testing.T) {
	mentorRepo := &fakeMentorRepo{}
	id, err := mentorRepo.Create(context.Background(), &models.Mentor{
		Username: "bob", Email: "bob@example.com", PasswordHash: "x", Subject: "Databases",
	})
	if err != nil {
		t.Fatalf("seeding mentor: %v", err)
	}

	svc := NewProfileService(&fakeStudentRepo{}, mentorRepo, &fakeMaterialRepo{})
	dashboard, err := svc.MentorDashboard(context.Background(), id)
	if err != nil {
		t.Fatalf("MentorDashboard: %v", err)
	}
	if dashboard.Mentor.Username != "bob" || dashboard.Mentor.Subject != "Databases" {
		t.Fatalf("Mentor = %+v", dashboard.Mentor)
	}
}

func TestMentorDashboardUnknownMentor(t *testing.T) {
	svc := NewProfileService(&fakeStudentRepo{}, &fakeMentorRepo{}, &fakeMaterialRepo{})

	if _, err := svc.MentorDashboard(context.Background(), 5); !errors.Is(err, apperrors.ErrAccountNotFound) {
		t.Fatalf("MentorDashboard error = %v, want ErrAccountNotFound", err)
	}
}
