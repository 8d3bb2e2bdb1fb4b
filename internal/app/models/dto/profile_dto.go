package dto

import "github.com/2403A51L17/SESD-Project/internal/app/models"

// StudentDashboard is the student profile view: own record plus the
// shared material listing, newest upload first.
type StudentDashboard struct {
	Student   *models.Student    `json:"student"`
	Materials []MaterialResponse `json:"materials"`
}

// MentorDashboard is the mentor profile view
type MentorDashboard struct {
	Mentor *models.Mentor `json:"mentor"`
}
