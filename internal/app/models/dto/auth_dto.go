package dto

import "github.com/2403A51L17/SESD-Project/internal/app/models"

// RegisterRequest carries the role-branching registration form.
// Branch/Year/Semester apply to students, Branch/Year/Subject to mentors;
// fields for the other role are ignored.
type RegisterRequest struct {
	Role     models.Role `form:"role" json:"role" binding:"required"`
	Username string      `form:"username" json:"username" binding:"required"`
	Email    string      `form:"email" json:"email" binding:"required,email"`
	Password string      `form:"password" json:"password" binding:"required,min=6"`
	Branch   string      `form:"branch" json:"branch"`
	Year     string      `form:"year" json:"year"`
	Semester string      `form:"semester" json:"semester"`
	Subject  string      `form:"subject" json:"subject"`
}

// Redacted returns a copy safe to echo back on a failed submission.
// The password is never redisplayed.
func (r RegisterRequest) Redacted() RegisterRequest {
	r.Password = ""
	return r
}

// LoginRequest carries the login form
type LoginRequest struct {
	Role     models.Role `form:"role" json:"role" binding:"required"`
	Email    string      `form:"email" json:"email" binding:"required,email"`
	Password string      `form:"password" json:"password" binding:"required"`
}

// Redacted returns a copy safe to echo back on a failed login
func (r LoginRequest) Redacted() LoginRequest {
	r.Password = ""
	return r
}

// SessionResponse reports the established session identity after login
type SessionResponse struct {
	UserID   int64       `json:"userId"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}
