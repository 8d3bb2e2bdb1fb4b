package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID           int64   `json:"id" db:"id" example:"1"`                    // Unique identifier for the student
	Username     string  `json:"username" db:"username" example:"asha_k"`   // Unique username
	PasswordHash string  `json:"-" db:"password_hash"`                      // Hashed password (excluded from JSON)
	Email        string  `json:"email" db:"email" example:"asha@mail.com"`  // Unique email address
	Branch       string  `json:"branch" db:"branch" example:"CSE"`          // Study branch
	Year         string  `json:"year" db:"year" example:"2"`                // Current study year
	Semester     string  `json:"semester" db:"semester" example:"4"`        // Current semester
	Course       *string `json:"course,omitempty" db:"course"`              // Enrolled course (nullable)
	Interests    *string `json:"interests,omitempty" db:"interests"`        // Stated interests (nullable)
	Goals        *string `json:"goals,omitempty" db:"goals"`                // Stated goals (nullable)
}
