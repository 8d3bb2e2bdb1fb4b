package models

// Mentor defines the mentor model based on the 'mentors' table
type Mentor struct {
	ID           int64   `json:"id" db:"id" example:"1"`                     // Unique identifier for the mentor
	Username     string  `json:"username" db:"username" example:"dr_rao"`    // Unique username
	PasswordHash string  `json:"-" db:"password_hash"`                       // Hashed password (excluded from JSON)
	Email        string  `json:"email" db:"email" example:"rao@mail.com"`    // Unique email address
	Branch       string  `json:"branch" db:"branch" example:"CSE"`           // Teaching branch
	Year         string  `json:"year" db:"year" example:"3"`                 // Teaching year
	Subject      string  `json:"subject" db:"subject" example:"Databases"`   // Assigned subject
	Expertise    *string `json:"expertise,omitempty" db:"expertise"`         // Area of expertise (nullable)
	Availability *string `json:"availability,omitempty" db:"availability"`   // Availability note (nullable)
}
