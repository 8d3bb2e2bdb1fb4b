package models

// Material defines an uploaded file record based on the 'uploaded_files' table.
// UploadDate is kept as a "YYYY-MM-DD HH:MM" string, which sorts
// chronologically as text.
type Material struct {
	ID          int64  `json:"id" db:"id"`
	MentorID    int64  `json:"mentorId" db:"mentor_id"`
	Filename    string `json:"filename" db:"filename"`
	Description string `json:"description" db:"description"`
	UploadDate  string `json:"uploadDate" db:"upload_date"`

	// MentorName is populated by the listing join, no db column of its own
	MentorName string `json:"mentorName,omitempty"`
}
