package dto

import "github.com/2403A51L17/SESD-Project/internal/app/models"

// MaterialResponse is one row of the shared material listing
type MaterialResponse struct {
	ID          int64  `json:"id"`
	Filename    string `json:"filename"`
	Description string `json:"description"`
	UploadDate  string `json:"uploadDate"`
	MentorName  string `json:"mentorName"`
}

// NewMaterialResponse maps a material record to its listing row
func NewMaterialResponse(m *models.Material) MaterialResponse {
	return MaterialResponse{
		ID:          m.ID,
		Filename:    m.Filename,
		Description: m.Description,
		UploadDate:  m.UploadDate,
		MentorName:  m.MentorName,
	}
}

// UploadRequest carries the upload form fields next to the multipart file
type UploadRequest struct {
	Description string `form:"file_description" json:"fileDescription"`
}
