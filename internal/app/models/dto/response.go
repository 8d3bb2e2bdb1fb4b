package dto

// FlashSeverity mirrors the notice categories shown to the user
type FlashSeverity string

const (
	FlashSuccess FlashSeverity = "success"
	FlashWarning FlashSeverity = "warning"
	FlashDanger  FlashSeverity = "danger"
)

// Flash is a single user-visible notice
type Flash struct {
	Severity FlashSeverity `json:"severity" example:"danger"`
	Message  string        `json:"message" example:"Login Failed. Check email, password, and role."`
}

// NewFlash creates a flash notice
func NewFlash(severity FlashSeverity, message string) Flash {
	return Flash{Severity: severity, Message: message}
}

// APIResponse is the standard response envelope. Messages carries the
// flash notices for the presentation layer; Redirect names the follow-up
// location when the handler answers with a redirect status.
type APIResponse struct {
	Success  bool         `json:"success"`
	Data     interface{}  `json:"data,omitempty"`
	Error    *ErrorDetail `json:"error,omitempty"`
	Messages []Flash      `json:"messages,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
}
