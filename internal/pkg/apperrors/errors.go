package apperrors

import "errors"

// Common errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid session token")
	ErrTokenExpired       = errors.New("session token expired")
	ErrAccessDenied       = errors.New("access denied")

	// Account errors
	ErrDuplicateAccount = errors.New("duplicate username or email")
	ErrAccountNotFound  = errors.New("account not found")
	ErrInvalidRole      = errors.New("invalid role")

	// Upload errors
	ErrNoFile             = errors.New("no file selected")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrFileExists         = errors.New("file already exists")
	ErrFileNotFound       = errors.New("file not found")

	// Generic errors
	ErrNotFound = errors.New("resource not found")
)
