package model

import "time"

// User represents a user row in the database. PasswordHash is the bcrypt
// hash of the signup password; the plaintext is never persisted.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SignupRequest represents a signup request. Field names match what the
// web client sends.
type SignupRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents user data safe for API responses (never the hash).
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// EnrollRequest represents an enrollment request.
type EnrollRequest struct {
	UserID   int64  `json:"userId"`
	CourseID string `json:"courseId"`
}

// ClientLogRequest is a log line forwarded from the browser.
type ClientLogRequest struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
