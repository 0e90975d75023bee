package model

import "time"

// User represents an account in the database.
type User struct {
	ID               int64
	Email            string
	AuthHash         string
	PasswordStrength string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CreateUserRequest represents a registration request.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents an authentication response with a JWT token and user info.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	PasswordStrength string    `json:"password_strength"`
	CreatedAt        time.Time `json:"created_at"`
}

// WeakPasswordResponse is returned when a registration password is below policy.
type WeakPasswordResponse struct {
	Error string `json:"error"`
	CheckResponse
}
