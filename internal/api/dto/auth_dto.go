package dto

import "time"

// SignupRequest payload for new students.
type SignupRequest struct {
	StudentID string `json:"studentId"`
	DOB       string `json:"dob"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest accepts an email or the reserved admin username.
type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

// LoginResponse standard response for login.
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	StudentID string    `json:"studentId,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// MessageResponse is the body of operations that only acknowledge.
type MessageResponse struct {
	Message string `json:"message"`
}
