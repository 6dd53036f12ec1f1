package dto

// Request DTOs

type SignupRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required"`
	Password         string `json:"password" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	DateOfBirth      string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Address          string `json:"address" validate:"required"`
	BloodGroup       string `json:"blood_group" validate:"required"`
	EmergencyContact string `json:"emergency_contact" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type SignupResponse struct {
	Message   string `json:"message"`
	PatientID string `json:"patient_id"`
}

// UserResponse is the public view of a user; the password is never included.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
