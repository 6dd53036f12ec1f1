package dto

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       string `json:"patient_id" validate:"required"`
	DoctorID        string `json:"doctor_id" validate:"required"`
	AppointmentDate string `json:"appointment_date" validate:"required"` // Format: YYYY-MM-DD
	AppointmentTime string `json:"appointment_time" validate:"required"` // Format: HH:MM
	Reason          string `json:"reason" validate:"required"`
}

// Response DTOs

type CreateAppointmentResponse struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
}

// AppointmentResponse is a stored appointment joined with patient and doctor names.
type AppointmentResponse struct {
	ID                   string `json:"id"`
	PatientID            string `json:"patient_id"`
	DoctorID             string `json:"doctor_id"`
	AppointmentDate      string `json:"appointment_date"`
	AppointmentTime      string `json:"appointment_time"`
	Status               string `json:"status"`
	Reason               string `json:"reason"`
	PatientName          string `json:"patient_name"`
	DoctorName           string `json:"doctor_name"`
	DoctorSpecialization string `json:"doctor_specialization"`
}
